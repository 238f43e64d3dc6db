package installation

import (
	"context"
	"fmt"
	"maps"
	"time"

	"go-marketplace/internal/common/apperr"
	"go-marketplace/internal/features/audit"
	"go-marketplace/internal/latency"
	"go-marketplace/internal/models"
	"go-marketplace/internal/store"
	"go-marketplace/pkg/utils"

	"go.uber.org/zap"
)

type InstallationService interface {
	ListInstalled(ctx context.Context, userID string) ([]InstalledView, error)
	Install(ctx context.Context, user models.CurrentUser, extensionID string) (models.InstalledExtension, error)
	Uninstall(ctx context.Context, user models.CurrentUser, installedID string) error
	UpdateConfiguration(ctx context.Context, user models.CurrentUser, installedID string, patch models.ConfigMap) (models.InstalledExtension, error)
	SetEnabled(ctx context.Context, user models.CurrentUser, installedID string, enabled bool) (models.InstalledExtension, error)
}

type InstallationServiceImpl struct {
	Store     *store.Store
	Latency   *latency.Simulator
	Publisher audit.Publisher
	Logger    *zap.Logger
	now       func() time.Time
	validate  func(ctx context.Context, script string, config models.ConfigMap) error
}

const maxConfigAttempts = 3

func NewInstallationService(s *store.Store, sim *latency.Simulator, publisher audit.Publisher, logger *zap.Logger) InstallationService {
	return &InstallationServiceImpl{
		Store:     s,
		Latency:   sim,
		Publisher: publisher,
		Logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
		validate:  validateConfig,
	}
}

func (s *InstallationServiceImpl) ListInstalled(ctx context.Context, userID string) ([]InstalledView, error) {
	s.Latency.Wait(latency.ListInstalled)

	var out []InstalledView
	err := s.Store.View(func(tx *store.Tx) error {
		for _, inst := range tx.InstalledByUser(userID) {
			view := InstalledView{InstalledExtension: inst.Clone()}
			if ext, ok := tx.Extension(inst.ExtensionID); ok {
				view.Extension = ext.Clone()
			}
			out = append(out, view)
		}
		return nil
	})
	return out, err
}

// Install creates the user's installation of an extension. The duplicate
// check and the insert run in one write transaction.
func (s *InstallationServiceImpl) Install(ctx context.Context, user models.CurrentUser, extensionID string) (models.InstalledExtension, error) {
	s.Latency.Wait(latency.Install)

	now := s.now()
	var (
		installed models.InstalledExtension
		entry     models.AuditLogEntry
	)
	err := s.Store.Update(func(tx *store.Tx) error {
		if _, exists := tx.InstalledFor(extensionID, user.ID); exists {
			return fmt.Errorf("extension %s for user %s: %w", extensionID, user.ID, apperr.ErrAlreadyExists)
		}
		ext, ok := tx.Extension(extensionID)
		if !ok {
			return fmt.Errorf("extension %s: %w", extensionID, apperr.ErrNotFound)
		}

		installed = models.InstalledExtension{
			ID:               utils.NewID("inst"),
			ExtensionID:      extensionID,
			UserID:           user.ID,
			InstallationDate: now,
			Enabled:          true,
			Configuration:    models.ConfigMap{},
		}
		if len(ext.PricingPlans) > 0 {
			installed.Subscription = &models.Subscription{
				PlanID:    ext.PricingPlans[0].ID,
				StartDate: now,
				EndDate:   now.Add(models.TrialPeriod),
				Status:    models.SubscriptionTrial,
			}
		}

		tx.AppendInstalled(installed.Clone())
		ext.InstallCount++
		syncInstalls(tx, ext)

		entry = audit.NewEntry(models.AuditActionInstall, user.ID, extensionID, models.ConfigMap{
			"extension_name": models.String(ext.Name),
		})
		tx.AppendAudit(entry)
		s.Publisher.Publish(entry)
		return nil
	})
	if err != nil {
		return models.InstalledExtension{}, err
	}

	s.Logger.Info("extension installed",
		zap.String("extension_id", extensionID),
		zap.String("user_id", user.ID),
		zap.String("installation_id", installed.ID))
	return installed, nil
}

func (s *InstallationServiceImpl) Uninstall(ctx context.Context, user models.CurrentUser, installedID string) error {
	s.Latency.Wait(latency.Uninstall)

	var entry models.AuditLogEntry
	err := s.Store.Update(func(tx *store.Tx) error {
		inst, ok := tx.Installed(installedID, user.ID)
		if !ok {
			return fmt.Errorf("installation %s: %w", installedID, apperr.ErrNotFound)
		}
		extensionID := inst.ExtensionID
		tx.RemoveInstalled(installedID)

		details := models.ConfigMap{}
		if ext, ok := tx.Extension(extensionID); ok {
			ext.InstallCount = max(0, ext.InstallCount-1)
			syncInstalls(tx, ext)
			details["extension_name"] = models.String(ext.Name)
		}

		entry = audit.NewEntry(models.AuditActionUninstall, user.ID, extensionID, details)
		tx.AppendAudit(entry)
		s.Publisher.Publish(entry)
		return nil
	})
	if err != nil {
		return err
	}

	s.Logger.Info("extension uninstalled",
		zap.String("extension_id", entry.ExtensionID),
		zap.String("user_id", user.ID),
		zap.String("installation_id", installedID))
	return nil
}

// UpdateConfiguration shallow-merges patch into the installation's
// configuration and returns a copy of the result. The extension's
// configuration script runs outside the store lock; the merge is only
// written if the configuration and script it validated are still current,
// otherwise validation starts over.
func (s *InstallationServiceImpl) UpdateConfiguration(ctx context.Context, user models.CurrentUser, installedID string, patch models.ConfigMap) (models.InstalledExtension, error) {
	s.Latency.Wait(latency.Configure)

	for range maxConfigAttempts {
		var (
			base   models.ConfigMap
			script string
		)
		err := s.Store.View(func(tx *store.Tx) error {
			inst, ok := tx.Installed(installedID, user.ID)
			if !ok {
				return fmt.Errorf("installation %s: %w", installedID, apperr.ErrNotFound)
			}
			base = inst.Configuration.Clone()
			if ext, ok := tx.Extension(inst.ExtensionID); ok {
				script = ext.ConfigScript
			}
			return nil
		})
		if err != nil {
			return models.InstalledExtension{}, err
		}

		merged := base.Merge(patch)
		if err := s.validate(ctx, script, merged); err != nil {
			return models.InstalledExtension{}, err
		}

		updated, stale, err := s.applyConfiguration(user, installedID, base, script, merged, len(patch))
		if err != nil {
			return models.InstalledExtension{}, err
		}
		if !stale {
			return updated, nil
		}
		s.Logger.Debug("configuration changed during validation, retrying",
			zap.String("installation_id", installedID))
	}
	return models.InstalledExtension{}, fmt.Errorf("installation %s: configuration kept changing during validation", installedID)
}

// applyConfiguration writes merged when the installation still has
// configuration base and its extension still has script. It reports stale
// otherwise and writes nothing.
func (s *InstallationServiceImpl) applyConfiguration(user models.CurrentUser, installedID string, base models.ConfigMap, script string, merged models.ConfigMap, keys int) (updated models.InstalledExtension, stale bool, err error) {
	err = s.Store.Update(func(tx *store.Tx) error {
		inst, ok := tx.Installed(installedID, user.ID)
		if !ok {
			return fmt.Errorf("installation %s: %w", installedID, apperr.ErrNotFound)
		}

		details := models.ConfigMap{}
		var current string
		if ext, ok := tx.Extension(inst.ExtensionID); ok {
			current = ext.ConfigScript
			details["extension_name"] = models.String(ext.Name)
		}
		if current != script || !maps.Equal(inst.Configuration, base) {
			stale = true
			return nil
		}

		old := inst.Configuration.Clone()
		inst.Configuration = merged

		entry := audit.NewEntry(models.AuditActionConfig, user.ID, inst.ExtensionID, details)
		entry.Config = &models.ConfigChange{Old: old, New: merged.Clone()}
		tx.AppendAudit(entry)
		s.Publisher.Publish(entry)

		updated = inst.Clone()
		return nil
	})
	if err != nil || stale {
		return models.InstalledExtension{}, stale, err
	}

	s.Logger.Info("configuration updated",
		zap.String("installation_id", installedID),
		zap.String("user_id", user.ID),
		zap.Int("keys", keys))
	return updated, false, nil
}

func (s *InstallationServiceImpl) SetEnabled(ctx context.Context, user models.CurrentUser, installedID string, enabled bool) (models.InstalledExtension, error) {
	s.Latency.Wait(latency.Configure)

	var (
		updated models.InstalledExtension
		entry   models.AuditLogEntry
	)
	err := s.Store.Update(func(tx *store.Tx) error {
		inst, ok := tx.Installed(installedID, user.ID)
		if !ok {
			return fmt.Errorf("installation %s: %w", installedID, apperr.ErrNotFound)
		}
		inst.Enabled = enabled

		details := models.ConfigMap{"enabled": models.Bool(enabled)}
		if ext, ok := tx.Extension(inst.ExtensionID); ok {
			details["extension_name"] = models.String(ext.Name)
		}
		entry = audit.NewEntry(models.AuditActionConfig, user.ID, inst.ExtensionID, details)
		tx.AppendAudit(entry)
		s.Publisher.Publish(entry)

		updated = inst.Clone()
		return nil
	})
	if err != nil {
		return models.InstalledExtension{}, err
	}

	s.Logger.Info("installation toggled",
		zap.String("installation_id", installedID),
		zap.Bool("enabled", enabled))
	return updated, nil
}

// syncInstalls keeps the developer projection's install total in step.
func syncInstalls(tx *store.Tx, ext *models.Extension) {
	if dev, ok := tx.DeveloperExtension(ext.ID); ok {
		dev.TotalInstalls = ext.InstallCount
	}
}
