package developer

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"go-marketplace/internal/common/apperr"
	"go-marketplace/internal/features/audit"
	"go-marketplace/internal/features/installation"
	"go-marketplace/internal/latency"
	"go-marketplace/internal/models"
	"go-marketplace/internal/store"
	"go-marketplace/pkg/utils"

	"go.uber.org/zap"
)

type DeveloperService interface {
	ListDeveloperExtensions(ctx context.Context, developerID string) ([]models.DeveloperExtension, error)
	Publish(ctx context.Context, developer models.CurrentUser, input PublishInput) (models.Extension, error)
	DeletePublished(ctx context.Context, developer models.CurrentUser, extensionID string) error
	GetAnalytics(ctx context.Context, developerID, extensionID string) (models.ExtensionAnalytics, error)
	ExportAnalytics(ctx context.Context, developerID, extensionID string) ([]byte, string, error)
}

type DeveloperServiceImpl struct {
	Store     *store.Store
	Latency   *latency.Simulator
	Publisher audit.Publisher
	Logger    *zap.Logger
	now       func() time.Time
}

func NewDeveloperService(s *store.Store, sim *latency.Simulator, publisher audit.Publisher, logger *zap.Logger) DeveloperService {
	return &DeveloperServiceImpl{
		Store:     s,
		Latency:   sim,
		Publisher: publisher,
		Logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *DeveloperServiceImpl) ListDeveloperExtensions(ctx context.Context, developerID string) ([]models.DeveloperExtension, error) {
	s.Latency.Wait(latency.ListDeveloper)

	var out []models.DeveloperExtension
	err := s.Store.View(func(tx *store.Tx) error {
		for _, dev := range tx.DeveloperExtensions(developerID) {
			out = append(out, *dev)
		}
		return nil
	})
	return out, err
}

func validatePublish(input PublishInput, categories []models.Category) (category string, err error) {
	if strings.TrimSpace(input.Name) == "" {
		return "", fmt.Errorf("%w: name is required", apperr.ErrValidationFailed)
	}
	if math.IsNaN(input.Price) || input.Price < 0 {
		return "", fmt.Errorf("%w: price must not be negative", apperr.ErrValidationFailed)
	}
	if input.Category == "" {
		return "", nil
	}
	cat, ok := models.FindCategory(categories, input.Category)
	if !ok {
		return "", fmt.Errorf("%w: unknown category %q", apperr.ErrValidationFailed, input.Category)
	}
	return cat.Name, nil
}

// Publish creates a listing owned by developer and its pending_review
// projection. The new listing goes to the front of the catalogue.
func (s *DeveloperServiceImpl) Publish(ctx context.Context, developer models.CurrentUser, input PublishInput) (models.Extension, error) {
	s.Latency.Wait(latency.Publish)

	// Compiling needs no store state, so it stays outside the write lock.
	if err := installation.CheckConfigScript(input.ConfigScript); err != nil {
		return models.Extension{}, err
	}

	now := s.now()
	version := cmp.Or(strings.TrimSpace(input.InitialVersion), DefaultVersion)
	ext := models.Extension{
		ID:               utils.NewID("ext"),
		Name:             strings.TrimSpace(input.Name),
		Publisher:        cmp.Or(developer.Name, developer.ID),
		Description:      input.Description,
		Icon:             input.Icon,
		Tags:             slices.Clone(input.Tags),
		Price:            input.Price,
		Version:          version,
		LastUpdated:      now,
		Screenshots:      slices.Clone(input.Screenshots),
		DocumentationURL: input.DocumentationURL,
		PrivacyPolicyURL: input.PrivacyPolicyURL,
		DeveloperInfo: models.DeveloperInfo{
			ID:           developer.ID,
			Name:         cmp.Or(developer.Name, developer.ID),
			ContactEmail: input.ContactEmail,
			Website:      input.Website,
		},
		PricingPlans: input.PricingPlans,
		Changelog:    []models.VersionLog{{Version: version, ReleaseDate: now, Changes: []string{"Initial release"}}},
		ConfigScript: input.ConfigScript,
	}
	ext = ext.Clone()

	monetization := models.MonetizationFree
	if ext.Price > 0 {
		monetization = models.MonetizationPaid
	}

	var entry models.AuditLogEntry
	err := s.Store.Update(func(tx *store.Tx) error {
		category, err := validatePublish(input, tx.Categories())
		if err != nil {
			return err
		}
		ext.Category = category

		tx.PrependExtension(ext.Clone())
		tx.PrependDeveloperExtension(models.DeveloperExtension{
			ID:                 ext.ID,
			Name:               ext.Name,
			Status:             models.PublishStatusPendingReview,
			Version:            ext.Version,
			LastPublished:      now,
			MonetizationStatus: monetization,
		})

		entry = audit.NewEntry(models.AuditActionPublish, developer.ID, ext.ID, models.ConfigMap{
			"extension_name": models.String(ext.Name),
			"version":        models.String(ext.Version),
		})
		tx.AppendAudit(entry)
		s.Publisher.Publish(entry)
		return nil
	})
	if err != nil {
		return models.Extension{}, err
	}

	s.Logger.Info("extension published",
		zap.String("extension_id", ext.ID),
		zap.String("developer_id", developer.ID))
	return ext, nil
}

// DeletePublished removes a developer's listing together with everything
// that references it: projection, analytics, installations and reviews.
func (s *DeveloperServiceImpl) DeletePublished(ctx context.Context, developer models.CurrentUser, extensionID string) error {
	s.Latency.Wait(latency.Delete)

	var entry models.AuditLogEntry
	err := s.Store.Update(func(tx *store.Tx) error {
		ext, ok := tx.Extension(extensionID)
		if !ok || ext.DeveloperInfo.ID != developer.ID {
			return fmt.Errorf("extension %s of developer %s: %w", extensionID, developer.ID, apperr.ErrNotFound)
		}
		name := ext.Name

		tx.RemoveExtension(extensionID)
		tx.RemoveDeveloperExtension(extensionID)
		tx.RemoveAnalytics(extensionID)
		installs := tx.RemoveInstallationsOf(extensionID)
		reviews := tx.RemoveReviews(extensionID)

		entry = audit.NewEntry(models.AuditActionDelete, developer.ID, extensionID, models.ConfigMap{
			"extension_name":        models.String(name),
			"removed_installations": models.Number(float64(installs)),
			"removed_reviews":       models.Number(float64(reviews)),
		})
		tx.AppendAudit(entry)
		s.Publisher.Publish(entry)
		return nil
	})
	if err != nil {
		return err
	}

	s.Logger.Info("published extension deleted",
		zap.String("extension_id", extensionID),
		zap.String("developer_id", developer.ID))
	return nil
}

// GetAnalytics returns the series of an extension owned by developerID. An
// owned extension without data yields an empty daily series.
func (s *DeveloperServiceImpl) GetAnalytics(ctx context.Context, developerID, extensionID string) (models.ExtensionAnalytics, error) {
	s.Latency.Wait(latency.Analytics)
	return s.analytics(developerID, extensionID)
}

func (s *DeveloperServiceImpl) analytics(developerID, extensionID string) (models.ExtensionAnalytics, error) {
	result := models.ExtensionAnalytics{
		ExtensionID: extensionID,
		Period:      models.PeriodDaily,
		Data:        []models.AnalyticsPoint{},
	}
	err := s.Store.View(func(tx *store.Tx) error {
		ext, ok := tx.Extension(extensionID)
		if !ok || ext.DeveloperInfo.ID != developerID {
			return fmt.Errorf("extension %s of developer %s: %w", extensionID, developerID, apperr.ErrNotFound)
		}
		if a, ok := tx.Analytics(extensionID); ok {
			result = a.Clone()
		}
		return nil
	})
	return result, err
}
