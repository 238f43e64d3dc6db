package store

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"go-marketplace/internal/common/apperr"
	"go-marketplace/internal/models"
)

// Dataset is the serialised form of a store. AuditLogs are newest first.
type Dataset struct {
	Extensions []models.Extension          `json:"extensions"`
	Reviews    []models.Review             `json:"reviews"`
	Installed  []models.InstalledExtension `json:"installed"`
	Developer  []models.DeveloperExtension `json:"developer"`
	AuditLogs  []models.AuditLogEntry      `json:"audit_logs"`
	Analytics  []models.ExtensionAnalytics `json:"analytics"`
}

// ReadDataset decodes a JSON dataset.
func ReadDataset(r io.Reader) (Dataset, error) {
	var d Dataset
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return Dataset{}, fmt.Errorf("decode dataset: %w", err)
	}
	return d, nil
}

// Write encodes the dataset as indented JSON.
func (d Dataset) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// Validate checks identity uniqueness and foreign keys.
func (d Dataset) Validate() error {
	exts := make(map[string]struct{}, len(d.Extensions))
	for _, e := range d.Extensions {
		if e.ID == "" {
			return fmt.Errorf("%w: extension without id", apperr.ErrValidationFailed)
		}
		if _, dup := exts[e.ID]; dup {
			return fmt.Errorf("%w: duplicate extension %s", apperr.ErrValidationFailed, e.ID)
		}
		exts[e.ID] = struct{}{}
	}
	for _, r := range d.Reviews {
		if _, ok := exts[r.ExtensionID]; !ok {
			return fmt.Errorf("%w: review %s references unknown extension %s", apperr.ErrValidationFailed, r.ID, r.ExtensionID)
		}
	}
	pairs := make(map[[2]string]struct{}, len(d.Installed))
	for _, i := range d.Installed {
		if _, ok := exts[i.ExtensionID]; !ok {
			return fmt.Errorf("%w: installation %s references unknown extension %s", apperr.ErrValidationFailed, i.ID, i.ExtensionID)
		}
		key := [2]string{i.UserID, i.ExtensionID}
		if _, dup := pairs[key]; dup {
			return fmt.Errorf("%w: user %s has %s installed twice", apperr.ErrValidationFailed, i.UserID, i.ExtensionID)
		}
		pairs[key] = struct{}{}
	}
	for _, dev := range d.Developer {
		if _, ok := exts[dev.ID]; !ok {
			return fmt.Errorf("%w: developer projection %s has no extension", apperr.ErrValidationFailed, dev.ID)
		}
	}
	return nil
}

// Load replaces the store content with d after validating it.
func (s *Store) Load(d Dataset) error {
	if err := d.Validate(); err != nil {
		return err
	}

	logs := make([]models.AuditLogEntry, 0, len(d.AuditLogs))
	for _, a := range d.AuditLogs {
		logs = append(logs, a.Clone())
	}
	// stored oldest first
	slices.SortStableFunc(logs, func(a, b models.AuditLogEntry) int {
		return a.Timestamp.Compare(b.Timestamp)
	})

	analytics := make(map[string]*models.ExtensionAnalytics, len(d.Analytics))
	for _, a := range d.Analytics {
		c := a.Clone()
		analytics[a.ExtensionID] = &c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.extensions = clonePtrs(d.Extensions, models.Extension.Clone)
	s.reviews = clonePtrs(d.Reviews, func(r models.Review) models.Review { return r })
	s.installed = clonePtrs(d.Installed, models.InstalledExtension.Clone)
	s.developer = clonePtrs(d.Developer, func(dev models.DeveloperExtension) models.DeveloperExtension { return dev })
	s.auditLogs = logs
	s.analytics = analytics
	return nil
}

// Dump returns a deep copy of the store content.
func (s *Store) Dump() Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d := Dataset{
		Extensions: cloneVals(s.extensions, models.Extension.Clone),
		Reviews:    cloneVals(s.reviews, func(r models.Review) models.Review { return r }),
		Installed:  cloneVals(s.installed, models.InstalledExtension.Clone),
		Developer:  cloneVals(s.developer, func(dev models.DeveloperExtension) models.DeveloperExtension { return dev }),
	}
	for i := len(s.auditLogs) - 1; i >= 0; i-- {
		d.AuditLogs = append(d.AuditLogs, s.auditLogs[i].Clone())
	}
	for _, a := range s.analytics {
		d.Analytics = append(d.Analytics, a.Clone())
	}
	slices.SortFunc(d.Analytics, func(a, b models.ExtensionAnalytics) int {
		return cmp.Compare(a.ExtensionID, b.ExtensionID)
	})
	return d
}

func clonePtrs[T any](in []T, clone func(T) T) []*T {
	out := make([]*T, 0, len(in))
	for _, v := range in {
		c := clone(v)
		out = append(out, &c)
	}
	return out
}

func cloneVals[T any](in []*T, clone func(T) T) []T {
	out := make([]T, 0, len(in))
	for _, p := range in {
		out = append(out, clone(*p))
	}
	return out
}
