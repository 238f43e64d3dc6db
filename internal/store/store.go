// Package store holds the marketplace collections in process memory.
//
// All access goes through View (shared) or Update (exclusive) so that a
// reader never observes a half-applied mutation. Pointers handed out by a Tx
// are live store state and must not escape the callback; copy with the
// entity's Clone method before returning data to callers.
package store

import (
	"errors"
	"slices"
	"sync"

	"go-marketplace/internal/models"
)

var errReadOnly = errors.New("store: write in read-only transaction")

// Store owns the extensions, reviews, installations, developer projections,
// audit log and analytics collections.
type Store struct {
	mu sync.RWMutex

	categories []models.Category
	// extensions are kept in listing order; newly published ones go first.
	extensions []*models.Extension
	reviews    []*models.Review
	installed  []*models.InstalledExtension
	developer  []*models.DeveloperExtension
	// auditLogs are in append order, oldest first.
	auditLogs []models.AuditLogEntry
	analytics map[string]*models.ExtensionAnalytics
}

// New returns an empty store with the default category catalogue.
func New() *Store {
	return &Store{
		categories: models.DefaultCategories(),
		analytics:  make(map[string]*models.ExtensionAnalytics),
	}
}

// View runs fn with shared access.
func (s *Store) View(fn func(tx *Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&Tx{s: s})
}

// Update runs fn with exclusive access. fn must finish all validation before
// its first write; the store has no rollback.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&Tx{s: s, writable: true})
}

// Tx is the handle passed to View and Update callbacks.
type Tx struct {
	s        *Store
	writable bool
}

func (tx *Tx) mustWrite() {
	if !tx.writable {
		panic(errReadOnly)
	}
}

// Categories returns a copy of the category catalogue.
func (tx *Tx) Categories() []models.Category {
	return slices.Clone(tx.s.categories)
}

// Extensions returns the live listing in order.
func (tx *Tx) Extensions() []*models.Extension {
	return tx.s.extensions
}

func (tx *Tx) Extension(id string) (*models.Extension, bool) {
	for _, e := range tx.s.extensions {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// PrependExtension puts e at the front of the listing.
func (tx *Tx) PrependExtension(e models.Extension) *models.Extension {
	tx.mustWrite()
	p := &e
	tx.s.extensions = slices.Insert(tx.s.extensions, 0, p)
	return p
}

func (tx *Tx) RemoveExtension(id string) bool {
	tx.mustWrite()
	n := len(tx.s.extensions)
	tx.s.extensions = slices.DeleteFunc(tx.s.extensions, func(e *models.Extension) bool { return e.ID == id })
	return len(tx.s.extensions) != n
}

// Reviews returns the reviews of one extension in submission order.
func (tx *Tx) Reviews(extensionID string) []models.Review {
	var out []models.Review
	for _, r := range tx.s.reviews {
		if r.ExtensionID == extensionID {
			out = append(out, *r)
		}
	}
	return out
}

func (tx *Tx) ReviewCount() int {
	return len(tx.s.reviews)
}

func (tx *Tx) AppendReview(r models.Review) {
	tx.mustWrite()
	tx.s.reviews = append(tx.s.reviews, &r)
}

func (tx *Tx) RemoveReviews(extensionID string) int {
	tx.mustWrite()
	n := len(tx.s.reviews)
	tx.s.reviews = slices.DeleteFunc(tx.s.reviews, func(r *models.Review) bool { return r.ExtensionID == extensionID })
	return n - len(tx.s.reviews)
}

// Installed finds an installation by its id and owner.
func (tx *Tx) Installed(id, userID string) (*models.InstalledExtension, bool) {
	for _, i := range tx.s.installed {
		if i.ID == id && i.UserID == userID {
			return i, true
		}
	}
	return nil, false
}

// InstalledFor finds the installation of an extension by a user.
func (tx *Tx) InstalledFor(extensionID, userID string) (*models.InstalledExtension, bool) {
	for _, i := range tx.s.installed {
		if i.ExtensionID == extensionID && i.UserID == userID {
			return i, true
		}
	}
	return nil, false
}

func (tx *Tx) InstalledByUser(userID string) []*models.InstalledExtension {
	var out []*models.InstalledExtension
	for _, i := range tx.s.installed {
		if i.UserID == userID {
			out = append(out, i)
		}
	}
	return out
}

func (tx *Tx) InstallationCount() int {
	return len(tx.s.installed)
}

func (tx *Tx) AppendInstalled(i models.InstalledExtension) *models.InstalledExtension {
	tx.mustWrite()
	p := &i
	tx.s.installed = append(tx.s.installed, p)
	return p
}

func (tx *Tx) RemoveInstalled(id string) bool {
	tx.mustWrite()
	n := len(tx.s.installed)
	tx.s.installed = slices.DeleteFunc(tx.s.installed, func(i *models.InstalledExtension) bool { return i.ID == id })
	return len(tx.s.installed) != n
}

// RemoveInstallationsOf drops every installation of an extension.
func (tx *Tx) RemoveInstallationsOf(extensionID string) int {
	tx.mustWrite()
	n := len(tx.s.installed)
	tx.s.installed = slices.DeleteFunc(tx.s.installed, func(i *models.InstalledExtension) bool { return i.ExtensionID == extensionID })
	return n - len(tx.s.installed)
}

func (tx *Tx) DeveloperExtension(id string) (*models.DeveloperExtension, bool) {
	for _, d := range tx.s.developer {
		if d.ID == id {
			return d, true
		}
	}
	return nil, false
}

// DeveloperExtensions returns the projections whose extension is owned by
// developerID, in listing order.
func (tx *Tx) DeveloperExtensions(developerID string) []*models.DeveloperExtension {
	var out []*models.DeveloperExtension
	for _, d := range tx.s.developer {
		if ext, ok := tx.Extension(d.ID); ok && ext.DeveloperInfo.ID == developerID {
			out = append(out, d)
		}
	}
	return out
}

func (tx *Tx) PrependDeveloperExtension(d models.DeveloperExtension) {
	tx.mustWrite()
	tx.s.developer = slices.Insert(tx.s.developer, 0, &d)
}

func (tx *Tx) RemoveDeveloperExtension(id string) bool {
	tx.mustWrite()
	n := len(tx.s.developer)
	tx.s.developer = slices.DeleteFunc(tx.s.developer, func(d *models.DeveloperExtension) bool { return d.ID == id })
	return len(tx.s.developer) != n
}

// AppendAudit records entries; the log is never rewritten.
func (tx *Tx) AppendAudit(entries ...models.AuditLogEntry) {
	tx.mustWrite()
	tx.s.auditLogs = append(tx.s.auditLogs, entries...)
}

// AuditLogs calls fn for each entry, newest first, until fn returns false.
func (tx *Tx) AuditLogs(fn func(models.AuditLogEntry) bool) {
	for i := len(tx.s.auditLogs) - 1; i >= 0; i-- {
		if !fn(tx.s.auditLogs[i]) {
			return
		}
	}
}

func (tx *Tx) Analytics(extensionID string) (*models.ExtensionAnalytics, bool) {
	a, ok := tx.s.analytics[extensionID]
	return a, ok
}

func (tx *Tx) RemoveAnalytics(extensionID string) {
	tx.mustWrite()
	delete(tx.s.analytics, extensionID)
}
