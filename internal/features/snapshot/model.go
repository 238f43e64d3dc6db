package snapshot

import "time"

const topExtensions = 10

// CatalogSnapshot is a point-in-time summary of the marketplace written to
// the "catalog_snapshots" collection.
type CatalogSnapshot struct {
	ID            string          `json:"id" bson:"_id"`
	TakenAt       time.Time       `json:"taken_at" bson:"taken_at"`
	Extensions    int             `json:"extensions" bson:"extensions"`
	Installations int             `json:"installations" bson:"installations"`
	Reviews       int             `json:"reviews" bson:"reviews"`
	AuditEntries  int             `json:"audit_entries" bson:"audit_entries"`
	ByCategory    map[string]int  `json:"by_category" bson:"by_category"`
	Top           []ExtensionStat `json:"top" bson:"top"`
}

// ExtensionStat is one row of the most-installed list.
type ExtensionStat struct {
	ID           string  `json:"id" bson:"id"`
	Name         string  `json:"name" bson:"name"`
	InstallCount int     `json:"install_count" bson:"install_count"`
	Rating       float64 `json:"rating" bson:"rating"`
}
