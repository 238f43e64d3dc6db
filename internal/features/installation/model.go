package installation

import "go-marketplace/internal/models"

type EnabledInput struct {
	Enabled bool `json:"enabled"`
}

// InstalledView pairs an installation with the listing it refers to.
type InstalledView struct {
	models.InstalledExtension
	Extension models.Extension `json:"extension"`
}
