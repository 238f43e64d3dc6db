package models

import (
	"slices"
	"time"
)

type DeveloperInfo struct {
	ID           string `json:"id" bson:"id"`
	Name         string `json:"name" bson:"name"`
	ContactEmail string `json:"contact_email" bson:"contact_email"`
	Website      string `json:"website,omitempty" bson:"website,omitempty"`
}

type PricingPlan struct {
	ID            string   `json:"id" bson:"id"`
	Name          string   `json:"name" bson:"name"`
	Description   string   `json:"description" bson:"description"`
	PriceMonthly  float64  `json:"price_monthly" bson:"price_monthly"`
	PriceAnnually float64  `json:"price_annually" bson:"price_annually"`
	Features      []string `json:"features" bson:"features"`
}

type VersionLog struct {
	Version     string    `json:"version" bson:"version"`
	ReleaseDate time.Time `json:"release_date" bson:"release_date"`
	Changes     []string  `json:"changes" bson:"changes"`
}

// Extension is a marketplace listing. Rating is derived from the reviews
// that reference it and is never written directly by callers.
type Extension struct {
	ID               string        `json:"id" bson:"_id"`
	Name             string        `json:"name" bson:"name"`
	Publisher        string        `json:"publisher" bson:"publisher"`
	Description      string        `json:"description" bson:"description"`
	Icon             string        `json:"icon" bson:"icon"`
	Recommended      bool          `json:"recommended" bson:"recommended"`
	Category         string        `json:"category" bson:"category"`
	Tags             []string      `json:"tags" bson:"tags"`
	Rating           float64       `json:"rating" bson:"rating"`
	InstallCount     int           `json:"install_count" bson:"install_count"`
	Price            float64       `json:"price" bson:"price"`
	LastUpdated      time.Time     `json:"last_updated" bson:"last_updated"`
	Version          string        `json:"version" bson:"version"`
	Screenshots      []string      `json:"screenshots" bson:"screenshots"`
	DocumentationURL string        `json:"documentation_url" bson:"documentation_url"`
	PrivacyPolicyURL string        `json:"privacy_policy_url" bson:"privacy_policy_url"`
	DeveloperInfo    DeveloperInfo `json:"developer_info" bson:"developer_info"`
	PricingPlans     []PricingPlan `json:"pricing_plans,omitempty" bson:"pricing_plans,omitempty"`
	Changelog        []VersionLog  `json:"changelog,omitempty" bson:"changelog,omitempty"`

	// ConfigScript is an optional tengo script run against a user's merged
	// configuration before it is saved.
	ConfigScript string `json:"config_script,omitempty" bson:"config_script,omitempty"`
}

func (e Extension) IsFree() bool { return e.Price == 0 }

// Clone returns a copy sharing no slices with e.
func (e Extension) Clone() Extension {
	c := e
	c.Tags = slices.Clone(e.Tags)
	c.Screenshots = slices.Clone(e.Screenshots)
	if e.PricingPlans != nil {
		c.PricingPlans = make([]PricingPlan, len(e.PricingPlans))
		for i, p := range e.PricingPlans {
			p.Features = slices.Clone(p.Features)
			c.PricingPlans[i] = p
		}
	}
	if e.Changelog != nil {
		c.Changelog = make([]VersionLog, len(e.Changelog))
		for i, l := range e.Changelog {
			l.Changes = slices.Clone(l.Changes)
			c.Changelog[i] = l
		}
	}
	return c
}
