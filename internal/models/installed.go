package models

import "time"

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionTrial     SubscriptionStatus = "trial"
)

// TrialPeriod is the length of the trial subscription seeded on install.
const TrialPeriod = 30 * 24 * time.Hour

type Subscription struct {
	PlanID    string             `json:"plan_id" bson:"plan_id"`
	StartDate time.Time          `json:"start_date" bson:"start_date"`
	EndDate   time.Time          `json:"end_date" bson:"end_date"`
	Status    SubscriptionStatus `json:"status" bson:"status"`
	AutoRenew bool               `json:"auto_renew" bson:"auto_renew"`
}

// InstalledExtension records that a user installed an extension. There is
// at most one per (UserID, ExtensionID).
type InstalledExtension struct {
	ID               string        `json:"id" bson:"_id"`
	ExtensionID      string        `json:"extension_id" bson:"extension_id"`
	UserID           string        `json:"user_id" bson:"user_id"`
	InstallationDate time.Time     `json:"installation_date" bson:"installation_date"`
	Enabled          bool          `json:"enabled" bson:"enabled"`
	Configuration    ConfigMap     `json:"configuration" bson:"configuration"`
	Subscription     *Subscription `json:"subscription,omitempty" bson:"subscription,omitempty"`
}

func (i InstalledExtension) Clone() InstalledExtension {
	c := i
	c.Configuration = i.Configuration.Clone()
	if i.Subscription != nil {
		sub := *i.Subscription
		c.Subscription = &sub
	}
	return c
}
