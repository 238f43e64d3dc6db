package developer

import "go-marketplace/internal/models"

const DefaultVersion = "1.0.0"

// PublishInput is the draft a developer submits for a new listing.
type PublishInput struct {
	Name             string               `json:"name"`
	Description      string               `json:"description"`
	Category         string               `json:"category"`
	Tags             []string             `json:"tags"`
	Icon             string               `json:"icon"`
	Price            float64              `json:"price"`
	InitialVersion   string               `json:"initial_version"`
	Screenshots      []string             `json:"screenshots"`
	DocumentationURL string               `json:"documentation_url"`
	PrivacyPolicyURL string               `json:"privacy_policy_url"`
	ContactEmail     string               `json:"contact_email"`
	Website          string               `json:"website"`
	PricingPlans     []models.PricingPlan `json:"pricing_plans"`
	ConfigScript     string               `json:"config_script"`
}
