package models

import "time"

type PublishStatus string

const (
	PublishStatusPublished     PublishStatus = "published"
	PublishStatusDraft         PublishStatus = "draft"
	PublishStatusPendingReview PublishStatus = "pending_review"
	PublishStatusRejected      PublishStatus = "rejected"
	PublishStatusArchived      PublishStatus = "archived"
)

type MonetizationStatus string

const (
	MonetizationFree         MonetizationStatus = "free"
	MonetizationPaid         MonetizationStatus = "paid"
	MonetizationSubscription MonetizationStatus = "subscription"
)

// DeveloperExtension is the publisher-facing view of an Extension. It shares
// the Extension's ID.
type DeveloperExtension struct {
	ID                 string             `json:"id" bson:"_id"`
	Name               string             `json:"name" bson:"name"`
	Status             PublishStatus      `json:"status" bson:"status"`
	Version            string             `json:"version" bson:"version"`
	LastPublished      time.Time          `json:"last_published" bson:"last_published"`
	TotalInstalls      int                `json:"total_installs" bson:"total_installs"`
	ReviewsCount       int                `json:"reviews_count" bson:"reviews_count"`
	AverageRating      float64            `json:"average_rating" bson:"average_rating"`
	MonetizationStatus MonetizationStatus `json:"monetization_status" bson:"monetization_status"`
	PendingUpdates     bool               `json:"pending_updates" bson:"pending_updates"`
}

// MonetizationFor derives the monetization status of an extension.
func MonetizationFor(e Extension) MonetizationStatus {
	switch {
	case e.IsFree():
		return MonetizationFree
	case len(e.PricingPlans) > 0:
		return MonetizationSubscription
	default:
		return MonetizationPaid
	}
}
