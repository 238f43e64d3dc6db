package models

import "time"

const (
	MinReviewRating = 1.0
	MaxReviewRating = 5.0
)

type Review struct {
	ID          string    `json:"id" bson:"_id"`
	ExtensionID string    `json:"extension_id" bson:"extension_id"`
	UserID      string    `json:"user_id" bson:"user_id"`
	UserName    string    `json:"user_name" bson:"user_name"`
	Rating      float64   `json:"rating" bson:"rating"`
	Comment     string    `json:"comment" bson:"comment"`
	Timestamp   time.Time `json:"timestamp" bson:"timestamp"`
}

// AverageRating returns the arithmetic mean of the ratings, 0 when empty.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	return sum / float64(len(reviews))
}
