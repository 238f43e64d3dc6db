package models

import (
	"context"
	"time"

	"go-marketplace/internal/models"
)

type ContextKey string

const (
	// CurrentUserKey stores the request's models.CurrentUser in fiber locals
	// and in the request context.
	CurrentUserKey ContextKey = "current_user"
)

// WithCurrentUser returns a context carrying user.
func WithCurrentUser(ctx context.Context, user models.CurrentUser) context.Context {
	return context.WithValue(ctx, CurrentUserKey, user)
}

// CurrentUserFrom extracts the user set by WithCurrentUser.
func CurrentUserFrom(ctx context.Context) (models.CurrentUser, bool) {
	user, ok := ctx.Value(CurrentUserKey).(models.CurrentUser)
	return user, ok
}

// Log is a persisted application log line.
type Log struct {
	Message      string    `bson:"message" json:"message"`
	Caller       string    `bson:"caller" json:"caller"`
	AppId        string    `bson:"app_id" json:"app_id"`
	LogLevelId   int       `bson:"log_level_id" json:"log_level_id"`
	CreatedOnUtc time.Time `bson:"created_on_utc" json:"created_on_utc"`
}
