package utils

import "github.com/google/uuid"

// NewID returns a random identifier with the given prefix, e.g. "ext-<uuid>".
func NewID(prefix string) string {
	if prefix == "" {
		return uuid.NewString()
	}
	return prefix + "-" + uuid.NewString()
}
