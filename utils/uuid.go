package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a time-ordered (v7) identifier so IDs sort by creation.
// It falls back to a random v4 identifier if the v7 generator fails.
func GenerateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
