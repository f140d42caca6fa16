package models

import (
	"time"

	"github.com/google/uuid"
)

// Tag is a descriptive label attachable to any number of projects. Name is
// globally unique; tags are deleted physically, never soft-deleted.
type Tag struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Color       *string   `json:"color,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
