package models

import (
	"time"

	"github.com/google/uuid"
)

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusArchived  ProjectStatus = "archived"
	ProjectStatusSuspended ProjectStatus = "suspended"
)

func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusArchived, ProjectStatusSuspended:
		return true
	}
	return false
}

type LifecycleStage string

const (
	LifecycleStageDevelopment LifecycleStage = "development"
	LifecycleStageTesting     LifecycleStage = "testing"
	LifecycleStageStaging     LifecycleStage = "staging"
	LifecycleStageProduction  LifecycleStage = "production"
)

func (s LifecycleStage) Valid() bool {
	switch s {
	case LifecycleStageDevelopment, LifecycleStageTesting, LifecycleStageStaging, LifecycleStageProduction:
		return true
	}
	return false
}

// JSONMap is an open key/value document persisted as jsonb. The service
// never validates its internal shape.
type JSONMap map[string]any

// Project is a catalogued piece of software. Slug is the human-readable
// unique key; uniqueness holds only over non-deleted rows.
type Project struct {
	ID              uuid.UUID        `json:"id"`
	Name            string           `json:"name"`
	Slug            string           `json:"slug"`
	Description     *string          `json:"description,omitempty"`
	ImageURL        *string          `json:"imageUrl,omitempty"`
	Emoji           *string          `json:"emoji,omitempty"`
	Status          ProjectStatus    `json:"status"`
	OwnerID         *uuid.UUID       `json:"ownerId,omitempty"`
	LifecycleStages []LifecycleStage `json:"lifecycleStages"`
	Metadata        JSONMap          `json:"metadata"`
	Tags            []Tag            `json:"tags"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
	DeletedAt       *time.Time       `json:"-"`
}
