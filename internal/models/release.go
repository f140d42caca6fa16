package models

import (
	"time"

	"github.com/google/uuid"
)

type ReleaseStatus string

const (
	ReleaseStatusDraft      ReleaseStatus = "draft"
	ReleaseStatusCreated    ReleaseStatus = "created"
	ReleaseStatusDelivering ReleaseStatus = "delivering"
	ReleaseStatusDelivered  ReleaseStatus = "delivered"
	ReleaseStatusFailed     ReleaseStatus = "failed"
)

func (s ReleaseStatus) Valid() bool {
	switch s {
	case ReleaseStatusDraft, ReleaseStatusCreated, ReleaseStatusDelivering, ReleaseStatusDelivered, ReleaseStatusFailed:
		return true
	}
	return false
}

// Release is a versioned payload of a project. (projectId, version) is
// unique among non-deleted rows.
type Release struct {
	ID         uuid.UUID     `json:"id"`
	ProjectID  uuid.UUID     `json:"projectId"`
	Version    string        `json:"version"`
	SnapshotID *string       `json:"snapshotId,omitempty"`
	Status     ReleaseStatus `json:"status"`
	Changelog  *string       `json:"changelog,omitempty"`
	Notes      *string       `json:"notes,omitempty"`
	Structure  JSONMap       `json:"structure"`
	Metadata   JSONMap       `json:"metadata"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
	DeletedAt  *time.Time    `json:"-"`
}

// HasStructure reports whether a structure snapshot has been attached. An
// empty object counts as absent.
func (r *Release) HasStructure() bool {
	return len(r.Structure) > 0
}

// Process is one runnable unit inside a release structure.
type Process struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Config map[string]string `json:"config"`
}

// Asset is one downloadable artifact inside a release structure.
type Asset struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	URL      string            `json:"url"`
	Metadata map[string]string `json:"metadata"`
}

// ReleaseConfig groups the structured part of a release structure document.
type ReleaseConfig struct {
	Processes []Process         `json:"processes"`
	Variables map[string]string `json:"variables"`
	Assets    []Asset           `json:"assets"`
}

// ReleaseStructure is the view returned by the structure endpoint, combining
// the stored document with identifying fields of the release and its
// project.
type ReleaseStructure struct {
	ProjectID   uuid.UUID         `json:"projectId"`
	ProjectName string            `json:"projectName"`
	Version     string            `json:"version"`
	SnapshotID  string            `json:"snapshotId"`
	Config      ReleaseConfig     `json:"config"`
	Metadata    map[string]string `json:"metadata"`
}
