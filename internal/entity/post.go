package entity

import (
	"strings"
	"time"
)

type PostStatus string

const (
	StatusLost  PostStatus = "lost"
	StatusFound PostStatus = "found"
)

// Valid reports whether the status is one of the two known values.
func (s PostStatus) Valid() bool {
	return s == StatusLost || s == StatusFound
}

type Post struct {
	ID           string     `json:"id"`
	Status       PostStatus `json:"status"`
	ItemName     string     `json:"itemName"`
	Description  string     `json:"description,omitempty"`
	Location     string     `json:"location"`
	ContactInfo  string     `json:"contactInfo"`
	ContactPhone string     `json:"contactPhone,omitempty"`
	Image        string     `json:"image,omitempty"`
	IsActive     bool       `json:"isActive"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// PostFilter describes a feed query. A zero value lists all active posts.
type PostFilter struct {
	Status          PostStatus // empty means no status filter
	IncludeInactive bool
	Search          string // literal case-insensitive substring
}

// Normalize trims every text field. Optional fields that end up empty are
// cleared so they are never stored as whitespace-only strings.
func (p *Post) Normalize() {
	p.ItemName = strings.TrimSpace(p.ItemName)
	p.Description = strings.TrimSpace(p.Description)
	p.Location = strings.TrimSpace(p.Location)
	p.ContactInfo = strings.TrimSpace(p.ContactInfo)
	p.ContactPhone = strings.TrimSpace(p.ContactPhone)
	p.Image = strings.TrimSpace(p.Image)
}

// Validate checks the status enum and required fields. Call after Normalize.
func (p *Post) Validate() error {
	if !p.Status.Valid() {
		return NewValidationError(`Post validation failed: status must be either "lost" or "found".`)
	}
	if p.ItemName == "" {
		return NewValidationError("Post validation failed: itemName is required.")
	}
	if p.Location == "" {
		return NewValidationError("Post validation failed: location is required.")
	}
	if p.ContactInfo == "" {
		return NewValidationError("Post validation failed: contactInfo is required.")
	}
	return nil
}
