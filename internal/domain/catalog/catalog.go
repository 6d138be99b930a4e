// Package catalog holds the site's editable content: cleaning services and
// service packages. Both are simple content records owned by the admin panel.
package catalog

import "time"

// Service is a single offered cleaning service.
type Service struct {
	ID          uint
	Title       string
	Description string
	Images      []string
	Icon        string // legacy glyph, only present in seeded rows
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Package is a bundle of services sold together.
type Package struct {
	ID          uint
	Title       string
	Includes    []string
	Description string
	Images      []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
