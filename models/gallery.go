package models

import "strings"

// Widget statuses shown in the gallery status log.
const (
	StatusActive    = "Active"
	StatusInactive  = "Inactive"
	StatusSubmitted = "Submitted"
)

// StatusEntry is one row of the gallery status log. Entries live only for the
// duration of a gallery view session and are never removed, only updated or
// appended.
type StatusEntry struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
	Time   string `json:"time"`
}

// GalleryToggle is the request payload for showing or hiding a widget.
type GalleryToggle struct {
	Component string `json:"component" binding:"required"`
	Visible   bool   `json:"visible"`
}

// Normalize trims whitespace from input fields
func (g *GalleryToggle) Normalize() {
	g.Component = strings.TrimSpace(g.Component)
}

// GallerySubmit is the request payload for the modal form capture.
type GallerySubmit struct {
	Name string `json:"name"`
}

// GallerySort is the request payload for sorting the status log.
type GallerySort struct {
	Column string `json:"column" binding:"required"`
}
