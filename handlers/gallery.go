package handlers

import (
	"errors"
	"net/http"

	"showcase/gallery"
	"showcase/models"
	"showcase/state"

	"github.com/gin-gonic/gin"
)

// CreateGallerySession mounts a new gallery view and returns its seeded state.
func CreateGallerySession(c *gin.Context) {
	id, view := state.Global.CreateSession()
	c.JSON(http.StatusOK, gin.H{"ok": true, "id": id, "state": view.Snapshot()})
}

// GetGallerySession returns the current state of a gallery view.
func GetGallerySession(c *gin.Context) {
	view, ok := state.Global.GetSession(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "gallery session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "state": view.Snapshot()})
}

// DeleteGallerySession tears a gallery view down; its state is discarded.
func DeleteGallerySession(c *gin.Context) {
	if !state.Global.RemoveSession(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "gallery session not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ToggleGalleryComponent shows or hides one of the showcased widgets.
func ToggleGalleryComponent(c *gin.Context) {
	view, ok := state.Global.GetSession(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "gallery session not found"})
		return
	}

	var req models.GalleryToggle
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	req.Normalize()

	snapshot, err := view.Toggle(req.Component, req.Visible)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "state": snapshot})
}

// SubmitGalleryName captures the modal form. Whitespace-only names are
// rejected without touching the submitted list, and the modal stays open.
func SubmitGalleryName(c *gin.Context) {
	view, ok := state.Global.GetSession(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "gallery session not found"})
		return
	}

	var req models.GallerySubmit
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	snapshot, err := view.SubmitName(req.Name)
	if err != nil {
		if errors.Is(err, gallery.ErrEmptyName) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "detail": err.Error(), "state": view.Snapshot()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "state": snapshot})
}

// SortGalleryStatus advances the three-state sort for a status log column.
func SortGalleryStatus(c *gin.Context) {
	view, ok := state.Global.GetSession(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "gallery session not found"})
		return
	}

	var req models.GallerySort
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	snapshot, err := view.Sort(req.Column)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "state": snapshot})
}
