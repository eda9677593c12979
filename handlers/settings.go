package handlers

import (
	"errors"
	"net/http"

	"showcase/core"
	"showcase/database"
	"showcase/service"

	"github.com/gin-gonic/gin"
)

// GetSettings produces the settings page payload. The page always renders:
// an unavailable database yields defaults with dbAvailable:false, and a
// driver failure yields defaults plus an inline error message.
func GetSettings(c *gin.Context) {
	page, err := service.GlobalServices.Settings.Load()
	if err != nil {
		page.Error = err.Error()
	}
	c.JSON(http.StatusOK, page)
}

// UpdateSettings processes the settings form submission
// (action=updateSettings, isChecked=true|false) and returns the refreshed
// row set.
func UpdateSettings(c *gin.Context) {
	if action := c.PostForm("action"); action != "updateSettings" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "unknown action: " + action})
		return
	}

	isChecked := c.PostForm("isChecked") == "true"

	result, err := service.GlobalServices.Settings.Update(isChecked)
	if err != nil {
		core.LogWarn("settings", "settings update failed", err.Error())
		status := http.StatusInternalServerError
		if errors.Is(err, database.ErrUnavailable) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
