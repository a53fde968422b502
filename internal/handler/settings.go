package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/models"
	"github.com/Kunal-1408/deployed-portfolio-sub001/internal/store"
)

type SettingsHandler struct {
	Settings store.SettingsStore
}

// GetSettings returns the site-wide singleton. Before the first save it
// comes back empty rather than as a 404, so page renders always have a
// record to work with.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.Settings.GetSettings(c.Request.Context())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, &models.Settings{})
			return
		}
		writeError(c, err, "Failed to fetch settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}

type UpdateSettingsRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
	Logo        string `json:"logo"`
	FooterLogo  string `json:"footer_logo"`
	Favicon     string `json:"favicon"`
}

// UpdateSettings read-modify-writes the singleton; no id is involved.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.Settings.GetSettings(c.Request.Context())
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			writeError(c, err, "Failed to fetch settings")
			return
		}
		settings = &models.Settings{}
	}

	settings.Title = req.Title
	settings.Description = req.Description
	settings.Keywords = req.Keywords
	settings.Logo = req.Logo
	settings.FooterLogo = req.FooterLogo
	settings.Favicon = req.Favicon

	if err := h.Settings.SaveSettings(c.Request.Context(), settings); err != nil {
		writeError(c, err, "Failed to save settings")
		return
	}
	c.JSON(http.StatusOK, settings)
}
