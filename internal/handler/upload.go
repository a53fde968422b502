package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kunal-1408/deployed-portfolio-sub001/pkg/storage"
)

type UploadHandler struct {
	Store storage.Uploader
}

// Upload accepts one multipart file under "file" and returns the stored URL.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		writeError(c, err, "Failed to read upload")
		return
	}
	defer f.Close()

	url, err := h.Store.Upload(c.Request.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), f)
	if err != nil {
		writeError(c, err, "Failed to store upload")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
