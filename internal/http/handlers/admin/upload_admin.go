package admin

import (
	"net/http"

	"github.com/reborn-nursery/storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// UploadFile stores an uploaded image and returns its public URL.
func (h *Handler) UploadFile(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "File is required", nil)
		return
	}
	scene := c.DefaultPostForm("scene", "common")

	url, err := h.UploadService.SaveFile(file, scene)
	if err != nil {
		respondCRUDError(c, err, "Failed to upload file")
		return
	}

	response.Success(c, gin.H{
		"url":      url,
		"filename": file.Filename,
		"size":     file.Size,
	})
}

// DeleteFile removes a previously uploaded file by its public path.
func (h *Handler) DeleteFile(c *gin.Context) {
	var req struct {
		Path string `json:"path" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request", err)
		return
	}
	if err := h.UploadService.DeleteFile(req.Path); err != nil {
		respondCRUDError(c, err, "Failed to delete file")
		return
	}
	response.NoContent(c)
}
