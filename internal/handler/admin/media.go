package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gother/internal/service"
)

// UploadMedia stores an uploaded media file and returns its URL.
// kind selects the key prefix: banner, preview or asset.
// @Summary      Upload media
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        kind  formData  string  true  "banner, preview or asset"
// @Param        file  formData  file    true  "media file"
// @Success      201   {object}  map[string]interface{}
// @Failure      400   {object}  ErrorResponse
// @Router       /api/v1/admin/media [post]
func (h *Handler) UploadMedia(c *gin.Context) {
	if h.mediaService == nil || !h.mediaService.Enabled() {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:    50302,
			Message: "media storage not configured",
		})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "file is required",
			Detail:  err.Error(),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "failed to read file",
		})
		return
	}
	defer file.Close()

	url, err := h.mediaService.Upload(c.Request.Context(), c.PostForm("kind"), fileHeader.Filename, file)
	if err != nil {
		status := http.StatusInternalServerError
		errorCode := 50001
		if err == service.ErrUnsupportedMedia {
			status = http.StatusBadRequest
			errorCode = 40007
		}
		c.JSON(status, ErrorResponse{
			Code:    errorCode,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "uploaded",
		"data":    gin.H{"url": url},
	})
}
