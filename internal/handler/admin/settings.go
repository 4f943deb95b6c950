package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gother/internal/model/store"
)

// SettingsRequest storefront settings payload
type SettingsRequest struct {
	SiteName       string `json:"site_name" binding:"required"`
	WhatsApp       string `json:"whatsapp,omitempty"`
	SectionTitleAr string `json:"section_title_ar,omitempty"`
	SectionTitleEn string `json:"section_title_en,omitempty"`
}

// UpdateSettings replaces the storefront settings singleton
// @Summary      Update settings
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      SettingsRequest  true  "settings"
// @Success      200      {object}  map[string]interface{}
// @Router       /api/v1/admin/settings [put]
func (h *Handler) UpdateSettings(c *gin.Context) {
	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	settings := &store.Settings{
		SiteName:       req.SiteName,
		WhatsApp:       req.WhatsApp,
		SectionTitleAr: req.SectionTitleAr,
		SectionTitleEn: req.SectionTitleEn,
	}
	if err := h.catalogService.UpdateSettings(c.Request.Context(), settings); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: "failed to update settings",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "settings updated",
		"data":    settings,
	})
}
