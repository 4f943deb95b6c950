package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gother/internal/pkg/ctxutil"
)

// GetMe returns the caller's profile with resolved capabilities
// @Summary      Current profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Failure      401  {object}  ErrorResponse
// @Router       /api/v1/auth/me [get]
func (h *Handler) GetMe(c *gin.Context) {
	session, ok := ctxutil.GetSession(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    40101,
			Message: "authorization required",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    toUserInfo(session.Profile, h.resolver),
	})
}

// UpdateProfileRequest profile edit request
type UpdateProfileRequest struct {
	DisplayName string `json:"display_name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// UpdateProfile edits the caller's own display fields
// @Summary      Update profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      UpdateProfileRequest  true  "profile update"
// @Success      200      {object}  map[string]interface{}
// @Router       /api/v1/auth/me [patch]
func (h *Handler) UpdateProfile(c *gin.Context) {
	session, ok := ctxutil.GetSession(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    40101,
			Message: "authorization required",
		})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	if err := h.userService.UpdateProfile(c.Request.Context(), session.UserID, req.DisplayName, req.PhoneNumber); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: "failed to update profile",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "updated",
	})
}
