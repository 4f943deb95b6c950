package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gother/internal/service"
)

// SearchStaffRequest staff candidate lookup, by email or serial ID
type SearchStaffRequest struct {
	Identifier string `json:"identifier" binding:"required"`
}

// SearchStaff resolves a profile for the staff management screen
// @Summary      Find staff candidate
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      SearchStaffRequest  true  "lookup request"
// @Success      200      {object}  map[string]interface{}
// @Failure      404      {object}  ErrorResponse
// @Router       /api/v1/admin/staff/search [post]
func (h *Handler) SearchStaff(c *gin.Context) {
	var req SearchStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	user, err := h.userService.FindStaffCandidate(c.Request.Context(), req.Identifier)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    40402,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    user,
	})
}

// SetPermissionsRequest permission grant request
type SetPermissionsRequest struct {
	Permissions []string `json:"permissions"`
}

// SetPermissions grants a profile the moderator role with an explicit
// permission set; an empty set demotes back to a plain user
// @Summary      Set staff permissions
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                 true  "user id"
// @Param        request  body      SetPermissionsRequest  true  "permission set"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  ErrorResponse
// @Router       /api/v1/admin/staff/{id}/permissions [put]
func (h *Handler) SetPermissions(c *gin.Context) {
	var req SetPermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	user, err := h.userService.SetPermissions(c.Request.Context(), c.Param("id"), req.Permissions)
	if err != nil {
		status := http.StatusInternalServerError
		errorCode := 50001
		switch err {
		case service.ErrUserNotFound:
			status = http.StatusNotFound
			errorCode = 40402
		case service.ErrUnknownPermission:
			status = http.StatusBadRequest
			errorCode = 40005
		case service.ErrMasterAccount:
			status = http.StatusForbidden
			errorCode = 40305
		}
		c.JSON(status, ErrorResponse{
			Code:    errorCode,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "permissions updated",
		"data":    user,
	})
}

// CleanAdmins demotes every admin except the master account
// @Summary      Clean admins
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/admin/staff/clean [post]
func (h *Handler) CleanAdmins(c *gin.Context) {
	demoted, err := h.registryService.CleanAdmins(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: "cleanup failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "admins cleaned",
		"data":    gin.H{"demoted": demoted},
	})
}
