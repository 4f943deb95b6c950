package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gother/internal/model/auth"
	"gother/internal/service"
)

// ListUsers returns a page of the roster
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page       query     int  false  "page"
// @Param        page_size  query     int  false  "page size"
// @Success      200        {object}  map[string]interface{}
// @Router       /api/v1/admin/users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	pageSize, _ := strconv.ParseInt(c.DefaultQuery("page_size", "20"), 10, 64)

	users, total, err := h.userService.List(c.Request.Context(), page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: "failed to list users",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data": gin.H{
			"users": users,
			"total": total,
			"page":  page,
		},
	})
}

// SetUserStatusRequest status change request
type SetUserStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetUserStatus moves an account between active, frozen and blocked
// @Summary      Set user status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                true  "user id"
// @Param        request  body      SetUserStatusRequest  true  "status change"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  ErrorResponse
// @Router       /api/v1/admin/users/{id}/status [put]
func (h *Handler) SetUserStatus(c *gin.Context) {
	var req SetUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	err := h.userService.SetStatus(c.Request.Context(), c.Param("id"), auth.UserStatus(req.Status))
	if err != nil {
		h.writeUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "status updated",
	})
}

// DeleteUser removes an account permanently
// @Summary      Delete user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "user id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /api/v1/admin/users/{id} [delete]
func (h *Handler) DeleteUser(c *gin.Context) {
	if err := h.userService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "user deleted",
	})
}

// WipeUsers deletes every profile except the master account
// @Summary      Wipe users
// @Description  Deletes all non-master profiles and revokes their sessions
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/admin/users/wipe [post]
func (h *Handler) WipeUsers(c *gin.Context) {
	deleted, err := h.registryService.WipeUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: "wipe failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "users wiped",
		"data":    gin.H{"deleted": deleted},
	})
}

func (h *Handler) writeUserError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	errorCode := 50001
	switch err {
	case service.ErrUserNotFound:
		status = http.StatusNotFound
		errorCode = 40402
	case service.ErrMasterAccount:
		status = http.StatusForbidden
		errorCode = 40305
	default:
		if err.Error() == "invalid status" {
			status = http.StatusBadRequest
			errorCode = 40004
		}
	}
	c.JSON(status, ErrorResponse{
		Code:    errorCode,
		Message: err.Error(),
	})
}
