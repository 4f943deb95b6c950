package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gother/internal/service"
)

// ReLinkCredentialRequest linked credential replacement
type ReLinkCredentialRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// ReLinkCredential replaces the credential behind serial-ID login
// @Summary      Re-link credential
// @Description  Replaces the linked password used for serial-ID login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                   true  "user id"
// @Param        request  body      ReLinkCredentialRequest  true  "new credential"
// @Success      200      {object}  map[string]interface{}
// @Router       /api/v1/admin/linker/{id}/credential [put]
func (h *Handler) ReLinkCredential(c *gin.Context) {
	var req ReLinkCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	if err := h.registryService.ReLinkCredential(c.Request.Context(), c.Param("id"), req.Password); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: "failed to re-link credential",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "credential re-linked",
	})
}

// ReassignSerialRequest manual serial move
type ReassignSerialRequest struct {
	SerialID int64 `json:"serial_id" binding:"required"`
}

// ReassignSerial moves a profile to a manually chosen serial ID
// @Summary      Reassign serial ID
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                 true  "user id"
// @Param        request  body      ReassignSerialRequest  true  "new serial"
// @Success      200      {object}  map[string]interface{}
// @Failure      409      {object}  ErrorResponse
// @Router       /api/v1/admin/linker/{id}/serial [put]
func (h *Handler) ReassignSerial(c *gin.Context) {
	var req ReassignSerialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	err := h.registryService.ReassignSerial(c.Request.Context(), c.Param("id"), req.SerialID)
	if err != nil {
		status := http.StatusInternalServerError
		errorCode := 50001
		switch err {
		case service.ErrSerialTaken:
			status = http.StatusConflict
			errorCode = 40901
		case service.ErrSerialReserved:
			status = http.StatusForbidden
			errorCode = 40306
		}
		c.JSON(status, ErrorResponse{
			Code:    errorCode,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "serial reassigned",
	})
}

// SyncMaster repairs the master end of the serial number space
// @Summary      Sync master serial
// @Description  Pins the admin account to the master serial and evicts squatters
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/admin/linker/sync [post]
func (h *Handler) SyncMaster(c *gin.Context) {
	result, err := h.registryService.SyncMaster(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: "sync failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "sync complete",
		"data":    result,
	})
}
