package shop

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ConsultRequest gift consultation request
type ConsultRequest struct {
	Query string `json:"query" binding:"required"`
}

// Consult asks the gift consultant for recommendations
// @Summary      Gift consultant
// @Description  Answers a gifting question with catalog recommendations
// @Tags         shop
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      ConsultRequest  true  "consultation request"
// @Success      200      {object}  map[string]interface{}
// @Failure      503      {object}  ErrorResponse
// @Router       /api/v1/shop/consult [post]
func (h *Handler) Consult(c *gin.Context) {
	if h.consultantService == nil || !h.consultantService.Enabled() {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Code:    50301,
			Message: "consultant not available",
		})
		return
	}

	var req ConsultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	result, err := h.consultantService.Consult(c.Request.Context(), req.Query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: "consultation failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    result,
	})
}
