package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gother/internal/model/store"
	"gother/internal/service"
)

// ListOrders returns every order, optionally narrowed by status
// @Summary      List orders
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "pending, completed or cancelled"
// @Success      200     {object}  map[string]interface{}
// @Router       /api/v1/admin/orders [get]
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.ListAll(c.Request.Context(), store.OrderStatus(c.Query("status")))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40004,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    orders,
	})
}

// SetOrderStatusRequest order status change
type SetOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// SetOrderStatus moves an order between pending, completed and cancelled
// @Summary      Set order status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                 true  "order id"
// @Param        request  body      SetOrderStatusRequest  true  "status change"
// @Success      200      {object}  map[string]interface{}
// @Router       /api/v1/admin/orders/{id}/status [put]
func (h *Handler) SetOrderStatus(c *gin.Context) {
	var req SetOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	err := h.orderService.SetStatus(c.Request.Context(), c.Param("id"), store.OrderStatus(req.Status))
	if err != nil {
		status := http.StatusBadRequest
		errorCode := 40004
		if err == service.ErrOrderNotFound {
			status = http.StatusNotFound
			errorCode = 40404
		}
		c.JSON(status, ErrorResponse{
			Code:    errorCode,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "order updated",
	})
}

// DeleteOrder removes an order permanently
// @Summary      Delete order
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "order id"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/admin/orders/{id} [delete]
func (h *Handler) DeleteOrder(c *gin.Context) {
	if err := h.orderService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		status := http.StatusInternalServerError
		errorCode := 50001
		if err == service.ErrOrderNotFound {
			status = http.StatusNotFound
			errorCode = 40404
		}
		c.JSON(status, ErrorResponse{
			Code:    errorCode,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "order deleted",
	})
}
