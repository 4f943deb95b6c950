package shop

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gother/internal/pkg/ctxutil"
	"gother/internal/service"
)

// PlaceOrderRequest purchase request
type PlaceOrderRequest struct {
	CustomerName     string              `json:"customer_name" binding:"required"`
	CustomerWhatsApp string              `json:"customer_whatsapp" binding:"required"`
	Items            []service.OrderLine `json:"items" binding:"required"`
	Notes            string              `json:"notes,omitempty"`
}

// PlaceOrder creates an order for the signed-in customer
// @Summary      Place order
// @Tags         shop
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      PlaceOrderRequest  true  "order request"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  ErrorResponse
// @Failure      403      {object}  ErrorResponse
// @Router       /api/v1/shop/orders [post]
func (h *Handler) PlaceOrder(c *gin.Context) {
	session, ok := ctxutil.GetSession(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    40101,
			Message: "authorization required",
		})
		return
	}

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	order, err := h.orderService.Place(c.Request.Context(), session.Profile,
		req.CustomerName, req.CustomerWhatsApp, req.Notes, req.Items)
	if err != nil {
		status := http.StatusBadRequest
		errorCode := 40003
		switch err {
		case service.ErrAccountReadOnly:
			status = http.StatusForbidden
			errorCode = 40304
		case service.ErrProductNotFound:
			status = http.StatusNotFound
			errorCode = 40401
		case service.ErrEmptyOrder, service.ErrInvalidQuantity:
			errorCode = 40003
		default:
			status = http.StatusInternalServerError
			errorCode = 50001
		}
		c.JSON(status, ErrorResponse{
			Code:    errorCode,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "order placed",
		"data":    order,
	})
}

// ListMyOrders returns the caller's orders
// @Summary      My orders
// @Tags         shop
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/shop/orders [get]
func (h *Handler) ListMyOrders(c *gin.Context) {
	session, ok := ctxutil.GetSession(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Code:    40101,
			Message: "authorization required",
		})
		return
	}

	orders, err := h.orderService.ListMine(c.Request.Context(), session.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: "failed to list orders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    orders,
	})
}
