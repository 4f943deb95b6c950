package shop

import (
	"gother/internal/service"
)

// ErrorResponse error envelope shared by the storefront endpoints
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// Handler serves the customer-facing storefront endpoints
type Handler struct {
	catalogService    *service.CatalogService
	orderService      *service.OrderService
	consultantService *service.ConsultantService
}

// NewHandler creates the storefront handler
func NewHandler(
	catalogService *service.CatalogService,
	orderService *service.OrderService,
	consultantService *service.ConsultantService,
) *Handler {
	return &Handler{
		catalogService:    catalogService,
		orderService:      orderService,
		consultantService: consultantService,
	}
}
