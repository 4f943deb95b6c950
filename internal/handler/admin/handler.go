package admin

import (
	"gother/internal/pkg/access"
	"gother/internal/service"
)

// ErrorResponse error envelope shared by the admin endpoints
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// Handler serves the back-office endpoints
type Handler struct {
	userService     *service.UserService
	registryService *service.RegistryService
	catalogService  *service.CatalogService
	orderService    *service.OrderService
	mediaService    *service.MediaService
	statsService    *service.StatsService
	resolver        *access.Resolver
}

// NewHandler creates the admin handler
func NewHandler(
	userService *service.UserService,
	registryService *service.RegistryService,
	catalogService *service.CatalogService,
	orderService *service.OrderService,
	mediaService *service.MediaService,
	statsService *service.StatsService,
	resolver *access.Resolver,
) *Handler {
	return &Handler{
		userService:     userService,
		registryService: registryService,
		catalogService:  catalogService,
		orderService:    orderService,
		mediaService:    mediaService,
		statsService:    statsService,
		resolver:        resolver,
	}
}
