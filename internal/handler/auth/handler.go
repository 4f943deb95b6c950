package auth

import (
	"gother/internal/pkg/access"
	"gother/internal/service"
)

// Handler serves the authentication endpoints
type Handler struct {
	authService *service.AuthService
	userService *service.UserService
	resolver    *access.Resolver
}

// NewHandler creates the auth handler
func NewHandler(authService *service.AuthService, userService *service.UserService, resolver *access.Resolver) *Handler {
	return &Handler{
		authService: authService,
		userService: userService,
		resolver:    resolver,
	}
}
