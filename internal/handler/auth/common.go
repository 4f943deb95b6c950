package auth

import (
	"time"

	"gother/internal/model/auth"
	"gother/internal/pkg/access"
)

// ErrorResponse error envelope shared by the auth endpoints
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// UserInfo is the profile shape returned to clients
type UserInfo struct {
	ID            string   `json:"id"`
	Email         string   `json:"email"`
	SerialID      int64    `json:"serial_id,omitempty"`
	Role          string   `json:"role"`
	EffectiveRole string   `json:"effective_role"`
	Status        string   `json:"status"`
	Permissions   []string `json:"permissions,omitempty"`
	DefaultTab    string   `json:"default_tab,omitempty"`
	DisplayName   string   `json:"display_name,omitempty"`
	PhoneNumber   string   `json:"phone_number,omitempty"`
	LastLoginAt   string   `json:"last_login_at,omitempty"`
	CreatedAt     string   `json:"created_at,omitempty"`
}

// toUserInfo projects a profile plus its resolved capabilities.
// The stored role and the effective role can differ for master serials.
func toUserInfo(user *auth.User, resolver *access.Resolver) UserInfo {
	info := UserInfo{
		ID:            user.ID,
		Email:         user.Email,
		SerialID:      user.SerialID,
		Role:          string(user.Role),
		EffectiveRole: string(resolver.EffectiveRole(user)),
		Status:        string(user.Status),
		DisplayName:   user.DisplayName,
		PhoneNumber:   user.PhoneNumber,
		CreatedAt:     user.CreatedAt.Format(time.RFC3339),
	}

	for _, p := range user.Permissions {
		info.Permissions = append(info.Permissions, string(p))
	}
	if role := resolver.EffectiveRole(user); role == auth.RoleAdmin || role == auth.RoleModerator {
		info.DefaultTab = string(resolver.DefaultTab(user))
	}
	if user.LastLoginAt != nil {
		info.LastLoginAt = user.LastLoginAt.Format(time.RFC3339)
	}
	return info
}
