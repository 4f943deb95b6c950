package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gother/internal/service"
)

// LoginRequest credential exchange request. Identifier is an email or an
// all-digit serial ID.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// LoginResponseData credential exchange result
type LoginResponseData struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int      `json:"expires_in"`
	TokenType    string   `json:"token_type"`
	User         UserInfo `json:"user"`
}

// Login exchanges credentials for a token pair
// @Summary      Login
// @Description  Signs in with an email or a serial ID
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "login request"
// @Success      200      {object}  map[string]interface{}
// @Failure      400      {object}  ErrorResponse
// @Failure      401      {object}  ErrorResponse
// @Router       /api/v1/auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		status := http.StatusUnauthorized
		errorCode := 40103
		switch err {
		case service.ErrSerialNotFound:
			errorCode = 40104
		case service.ErrUserBlocked:
			status = http.StatusForbidden
			errorCode = 40105
		case service.ErrUserNotFound, service.ErrInvalidPassword:
			errorCode = 40103
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

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data": LoginResponseData{
			AccessToken:  resp.AccessToken,
			RefreshToken: resp.RefreshToken,
			ExpiresIn:    resp.ExpiresIn,
			TokenType:    resp.TokenType,
			User:         toUserInfo(resp.User, h.resolver),
		},
	})
}
