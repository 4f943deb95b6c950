package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gother/internal/service"
)

// RegisterRequest account creation request
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	DisplayName string `json:"display_name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// RegisterResponseData account creation result
type RegisterResponseData struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	SerialID int64  `json:"serial_id"`
}

// Register creates an account
// @Summary      Register
// @Description  Creates an account and assigns its serial ID
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      RegisterRequest  true  "registration request"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  ErrorResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /api/v1/auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), req.Email, req.Password, req.DisplayName, req.PhoneNumber)
	if err != nil {
		status := http.StatusInternalServerError
		errorCode := 50001
		if err == service.ErrEmailTaken {
			status = http.StatusBadRequest
			errorCode = 40002
		}
		c.JSON(status, ErrorResponse{
			Code:    errorCode,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "registered",
		"data": RegisterResponseData{
			UserID:   resp.UserID,
			Email:    resp.Email,
			SerialID: resp.SerialID,
		},
	})
}
