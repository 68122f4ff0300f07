package api

import (
	"errors"
	"net/http"

	reqdto "car-rental-api/internal/handler/dto/request"
	resdto "car-rental-api/internal/handler/dto/response"
	"car-rental-api/internal/handler/httperr"
	"car-rental-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// @Summary Issuer login
// @Description Login with email and password, returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAuthenticationFailed):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.Token,
		UserID:      result.UserID,
		Name:        result.Name,
		Email:       result.Email,
	})
}
