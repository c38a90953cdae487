package api

import (
	"net/http"

	resdto "booking-registry/internal/handler/dto/response"
	"booking-registry/internal/handler/httperr"
	"booking-registry/internal/handler/middleware"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// @Summary Get current account
// @Description Get the account the bearer token identifies
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.MeResponse
// @Failure 401 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	holder, ok := middleware.GetAccount(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.MeResponse{Account: holder.String()})
}
