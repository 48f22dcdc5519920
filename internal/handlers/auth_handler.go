package handlers

import (
	"net/http"

	"expense-tracker/internal/schemas"
	"expense-tracker/internal/services"
	"expense-tracker/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHdl interface {
	Login(c *gin.Context)
}

type AuthHandler struct {
	AuthService services.AuthSvc
}

func NewAuthHandler(authService services.AuthSvc) AuthHdl {
	return &AuthHandler{AuthService: authService}
}

// Login exchanges email and password for an access token.
func (handler *AuthHandler) Login(c *gin.Context) {
	request, ok := payload[schemas.LoginRequest](c)
	if !ok {
		return
	}

	authentication, err := handler.AuthService.Login(c.Request.Context(), request)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, authentication, http.StatusOK)
}
