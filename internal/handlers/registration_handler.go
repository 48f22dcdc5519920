package handlers

import (
	"errors"
	"net/http"

	"expense-tracker/internal/schemas"
	"expense-tracker/internal/services"
	"expense-tracker/internal/utils"

	"github.com/gin-gonic/gin"
)

type RegistrationHdl interface {
	Register(c *gin.Context)
	Confirm(c *gin.Context)
	Regenerate(c *gin.Context)
}

type RegistrationHandler struct {
	RegistrationService services.RegistrationSvc
}

func NewRegistrationHandler(registrationService services.RegistrationSvc) RegistrationHdl {
	return &RegistrationHandler{RegistrationService: registrationService}
}

// Register creates an account and queues the confirmation mail.
func (handler *RegistrationHandler) Register(c *gin.Context) {
	request, ok := payload[schemas.RegistrationRequest](c)
	if !ok {
		return
	}

	response, err := handler.RegistrationService.Register(c.Request.Context(), request)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, response, registrationStatusCode(response, http.StatusCreated))
}

// Confirm handles the link from the confirmation mail.
func (handler *RegistrationHandler) Confirm(c *gin.Context) {
	token := c.Query(utils.TokenParamKey)
	if token == "" {
		utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, errors.New("token query parameter missing"))
		return
	}

	response, err := handler.RegistrationService.Confirm(c.Request.Context(), token)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, response, registrationStatusCode(response, http.StatusOK))
}

// Regenerate issues a new confirmation link for an existing account.
func (handler *RegistrationHandler) Regenerate(c *gin.Context) {
	request, ok := payload[schemas.RegenerateTokenRequest](c)
	if !ok {
		return
	}

	response, err := handler.RegistrationService.Regenerate(c.Request.Context(), request.Email)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, response, registrationStatusCode(response, http.StatusOK))
}

func registrationStatusCode(response *schemas.RegistrationResponse, success int) int {
	switch response.Status {
	case schemas.RegistrationInvalidEmail, schemas.RegistrationEmailUnreachable:
		return http.StatusBadRequest
	case schemas.RegistrationAlreadyConfirmed:
		return http.StatusConflict
	case schemas.RegistrationTokenExpired:
		return http.StatusGone
	default:
		return success
	}
}
