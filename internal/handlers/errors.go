package handlers

import (
	"errors"
	"net/http"

	"expense-tracker/internal/errs"
	"expense-tracker/internal/schemas"
	"expense-tracker/internal/utils"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps an error returned by a service to the HTTP error response.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrUserNotFound):
		utils.WriteAndLogError(c, schemas.UserNotFound, http.StatusNotFound, err)
	case errors.Is(err, errs.ErrTokenNotFound):
		utils.WriteAndLogError(c, schemas.TokenNotFound, http.StatusNotFound, err)
	case errors.Is(err, errs.ErrCategoryNotFound):
		utils.WriteAndLogError(c, schemas.CategoryNotFound, http.StatusNotFound, err)
	case errors.Is(err, errs.ErrTransactionNotFound):
		utils.WriteAndLogError(c, schemas.TransactionNotFound, http.StatusNotFound, err)
	case errors.Is(err, errs.ErrEmailTaken):
		utils.WriteAndLogError(c, schemas.EmailTaken, http.StatusConflict, err)
	case errors.Is(err, errs.ErrCategoryExists):
		utils.WriteAndLogError(c, schemas.CategoryExists, http.StatusConflict, err)
	case errors.Is(err, errs.ErrCategoryInUse):
		utils.WriteAndLogError(c, schemas.CategoryInUse, http.StatusConflict, err)
	case errors.Is(err, errs.ErrInvalidCredentials):
		utils.WriteAndLogError(c, schemas.InvalidCredentials, http.StatusUnauthorized, err)
	case errors.Is(err, errs.ErrAccountDisabled):
		utils.WriteAndLogError(c, schemas.UserNotActivated, http.StatusForbidden, err)
	case errors.Is(err, errs.ErrNoChanges):
		utils.WriteAndLogError(c, schemas.NoFieldsChanged, http.StatusBadRequest, err)
	case errors.Is(err, errs.ErrInvalidInput):
		utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, err)
	case errors.Is(err, errs.ErrInvariantViolation):
		utils.WriteAndLogError(c, schemas.InvariantViolation, http.StatusInternalServerError, err)
	case errors.Is(err, errs.ErrDispatchFailed):
		utils.WriteAndLogError(c, schemas.MailDispatchFailed, http.StatusServiceUnavailable, err)
	default:
		utils.WriteAndLogError(c, schemas.DatabaseError, http.StatusInternalServerError, err)
	}
}
