package middleware

import (
	"errors"
	"net/http"
	"reflect"

	"expense-tracker/internal/schemas"
	"expense-tracker/internal/utils"

	"github.com/gin-gonic/gin"
)

// ValidateAndSanitizeStruct binds the JSON body into a fresh value of obj's type, sanitises and
// validates it, and stores the pointer under SanitizedPayloadKey for the handler.
func ValidateAndSanitizeStruct(obj interface{}) gin.HandlerFunc {
	payloadType := reflect.TypeOf(obj)
	if payloadType.Kind() == reflect.Pointer {
		payloadType = payloadType.Elem()
	}

	return func(c *gin.Context) {
		payload := reflect.New(payloadType).Interface()

		if err := c.ShouldBindJSON(payload); err != nil {
			utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, err)
			return
		}

		validator := utils.GetValidator()
		if err := validator.SanitizeData(payload); err != nil {
			utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, err)
			return
		}

		if err := validator.Validate.Struct(payload); err != nil {
			utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, err)
			return
		}

		c.Set(utils.SanitizedPayloadKey.String(), payload)
		c.Next()
	}
}

// GetPayload returns the payload stored by ValidateAndSanitizeStruct.
func GetPayload[T any](c *gin.Context) (*T, error) {
	value, exists := c.Get(utils.SanitizedPayloadKey.String())
	if !exists {
		return nil, errors.New("no payload in request context")
	}
	payload, ok := value.(*T)
	if !ok {
		return nil, errors.New("unexpected payload type in request context")
	}
	return payload, nil
}
