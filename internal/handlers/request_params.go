package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"expense-tracker/internal/errs"
	"expense-tracker/internal/middleware"
	"expense-tracker/internal/schemas"
	"expense-tracker/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// payload returns the validated request body, answering 400 when it is missing.
func payload[T any](c *gin.Context) (*T, bool) {
	request, err := middleware.GetPayload[T](c)
	if err != nil {
		utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, err)
		return nil, false
	}
	return request, true
}

func uuidParam(c *gin.Context, key string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(key))
	if err != nil {
		utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, err)
		return uuid.Nil, false
	}
	return id, true
}

func int64Param(c *gin.Context, key string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(key), 10, 64)
	if err != nil || id <= 0 {
		utils.WriteAndLogError(c, schemas.BadRequest, http.StatusBadRequest, fmt.Errorf("invalid %s %q", key, c.Param(key)))
		return 0, false
	}
	return id, true
}

// dateQuery parses an optional ISO date query parameter.
func dateQuery(c *gin.Context, key string) (*time.Time, error) {
	value := c.Query(key)
	if value == "" {
		return nil, nil
	}
	date, err := time.Parse(schemas.DateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", key, value, errs.ErrInvalidInput)
	}
	return &date, nil
}

func int64Query(c *gin.Context, key string) (*int64, error) {
	value := c.Query(key)
	if value == "" {
		return nil, nil
	}
	number, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", key, value, errs.ErrInvalidInput)
	}
	return &number, nil
}
