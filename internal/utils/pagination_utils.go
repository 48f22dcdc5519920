// package utils provides utility functions to support various operations within the application.
package utils

import (
	"net/http"
	"strconv"

	"expense-tracker/internal/schemas"

	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

// ParsePaginationParams extracts the 'offset' and 'limit' parameters from the request's query parameters.
// It provides default values and clamps both into a usable range.
func ParsePaginationParams(c *gin.Context) (int, int) {
	offset, err := strconv.Atoi(c.DefaultQuery(OffsetParamKey, "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	limit, err := strconv.Atoi(c.DefaultQuery(LimitParamKey, strconv.Itoa(defaultLimit)))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	return offset, limit
}

// WritePaginatedResponse wraps one page of records, already cut by the database, with its pagination details.
func WritePaginatedResponse(c *gin.Context, records interface{}, offset, limit, totalRecords int) {
	paginatedResponse := &schemas.PaginatedResponse{
		Records: records,
		Pagination: schemas.Pagination{
			Offset:  offset,
			Limit:   limit,
			Records: totalRecords,
		},
	}

	WriteAndLogResponse(c, paginatedResponse, http.StatusOK)
}
