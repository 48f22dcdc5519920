package utils

const (
	// IdKey is the key for a resource ID used in routing parameters.
	IdKey = "id"

	// TokenParamKey is the key for the confirmation token used in query parameters.
	TokenParamKey = "token"

	// OffsetParamKey is the key for offset used in pagination query parameters.
	OffsetParamKey = "offset"

	// LimitParamKey is the key for limit used in pagination query parameters.
	LimitParamKey = "limit"

	// StartDateParamKey is the key for the first day of a transaction date range.
	StartDateParamKey = "startDate"

	// EndDateParamKey is the key for the last day of a transaction date range.
	EndDateParamKey = "endDate"

	// CategoryIdParamKey is the key for a category filter used in query parameters.
	CategoryIdParamKey = "categoryId"
)
