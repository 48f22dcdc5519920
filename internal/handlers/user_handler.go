package handlers

import (
	"net/http"

	"expense-tracker/internal/schemas"
	"expense-tracker/internal/services"
	"expense-tracker/internal/utils"

	"github.com/gin-gonic/gin"
)

type UserHdl interface {
	GetUsers(c *gin.Context)
	GetUser(c *gin.Context)
	UpdateUser(c *gin.Context)
	GetUserTransactions(c *gin.Context)
}

type UserHandler struct {
	UserService        services.UserSvc
	TransactionService services.TransactionSvc
}

func NewUserHandler(userService services.UserSvc, transactionService services.TransactionSvc) UserHdl {
	return &UserHandler{
		UserService:        userService,
		TransactionService: transactionService,
	}
}

func (handler *UserHandler) GetUsers(c *gin.Context) {
	offset, limit := utils.ParsePaginationParams(c)

	accounts, total, err := handler.UserService.GetUsers(c.Request.Context(), offset, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	users := make([]*schemas.UserDTO, 0, len(accounts))
	for _, account := range accounts {
		users = append(users, schemas.NewUserDTO(account))
	}

	utils.WritePaginatedResponse(c, users, offset, limit, total)
}

func (handler *UserHandler) GetUser(c *gin.Context) {
	id, ok := uuidParam(c, utils.IdKey)
	if !ok {
		return
	}

	account, err := handler.UserService.GetUserByID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, schemas.NewUserDTO(account), http.StatusOK)
}

// UpdateUser replaces the profile of a user. A request that changes nothing is rejected.
func (handler *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := uuidParam(c, utils.IdKey)
	if !ok {
		return
	}
	request, ok := payload[schemas.UserUpdateRequest](c)
	if !ok {
		return
	}

	account, err := handler.UserService.UpdateUser(c.Request.Context(), id, request)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, schemas.NewUserDTO(account), http.StatusOK)
}

// GetUserTransactions lists the transactions of a user, optionally narrowed by
// startDate and endDate (both required for the range to apply) and categoryId.
func (handler *UserHandler) GetUserTransactions(c *gin.Context) {
	id, ok := uuidParam(c, utils.IdKey)
	if !ok {
		return
	}

	startDate, err := dateQuery(c, utils.StartDateParamKey)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	endDate, err := dateQuery(c, utils.EndDateParamKey)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	categoryID, err := int64Query(c, utils.CategoryIdParamKey)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	offset, limit := utils.ParsePaginationParams(c)
	filter := &schemas.TransactionFilter{
		AccountID:  id,
		StartDate:  startDate,
		EndDate:    endDate,
		CategoryID: categoryID,
		Offset:     offset,
		Limit:      limit,
	}

	transactions, total, err := handler.TransactionService.GetTransactionsForUser(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WritePaginatedResponse(c, toTransactionDTOs(transactions), offset, limit, total)
}
