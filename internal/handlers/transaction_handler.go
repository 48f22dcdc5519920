package handlers

import (
	"net/http"

	"expense-tracker/internal/schemas"
	"expense-tracker/internal/services"
	"expense-tracker/internal/utils"

	"github.com/gin-gonic/gin"
)

type TransactionHdl interface {
	GetTransactions(c *gin.Context)
	GetTransaction(c *gin.Context)
	CreateTransaction(c *gin.Context)
	UpdateTransaction(c *gin.Context)
	DeleteTransaction(c *gin.Context)
}

type TransactionHandler struct {
	TransactionService services.TransactionSvc
}

func NewTransactionHandler(transactionService services.TransactionSvc) TransactionHdl {
	return &TransactionHandler{TransactionService: transactionService}
}

func (handler *TransactionHandler) GetTransactions(c *gin.Context) {
	offset, limit := utils.ParsePaginationParams(c)

	transactions, total, err := handler.TransactionService.GetTransactions(c.Request.Context(), offset, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WritePaginatedResponse(c, toTransactionDTOs(transactions), offset, limit, total)
}

func (handler *TransactionHandler) GetTransaction(c *gin.Context) {
	id, ok := int64Param(c, utils.IdKey)
	if !ok {
		return
	}

	transaction, err := handler.TransactionService.GetTransaction(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, schemas.NewTransactionDTO(transaction), http.StatusOK)
}

func (handler *TransactionHandler) CreateTransaction(c *gin.Context) {
	request, ok := payload[schemas.TransactionRequest](c)
	if !ok {
		return
	}

	transaction, err := handler.TransactionService.CreateTransaction(c.Request.Context(), request)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, schemas.NewTransactionDTO(transaction), http.StatusCreated)
}

func (handler *TransactionHandler) UpdateTransaction(c *gin.Context) {
	id, ok := int64Param(c, utils.IdKey)
	if !ok {
		return
	}
	request, ok := payload[schemas.TransactionRequest](c)
	if !ok {
		return
	}

	transaction, err := handler.TransactionService.UpdateTransaction(c.Request.Context(), id, request)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, schemas.NewTransactionDTO(transaction), http.StatusOK)
}

func (handler *TransactionHandler) DeleteTransaction(c *gin.Context) {
	id, ok := int64Param(c, utils.IdKey)
	if !ok {
		return
	}

	if err := handler.TransactionService.DeleteTransaction(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func toTransactionDTOs(transactions []*schemas.Transaction) []*schemas.TransactionDTO {
	dtos := make([]*schemas.TransactionDTO, 0, len(transactions))
	for _, transaction := range transactions {
		dtos = append(dtos, schemas.NewTransactionDTO(transaction))
	}
	return dtos
}
