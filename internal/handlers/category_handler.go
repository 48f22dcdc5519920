package handlers

import (
	"net/http"

	"expense-tracker/internal/schemas"
	"expense-tracker/internal/services"
	"expense-tracker/internal/utils"

	"github.com/gin-gonic/gin"
)

type CategoryHdl interface {
	GetCategories(c *gin.Context)
	GetCategory(c *gin.Context)
	CreateCategory(c *gin.Context)
	UpdateCategory(c *gin.Context)
	DeleteCategory(c *gin.Context)
}

type CategoryHandler struct {
	CategoryService services.CategorySvc
}

func NewCategoryHandler(categoryService services.CategorySvc) CategoryHdl {
	return &CategoryHandler{CategoryService: categoryService}
}

func (handler *CategoryHandler) GetCategories(c *gin.Context) {
	offset, limit := utils.ParsePaginationParams(c)

	categories, total, err := handler.CategoryService.GetCategories(c.Request.Context(), offset, limit)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	dtos := make([]*schemas.CategoryDTO, 0, len(categories))
	for _, category := range categories {
		dtos = append(dtos, toCategoryDTO(category))
	}

	utils.WritePaginatedResponse(c, dtos, offset, limit, total)
}

func (handler *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := int64Param(c, utils.IdKey)
	if !ok {
		return
	}

	category, err := handler.CategoryService.GetCategory(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, toCategoryDTO(category), http.StatusOK)
}

func (handler *CategoryHandler) CreateCategory(c *gin.Context) {
	request, ok := payload[schemas.CategoryRequest](c)
	if !ok {
		return
	}

	category, err := handler.CategoryService.CreateCategory(c.Request.Context(), request)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, toCategoryDTO(category), http.StatusCreated)
}

func (handler *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := int64Param(c, utils.IdKey)
	if !ok {
		return
	}
	request, ok := payload[schemas.CategoryRequest](c)
	if !ok {
		return
	}

	category, err := handler.CategoryService.UpdateCategory(c.Request.Context(), id, request)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	utils.WriteAndLogResponse(c, toCategoryDTO(category), http.StatusOK)
}

func (handler *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := int64Param(c, utils.IdKey)
	if !ok {
		return
	}

	if err := handler.CategoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}

	utils.LogMessageWithFields(c.Request.Context(), "info", "Deleted category")
	c.Status(http.StatusNoContent)
}

func toCategoryDTO(category *schemas.Category) *schemas.CategoryDTO {
	return &schemas.CategoryDTO{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
	}
}
