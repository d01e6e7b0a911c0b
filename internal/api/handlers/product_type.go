package handlers

import (
	"net/http"

	"cats-service/internal/db/queries"
	"cats-service/internal/models"

	"github.com/gin-gonic/gin"
)

// ProductTypeHandler содержит обработчики для работы с категориями продуктов
type ProductTypeHandler struct {
	productTypeQueries queries.ProductTypeQueriesInterface
}

// NewProductTypeHandler создает новый экземпляр ProductTypeHandler
func NewProductTypeHandler(productTypeQueries queries.ProductTypeQueriesInterface) *ProductTypeHandler {
	return &ProductTypeHandler{
		productTypeQueries: productTypeQueries,
	}
}

// ListProductTypes обрабатывает запрос на получение всех категорий продуктов
func (h *ProductTypeHandler) ListProductTypes(c *gin.Context) {
	productTypes, err := h.productTypeQueries.ListProductTypes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при получении категорий продуктов: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, productTypes)
}

// GetProductType обрабатывает запрос на получение категории продуктов по ID
func (h *ProductTypeHandler) GetProductType(c *gin.Context) {
	productType, err := h.productTypeQueries.GetProductTypeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Message: "Категория продуктов не найдена: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, productType)
}

// CreateProductType обрабатывает запрос на создание категории продуктов
func (h *ProductTypeHandler) CreateProductType(c *gin.Context) {
	var req models.CreateProductTypeRequest

	// Проверяем запрос
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Неверный запрос: " + err.Error(),
		})
		return
	}

	productType, err := h.productTypeQueries.CreateProductType(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при создании категории продуктов: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, productType)
}

// UpdateProductType обрабатывает запрос на изменение категории продуктов
func (h *ProductTypeHandler) UpdateProductType(c *gin.Context) {
	var req models.UpdateProductTypeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Неверный запрос: " + err.Error(),
		})
		return
	}

	productType, err := h.productTypeQueries.UpdateProductType(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при изменении категории продуктов: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, productType)
}

// DeleteProductType обрабатывает запрос на удаление категории продуктов
func (h *ProductTypeHandler) DeleteProductType(c *gin.Context) {
	if err := h.productTypeQueries.DeleteProductType(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при удалении категории продуктов: " + err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
