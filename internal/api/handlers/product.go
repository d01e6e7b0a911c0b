package handlers

import (
	"net/http"

	"cats-service/internal/db/queries"
	"cats-service/internal/models"

	"github.com/gin-gonic/gin"
)

// ProductHandler содержит обработчики для работы с продуктами
type ProductHandler struct {
	productQueries     queries.ProductQueriesInterface
	productTypeQueries queries.ProductTypeQueriesInterface
}

// NewProductHandler создает новый экземпляр ProductHandler
func NewProductHandler(productQueries queries.ProductQueriesInterface, productTypeQueries queries.ProductTypeQueriesInterface) *ProductHandler {
	return &ProductHandler{
		productQueries:     productQueries,
		productTypeQueries: productTypeQueries,
	}
}

// ListProducts обрабатывает запрос на получение всех продуктов
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productQueries.ListProducts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при получении продуктов: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetProduct обрабатывает запрос на получение продукта по ID
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productQueries.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Message: "Продукт не найден: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct обрабатывает запрос на создание продукта
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest

	// Проверяем запрос
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Неверный запрос: " + err.Error(),
		})
		return
	}

	// Проверяем, что категория продуктов существует
	if _, err := h.productTypeQueries.GetProductTypeByID(c.Request.Context(), req.ProductTypeID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Категория продуктов не найдена: " + err.Error(),
		})
		return
	}

	product, err := h.productQueries.CreateProduct(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при создании продукта: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct обрабатывает запрос на изменение продукта
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var req models.UpdateProductRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Неверный запрос: " + err.Error(),
		})
		return
	}

	if _, err := h.productTypeQueries.GetProductTypeByID(c.Request.Context(), req.ProductTypeID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Категория продуктов не найдена: " + err.Error(),
		})
		return
	}

	product, err := h.productQueries.UpdateProduct(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при изменении продукта: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct обрабатывает запрос на удаление продукта
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	if err := h.productQueries.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при удалении продукта: " + err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
