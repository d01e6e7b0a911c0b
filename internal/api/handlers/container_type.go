package handlers

import (
	"net/http"

	"cats-service/internal/db/queries"
	"cats-service/internal/models"

	"github.com/gin-gonic/gin"
)

// ContainerTypeHandler содержит обработчики для работы с типами тары
type ContainerTypeHandler struct {
	containerTypeQueries queries.ContainerTypeQueriesInterface
}

// NewContainerTypeHandler создает новый экземпляр ContainerTypeHandler
func NewContainerTypeHandler(containerTypeQueries queries.ContainerTypeQueriesInterface) *ContainerTypeHandler {
	return &ContainerTypeHandler{
		containerTypeQueries: containerTypeQueries,
	}
}

// ListContainerTypes обрабатывает запрос на получение всех типов тары
func (h *ContainerTypeHandler) ListContainerTypes(c *gin.Context) {
	containerTypes, err := h.containerTypeQueries.ListContainerTypes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при получении типов тары: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, containerTypes)
}

// GetContainerType обрабатывает запрос на получение типа тары по ID
func (h *ContainerTypeHandler) GetContainerType(c *gin.Context) {
	containerType, err := h.containerTypeQueries.GetContainerTypeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Message: "Тип тары не найден: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, containerType)
}

// CreateContainerType обрабатывает запрос на создание типа тары
func (h *ContainerTypeHandler) CreateContainerType(c *gin.Context) {
	var req models.CreateContainerTypeRequest

	// Проверяем запрос
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Неверный запрос: " + err.Error(),
		})
		return
	}

	containerType, err := h.containerTypeQueries.CreateContainerType(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при создании типа тары: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, containerType)
}

// UpdateContainerType обрабатывает запрос на изменение типа тары
func (h *ContainerTypeHandler) UpdateContainerType(c *gin.Context) {
	var req models.UpdateContainerTypeRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Неверный запрос: " + err.Error(),
		})
		return
	}

	containerType, err := h.containerTypeQueries.UpdateContainerType(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при изменении типа тары: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, containerType)
}

// DeleteContainerType обрабатывает запрос на удаление типа тары
func (h *ContainerTypeHandler) DeleteContainerType(c *gin.Context) {
	if err := h.containerTypeQueries.DeleteContainerType(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при удалении типа тары: " + err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
