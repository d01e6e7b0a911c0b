package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"cats-service/internal/db/queries"
	"cats-service/internal/models"
	"cats-service/internal/utils"

	"github.com/gin-gonic/gin"
)

// ContainerHandler содержит обработчики для работы с тарой
type ContainerHandler struct {
	containerQueries     queries.ContainerQueriesInterface
	containerTypeQueries queries.ContainerTypeQueriesInterface
}

// NewContainerHandler создает новый экземпляр ContainerHandler
func NewContainerHandler(containerQueries queries.ContainerQueriesInterface, containerTypeQueries queries.ContainerTypeQueriesInterface) *ContainerHandler {
	return &ContainerHandler{
		containerQueries:     containerQueries,
		containerTypeQueries: containerTypeQueries,
	}
}

func parseContainerID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Неверный ID тары",
		})
		return 0, false
	}
	return id, true
}

// ListContainers обрабатывает запрос на получение всей тары
func (h *ContainerHandler) ListContainers(c *gin.Context) {
	containers, err := h.containerQueries.ListContainers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при получении списка тары: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, containers)
}

// SearchContainers обрабатывает запрос на поиск тары по составному фильтру
func (h *ContainerHandler) SearchContainers(c *gin.Context) {
	var params models.SearchContainersParams

	// Проверяем параметры запроса
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Неверные параметры поиска: " + err.Error(),
		})
		return
	}

	containers, err := h.containerQueries.SearchContainers(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при поиске тары: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, containers)
}

// GetContainer обрабатывает запрос на получение тары по ID
func (h *ContainerHandler) GetContainer(c *gin.Context) {
	id, ok := parseContainerID(c)
	if !ok {
		return
	}

	container, err := h.containerQueries.GetContainerByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Message: "Тара не найдена: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, container)
}

// GetContainerByCode обрабатывает запрос на получение тары по коду
func (h *ContainerHandler) GetContainerByCode(c *gin.Context) {
	code := c.Param("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Не указан код тары",
		})
		return
	}

	container, err := h.containerQueries.GetContainerByCode(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Message: "Тара не найдена: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, container)
}

// CreateContainer обрабатывает запрос на создание тары. Если код не указан,
// он генерируется из префикса типа тары.
func (h *ContainerHandler) CreateContainer(c *gin.Context) {
	var req models.CreateContainerRequest

	// Проверяем запрос
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Неверный запрос: " + err.Error(),
		})
		return
	}

	// Проверяем, что тип тары существует
	containerType, err := h.containerTypeQueries.GetContainerTypeByID(c.Request.Context(), req.ContainerTypeID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Тип тары не найден: " + err.Error(),
		})
		return
	}

	// Генерируем код, если он не задан
	code := ""
	if req.Code != nil {
		code = *req.Code
	}
	if code == "" {
		code = utils.GenerateContainerCode(containerType.CodePrefix)
	}

	container, err := h.containerQueries.CreateContainer(c.Request.Context(), req, code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при создании тары: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, container)
}

// UpdateContainer обрабатывает запрос на изменение атрибутов тары
func (h *ContainerHandler) UpdateContainer(c *gin.Context) {
	id, ok := parseContainerID(c)
	if !ok {
		return
	}

	var req models.UpdateContainerRequest

	// Проверяем запрос
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Неверный запрос: " + err.Error(),
		})
		return
	}

	// Проверяем, что тип тары существует
	if _, err := h.containerTypeQueries.GetContainerTypeByID(c.Request.Context(), req.ContainerTypeID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Тип тары не найден: " + err.Error(),
		})
		return
	}

	container, err := h.containerQueries.UpdateContainer(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, queries.ErrContainerNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Message: "Тара не найдена: " + err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при изменении тары: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, container)
}

// DeleteContainer обрабатывает запрос на удаление тары. Удаление
// допустимо из любого статуса.
func (h *ContainerHandler) DeleteContainer(c *gin.Context) {
	id, ok := parseContainerID(c)
	if !ok {
		return
	}

	if err := h.containerQueries.DeleteContainer(c.Request.Context(), id); err != nil {
		if errors.Is(err, queries.ErrContainerNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Message: "Тара не найдена: " + err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при удалении тары: " + err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
