package handlers

import (
	"net/http"
	"sort"
	"strings"

	"cats-service/internal/db/queries"
	"cats-service/internal/lifecycle"
	"cats-service/internal/models"

	"github.com/gin-gonic/gin"
)

// FillHandler содержит обработчики жизненного цикла заполнения тары
type FillHandler struct {
	containerQueries     queries.ContainerQueriesInterface
	containerTypeQueries queries.ContainerTypeQueriesInterface
	fillQueries          queries.FillQueriesInterface
	productQueries       queries.ProductQueriesInterface
	productTypeQueries   queries.ProductTypeQueriesInterface
	userQueries          queries.UserQueriesInterface
}

// NewFillHandler создает новый экземпляр FillHandler
func NewFillHandler(
	containerQueries queries.ContainerQueriesInterface,
	containerTypeQueries queries.ContainerTypeQueriesInterface,
	fillQueries queries.FillQueriesInterface,
	productQueries queries.ProductQueriesInterface,
	productTypeQueries queries.ProductTypeQueriesInterface,
	userQueries queries.UserQueriesInterface,
) *FillHandler {
	return &FillHandler{
		containerQueries:     containerQueries,
		containerTypeQueries: containerTypeQueries,
		fillQueries:          fillQueries,
		productQueries:       productQueries,
		productTypeQueries:   productTypeQueries,
		userQueries:          userQueries,
	}
}

func (h *FillHandler) currentUser(c *gin.Context) (*models.User, bool) {
	userID, _ := c.Get("userID")
	id, ok := userID.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Message: "Нет данных о пользователе",
		})
		return nil, false
	}

	user, err := h.userQueries.GetUserByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Message: "Пользователь не найден",
		})
		return nil, false
	}

	return user, true
}

func fullName(user *models.User) string {
	return strings.TrimSpace(user.FirstName + " " + user.LastName)
}

// FillContainer обрабатывает запрос на заполнение тары (Empty -> Full)
func (h *FillHandler) FillContainer(c *gin.Context) {
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

	// Заполнить можно только пустую тару
	if err := lifecycle.CanFill(container.Status); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: err.Error(),
		})
		return
	}

	var req models.FillContainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Неверный запрос: " + err.Error(),
		})
		return
	}

	// Проверяем данные заполнения до обращения к хранилищу
	fill, err := lifecycle.ValidateFill(req, false)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: err.Error(),
		})
		return
	}

	product, productType, ok := h.resolveProduct(c, container, fill.ProductID)
	if !ok {
		return
	}

	// Вычисляем срок годности, если пользователь его не указал
	fill.DeriveExpirationIfEmpty(lifecycle.ResolveShelfLife(product, productType))

	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	if err := h.fillQueries.FillContainer(c.Request.Context(), id, product, fill, user.ID, fullName(user)); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при заполнении тары: " + err.Error(),
		})
		return
	}

	h.respondWithContainer(c, id)
}

// EmptyContainer обрабатывает запрос на опустошение тары (Full -> Empty)
func (h *FillHandler) EmptyContainer(c *gin.Context) {
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

	// Опустошить можно только заполненную тару
	if err := lifecycle.CanEmpty(container.Status); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: err.Error(),
		})
		return
	}

	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	if err := h.fillQueries.EmptyContainer(c.Request.Context(), id, user.ID, fullName(user)); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при опустошении тары: " + err.Error(),
		})
		return
	}

	h.respondWithContainer(c, id)
}

// UpdateFill обрабатывает запрос на правку текущего заполнения (Full -> Full).
// Срок годности при правке обязателен.
func (h *FillHandler) UpdateFill(c *gin.Context) {
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

	// Править заполнение можно только у заполненной тары
	if err := lifecycle.CanEditFill(container.Status); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: err.Error(),
		})
		return
	}

	var req models.FillContainerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Неверный запрос: " + err.Error(),
		})
		return
	}

	fill, err := lifecycle.ValidateFill(req, true)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: err.Error(),
		})
		return
	}

	product, _, ok := h.resolveProduct(c, container, fill.ProductID)
	if !ok {
		return
	}

	if err := h.fillQueries.UpdateCurrentFill(c.Request.Context(), id, product, fill); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при изменении заполнения: " + err.Error(),
		})
		return
	}

	h.respondWithContainer(c, id)
}

// GetHistory обрабатывает запрос на получение истории заполнений тары
func (h *FillHandler) GetHistory(c *gin.Context) {
	id, ok := parseContainerID(c)
	if !ok {
		return
	}

	if _, err := h.containerQueries.GetContainerByID(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Message: "Тара не найдена: " + err.Error(),
		})
		return
	}

	fills, err := h.fillQueries.GetContainerHistory(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при получении истории: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, fills)
}

// SearchFills обрабатывает запрос на поиск по истории заполнений всей
// тары сразу
func (h *FillHandler) SearchFills(c *gin.Context) {
	var params models.SearchContainerFillsParams

	// Проверяем параметры запроса
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Неверные параметры поиска: " + err.Error(),
		})
		return
	}

	fills, err := h.fillQueries.SearchFills(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при поиске заполнений: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, fills)
}

// GetEvents обрабатывает запрос на ленту событий тары по коду. События
// выводятся из истории заполнений: каждое заполнение и опустошение -
// отдельная запись.
func (h *FillHandler) GetEvents(c *gin.Context) {
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

	fills, err := h.fillQueries.GetContainerHistory(c.Request.Context(), container.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при получении истории: " + err.Error(),
		})
		return
	}

	events := make([]models.ContainerEvent, 0, len(fills)*2)
	for _, fill := range fills {
		events = append(events, models.ContainerEvent{
			ID:          fill.ID,
			ContainerID: container.ID,
			Type:        models.EventFilled,
			UserName:    fill.FilledByName,
			Timestamp:   fill.FilledAt,
		})
		if fill.EmptiedAt != nil {
			emptiedBy := ""
			if fill.EmptiedByName != nil {
				emptiedBy = *fill.EmptiedByName
			}
			events = append(events, models.ContainerEvent{
				ID:          fill.ID + ":emptied",
				ContainerID: container.ID,
				Type:        models.EventEmptied,
				UserName:    emptiedBy,
				Timestamp:   *fill.EmptiedAt,
			})
		}
	}

	// Новые события первыми
	sort.Slice(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})

	c.JSON(http.StatusOK, events)
}

// resolveProduct получает продукт, его категорию и проверяет, что тип
// продукта допустим для данного типа тары
func (h *FillHandler) resolveProduct(c *gin.Context, container *models.Container, productID string) (*models.Product, *models.ProductType, bool) {
	product, err := h.productQueries.GetProductByID(c.Request.Context(), productID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Продукт не найден: " + err.Error(),
		})
		return nil, nil, false
	}

	containerType, err := h.containerTypeQueries.GetContainerTypeByID(c.Request.Context(), container.ContainerTypeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при получении типа тары: " + err.Error(),
		})
		return nil, nil, false
	}

	if err := lifecycle.CheckProductAllowed(containerType, product.ProductTypeID); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: err.Error(),
		})
		return nil, nil, false
	}

	productType, err := h.productTypeQueries.GetProductTypeByID(c.Request.Context(), product.ProductTypeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при получении категории продукта: " + err.Error(),
		})
		return nil, nil, false
	}

	return product, productType, true
}

func (h *FillHandler) respondWithContainer(c *gin.Context, id int64) {
	container, err := h.containerQueries.GetContainerByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при получении тары: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, container)
}
