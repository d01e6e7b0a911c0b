package handlers

import (
	"net/http"

	"cats-service/internal/db/queries"
	"cats-service/internal/models"

	"github.com/gin-gonic/gin"
)

// UserHandler содержит обработчики для управления пользователями
type UserHandler struct {
	userQueries queries.UserQueriesInterface
}

// NewUserHandler создает новый экземпляр UserHandler
func NewUserHandler(userQueries queries.UserQueriesInterface) *UserHandler {
	return &UserHandler{
		userQueries: userQueries,
	}
}

// ListUsers обрабатывает запрос на получение всех пользователей
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userQueries.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при получении пользователей: " + err.Error(),
		})
		return
	}

	responses := make([]models.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, users[i].ToResponse())
	}

	c.JSON(http.StatusOK, responses)
}

// CreateUser обрабатывает запрос на создание пользователя администратором
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest

	// Проверяем запрос
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Неверный запрос: " + err.Error(),
		})
		return
	}

	user, err := h.userQueries.CreateUser(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при создании пользователя: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, user.ToResponse())
}

// UpdateUser обрабатывает запрос на изменение пользователя администратором
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Неверный запрос: " + err.Error(),
		})
		return
	}

	user, err := h.userQueries.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при изменении пользователя: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, user.ToResponse())
}

// ActivateUser обрабатывает запрос на одобрение пользователя
func (h *UserHandler) ActivateUser(c *gin.Context) {
	h.setActive(c, true)
}

// DeactivateUser обрабатывает запрос на отключение пользователя
func (h *UserHandler) DeactivateUser(c *gin.Context) {
	h.setActive(c, false)
}

func (h *UserHandler) setActive(c *gin.Context, active bool) {
	id := c.Param("id")

	if err := h.userQueries.SetUserActive(c.Request.Context(), id, active); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при изменении пользователя: " + err.Error(),
		})
		return
	}

	c.Status(http.StatusOK)
}
