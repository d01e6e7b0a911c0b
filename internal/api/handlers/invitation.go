package handlers

import (
	"net/http"
	"time"

	"cats-service/internal/db/queries"
	"cats-service/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvitationHandler содержит обработчики для работы с приглашениями
type InvitationHandler struct {
	invitationQueries queries.InvitationQueriesInterface
}

// NewInvitationHandler создает новый экземпляр InvitationHandler
func NewInvitationHandler(invitationQueries queries.InvitationQueriesInterface) *InvitationHandler {
	return &InvitationHandler{
		invitationQueries: invitationQueries,
	}
}

// CreateInvitation обрабатывает запрос на создание приглашения
func (h *InvitationHandler) CreateInvitation(c *gin.Context) {
	var req models.CreateInvitationRequest

	// Проверяем запрос
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Неверный запрос: " + err.Error(),
		})
		return
	}

	// Токен приглашения - непрозрачная случайная строка
	token := uuid.New().String()

	invitation, err := h.invitationQueries.CreateInvitation(c.Request.Context(), req, token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при создании приглашения: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, invitation)
}

// VerifyInvitation обрабатывает публичную проверку токена приглашения
func (h *InvitationHandler) VerifyInvitation(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Не указан токен приглашения",
		})
		return
	}

	invitation, err := h.invitationQueries.GetInvitationByToken(c.Request.Context(), token)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Message: "Приглашение не найдено",
		})
		return
	}

	if invitation.IsUsed {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Приглашение уже использовано",
		})
		return
	}

	if time.Now().After(invitation.ExpiresAt) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Срок действия приглашения истек",
		})
		return
	}

	c.Status(http.StatusOK)
}
