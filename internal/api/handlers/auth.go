package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"cats-service/internal/auth"
	"cats-service/internal/db/queries"
	"cats-service/internal/models"
	"cats-service/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler содержит обработчики авторизации и профиля
type AuthHandler struct {
	jwtManager        utils.JWTManagerInterface
	googleVerifier    auth.GoogleVerifierInterface
	userQueries       queries.UserQueriesInterface
	invitationQueries queries.InvitationQueriesInterface
}

// NewAuthHandler создает новый экземпляр AuthHandler
func NewAuthHandler(
	jwtManager utils.JWTManagerInterface,
	googleVerifier auth.GoogleVerifierInterface,
	userQueries queries.UserQueriesInterface,
	invitationQueries queries.InvitationQueriesInterface,
) *AuthHandler {
	return &AuthHandler{
		jwtManager:        jwtManager,
		googleVerifier:    googleVerifier,
		userQueries:       userQueries,
		invitationQueries: invitationQueries,
	}
}

// GoogleLogin обрабатывает обмен Google ID-токена на сервисный токен.
// Неизвестный email с действующим приглашением создает активного
// пользователя; без приглашения создается неактивный пользователь,
// ожидающий одобрения администратора.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req models.GoogleLoginRequest

	// Проверяем запрос
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Неверный запрос: " + err.Error(),
		})
		return
	}

	// Проверяем Google ID-токен
	claims, err := h.googleVerifier.Verify(c.Request.Context(), req.IDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Message: "Неверный Google токен: " + err.Error(),
		})
		return
	}

	user, err := h.userQueries.GetUserByEmail(c.Request.Context(), claims.Email)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Message: "Ошибка при поиске пользователя: " + err.Error(),
			})
			return
		}

		// Пользователя нет - регистрируем по приглашению или оставляем
		// в ожидании одобрения
		user, err = h.registerNewUser(c, claims)
		if err != nil {
			return
		}
	}

	if !user.IsActive {
		c.JSON(http.StatusForbidden, models.ErrorResponse{
			Message: "Учетная запись ожидает одобрения администратора",
		})
		return
	}

	// Генерируем сервисный токен
	token, err := h.jwtManager.GenerateToken(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка генерации токена: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		Token: token,
		User:  user.ToResponse(),
	})
}

func (h *AuthHandler) registerNewUser(c *gin.Context, claims *auth.GoogleClaims) (*models.User, error) {
	newUser := models.CreateUserRequest{
		Email:     claims.Email,
		FirstName: claims.GivenName,
		LastName:  claims.FamilyName,
		Role:      models.RoleOperator,
		IsActive:  false,
	}

	invitation, err := h.invitationQueries.GetPendingInvitationByEmail(c.Request.Context(), claims.Email)
	switch {
	case err == nil:
		// Приглашенный пользователь активируется сразу
		newUser.Role = invitation.Role
		newUser.IsActive = true
	case errors.Is(err, sql.ErrNoRows):
		// Без приглашения - ожидание одобрения
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при проверке приглашения: " + err.Error(),
		})
		return nil, err
	}

	user, err := h.userQueries.CreateUser(c.Request.Context(), newUser)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при создании пользователя: " + err.Error(),
		})
		return nil, err
	}

	if invitation != nil {
		if err := h.invitationQueries.MarkInvitationUsed(c.Request.Context(), invitation.ID); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{
				Message: "Ошибка при использовании приглашения: " + err.Error(),
			})
			return nil, err
		}
	}

	return user, nil
}

// GetProfile обрабатывает запрос на получение собственного профиля
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, _ := c.Get("userID")
	id, ok := userID.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Message: "Нет данных о пользователе",
		})
		return
	}

	user, err := h.userQueries.GetUserByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Message: "Пользователь не найден",
		})
		return
	}

	c.JSON(http.StatusOK, user.ToResponse())
}

// UpdateProfile обрабатывает запрос на изменение собственного профиля
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, _ := c.Get("userID")
	id, ok := userID.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Message: "Нет данных о пользователе",
		})
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Message: "Неверный запрос: " + err.Error(),
		})
		return
	}

	user, err := h.userQueries.UpdateProfile(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Message: "Ошибка при изменении профиля: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, user.ToResponse())
}
