package middleware

import (
	"net/http"
	"strings"

	"cats-service/internal/models"
	"cats-service/internal/utils"

	"github.com/gin-gonic/gin"
)

// bearerToken извлекает JWT из заголовка Authorization. Второе значение -
// текст ошибки для клиента, пустая строка при успехе.
func bearerToken(c *gin.Context) (string, string) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return "", "Требуется авторизация"
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != "Bearer" || token == "" {
		return "", "Ожидается заголовок Authorization вида 'Bearer <токен>'"
	}
	return token, ""
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
		Message: message,
	})
}

// AuthMiddleware проверяет JWT и кладет идентификатор и роль пользователя
// в контекст запроса под ключами userID и userRole.
func AuthMiddleware(jwtManager utils.JWTManagerInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, problem := bearerToken(c)
		if problem != "" {
			abortUnauthorized(c, problem)
			return
		}

		claims, err := jwtManager.ValidateToken(token)
		if err != nil {
			abortUnauthorized(c, "Недействительный токен: "+err.Error())
			return
		}
		if claims.UserID == "" {
			abortUnauthorized(c, "Недействительный токен: нет идентификатора пользователя")
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userRole", claims.Role)
		c.Next()
	}
}

// RequireRole пропускает запрос дальше только если роль пользователя,
// установленная AuthMiddleware, совпадает с требуемой.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got, ok := c.Get("userRole")
		if !ok {
			abortUnauthorized(c, "Роль пользователя не определена")
			return
		}
		if got != role {
			c.AbortWithStatusJSON(http.StatusForbidden, models.ErrorResponse{
				Message: "Недостаточно прав для этой операции",
			})
			return
		}
		c.Next()
	}
}
