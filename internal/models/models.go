package models

// Роли пользователей
const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// Статусы контейнера
const (
	StatusEmpty = "Empty"
	StatusFull  = "Full"
)

// ErrorResponse представляет ошибку API
type ErrorResponse struct {
	Message string `json:"message"`
}

// GoogleLoginRequest представляет запрос на обмен Google ID-токена
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// LoginResponse представляет ответ с токеном авторизации
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
