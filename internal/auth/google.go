package auth

import (
	"context"
	"errors"
	"fmt"

	"cats-service/internal/config"

	"github.com/coreos/go-oidc/v3/oidc"
)

// GoogleClaims - данные пользователя из проверенного Google ID-токена
type GoogleClaims struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
}

// GoogleVerifierInterface определяет проверку Google ID-токена
type GoogleVerifierInterface interface {
	Verify(ctx context.Context, rawIDToken string) (*GoogleClaims, error)
}

// GoogleVerifier проверяет ID-токены через OIDC-провайдера Google
type GoogleVerifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewGoogleVerifier инициализирует OIDC-провайдера и верификатор токенов
func NewGoogleVerifier(ctx context.Context, config *config.GoogleConfig) (*GoogleVerifier, error) {
	provider, err := oidc.NewProvider(ctx, config.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %w", err)
	}

	return &GoogleVerifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: config.ClientID}),
	}, nil
}

// Verify проверяет подпись, издателя и аудиторию ID-токена и возвращает claims
func (v *GoogleVerifier) Verify(ctx context.Context, rawIDToken string) (*GoogleClaims, error) {
	idToken, err := v.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("invalid id token: %w", err)
	}

	var claims GoogleClaims
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("failed to parse id token claims: %w", err)
	}

	if claims.Email == "" || !claims.EmailVerified {
		return nil, errors.New("id token has no verified email")
	}

	return &claims, nil
}
