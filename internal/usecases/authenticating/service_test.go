package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ads-manager-api/internal/config"
	"github.com/vfg2006/ads-manager-api/internal/domain"
	"github.com/vfg2006/ads-manager-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

func authConfig(t *testing.T) *config.Config {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("senha-segura"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Auth = config.Auth{
		Secret:               "segredo-de-teste",
		OperatorEmail:        "operador@exemplo.com",
		OperatorPasswordHash: string(hash),
		OperatorRole:         domain.RoleAdmin,
	}
	return cfg
}

func TestService_Login(t *testing.T) {
	service := NewService(authConfig(t))

	tests := []struct {
		name     string
		email    string
		password string
		validate func(t *testing.T, token string, err error)
	}{
		{
			name:     "Credenciais corretas emitem token válido",
			email:    "operador@exemplo.com",
			password: "senha-segura",
			validate: func(t *testing.T, token string, err error) {
				require.NoError(t, err)
				assert.NotEmpty(t, token)
			},
		},
		{
			name:     "Email com maiúsculas e espaços é normalizado",
			email:    "  Operador@Exemplo.com ",
			password: "senha-segura",
			validate: func(t *testing.T, token string, err error) {
				require.NoError(t, err)
				assert.NotEmpty(t, token)
			},
		},
		{
			name:     "Senha incorreta",
			email:    "operador@exemplo.com",
			password: "senha-errada",
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.True(t, IsCredentialsError(err))
			},
		},
		{
			name:     "Email desconhecido",
			email:    "outro@exemplo.com",
			password: "senha-segura",
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.True(t, IsCredentialsError(err))
			},
		},
		{
			name:     "Campos obrigatórios ausentes",
			email:    "",
			password: "",
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := service.Login(tt.email, tt.password)
			tt.validate(t, token, err)
		})
	}
}

func TestService_ValidateToken(t *testing.T) {
	cfg := authConfig(t)
	service := NewService(cfg)

	token, err := service.Login("operador@exemplo.com", "senha-segura")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "operador@exemplo.com", claims.Email)
	assert.Equal(t, domain.RoleAdmin, claims.Role)

	// Token assinado com outro segredo é rejeitado.
	otherCfg := authConfig(t)
	otherCfg.Auth.Secret = "outro-segredo"
	otherService := NewService(otherCfg)

	_, err = otherService.ValidateToken(token)
	assert.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.NotEqual(t, ErrExpiredToken, authErr.Err)

	// Lixo no lugar do token também é rejeitado.
	_, err = service.ValidateToken("não é um token")
	assert.Error(t, err)
}

// TestService_ValidateToken_Expirado garante que a expiração é detectada pelo
// erro tipado da biblioteca e mapeada para o código AUTH_003.
func TestService_ValidateToken_Expirado(t *testing.T) {
	cfg := authConfig(t)
	service := NewService(cfg)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, domain.Claims{
		Email: "operador@exemplo.com",
		Role:  domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-25 * time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte(cfg.Auth.Secret))
	require.NoError(t, err)

	_, err = service.ValidateToken(signed)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExpiredToken)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, apiErrors.ErrExpiredToken, authErr.Code)
}
