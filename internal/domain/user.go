package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Operator é a credencial do operador do painel, configurada por ambiente.
// Não há gerenciamento de usuários neste serviço: autenticação é apenas a
// fronteira de entrada do painel.
type Operator struct {
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}
