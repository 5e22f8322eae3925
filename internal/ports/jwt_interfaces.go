package ports

import (
	"donation-web-server/internal/model"
	"donation-web-server/internal/security"
)

type JWTServiceInterface interface {
	GenerateToken(user *model.User) (string, error)
	ValidateJWT(tokenString string) (*security.Claims, error)
}
