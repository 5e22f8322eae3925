package security

import (
	"donation-web-server/internal/util"

	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength : минимальная длина пароля при регистрации и смене
const MinPasswordLength = 6

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", util.LogError("ошибка хэширования пароля", err)
	}
	return string(hash), nil
}

// CheckPassword : true, если пароль соответствует хэшу
func CheckPassword(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
