package security

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"donation-web-server/config"
	"donation-web-server/internal/model"
	"donation-web-server/internal/repository"
	"donation-web-server/internal/util"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	UserContextKey contextKey = "user"
)

// Claims : идентичность пользователя внутри токена.
// Флаг администратора в токен не кладётся: он перепроверяется по БД на каждом
// административном запросе (AdminMiddleware).
type Claims struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type JWTService struct {
	*config.JWTConfig
}

func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{cfg}
}

// GenerateToken : подписывает токен с id и email пользователя, срок действия из конфига (7 дней)
func (service *JWTService) GenerateToken(user *model.User) (string, error) {
	timeDuration, err := time.ParseDuration(service.TokenTTL)
	if err != nil {
		return "", util.LogError("ошибка парсинга времени жизни токена", err)
	}

	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(timeDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "donation-web-server",
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := jwtToken.SignedString([]byte(service.SecretKey))
	if err != nil {
		return "", util.LogError("ошибка подписи токена", err)
	}

	return signed, nil
}

// ValidateJWT : проверяет подпись и срок действия, возвращает claims
func (service *JWTService) ValidateJWT(jwtTokenStr string) (*Claims, error) {
	var claims = &Claims{}

	jwtToken, err := jwt.ParseWithClaims(jwtTokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Header["alg"] != jwt.SigningMethodHS512.Alg() {
			return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
		}
		return []byte(service.SecretKey), nil
	})

	if err != nil || jwtToken.Valid == false {
		return nil, util.LogError("невалидный токен", err)
	}

	return claims, nil
}

// JWTMiddleware : извлекает Bearer токен из заголовка Authorization и кладёт claims в context
func JWTMiddleware(jwtService *JWTService) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authorizationHeader := request.Header.Get("Authorization")
			if !strings.HasPrefix(authorizationHeader, "Bearer ") {
				util.HandleError(writer, "не авторизован", http.StatusUnauthorized)
				return
			}

			token := strings.TrimPrefix(authorizationHeader, "Bearer ")

			claims, err := jwtService.ValidateJWT(token)
			if err != nil {
				log.Printf("невалидный токен: %v", err)
				util.HandleError(writer, "невалидный токен", http.StatusUnauthorized)
				return
			}

			req := request.WithContext(context.WithValue(request.Context(), UserContextKey, claims))
			next.ServeHTTP(writer, req)
		})
	}
}

// AdminMiddleware : перепроверяет флаг is_admin по БД до выполнения тела хэндлера.
// Ставится после JWTMiddleware на всю группу /admin.
func AdminMiddleware(userRepository *repository.UserRepository) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims, err := GetClaimsFromContext(request.Context())
			if err != nil {
				util.HandleError(writer, "не авторизован", http.StatusUnauthorized)
				return
			}

			db, ok := request.Context().Value("db").(*config.Database)
			if !ok {
				util.HandleError(writer, "внутренняя ошибка сервера", http.StatusInternalServerError)
				return
			}

			user, err := userRepository.FindByID(request.Context(), db, claims.UserID)
			if err != nil || user == nil {
				log.Printf("админ-проверка: пользователь %d не найден: %v", claims.UserID, err)
				util.HandleError(writer, "не авторизован", http.StatusUnauthorized)
				return
			}

			if user.IsAdmin == false {
				util.HandleError(writer, "требуется доступ администратора", http.StatusForbidden)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

func GetClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(UserContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, fmt.Errorf("пользователь не авторизован")
	}
	return claims, nil
}
