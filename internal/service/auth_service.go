package service

import (
	"context"
	"fmt"
	"strings"

	"donation-web-server/config"
	"donation-web-server/internal/model"
	"donation-web-server/internal/model/requestresponse"
	"donation-web-server/internal/ports"
	"donation-web-server/internal/security"
)

const defaultLanguage = "es"

type AuthService struct {
	userRepository     ports.UserRepository
	donationRepository ports.DonationRepository
	jwtService         ports.JWTServiceInterface
}

func NewAuthService(
	userRepository ports.UserRepository,
	donationRepository ports.DonationRepository,
	jwtService ports.JWTServiceInterface,
) *AuthService {
	return &AuthService{
		userRepository:     userRepository,
		donationRepository: donationRepository,
		jwtService:         jwtService,
	}
}

// Register : создаёт пользователя, токен не выдаётся — вход выполняется отдельно
func (s *AuthService) Register(ctx context.Context, request *requestresponse.RegisterRequest) (*model.User, error) {
	email := strings.TrimSpace(strings.ToLower(request.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("[AuthService] некорректный email: %w", ErrInvalidArgument)
	}
	if len(request.Password) < security.MinPasswordLength {
		return nil, fmt.Errorf("[AuthService] пароль должен содержать минимум %d символов: %w",
			security.MinPasswordLength, ErrInvalidArgument)
	}

	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, fmt.Errorf("[AuthService] database connection не найден в context")
	}

	existing, err := s.userRepository.FindByEmail(ctx, db, email)
	if err != nil {
		return nil, fmt.Errorf("[AuthService] ошибка поиска пользователя: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("[AuthService] email уже зарегистрирован: %w", ErrAlreadyExists)
	}

	hash, err := security.HashPassword(request.Password)
	if err != nil {
		return nil, fmt.Errorf("[AuthService] не удалось создать хэш пароля: %w", err)
	}

	language := request.Language
	if language == "" {
		language = defaultLanguage
	}

	user := &model.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Language:     language,
	}

	created, err := s.userRepository.CreateUser(ctx, db, user)
	if err != nil {
		return nil, fmt.Errorf("[AuthService] ошибка создания пользователя: %w", err)
	}

	return created, nil
}

// Login : проверяет пароль и выдаёт JWT на срок жизни из конфигурации
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return "", nil, fmt.Errorf("[AuthService] database connection не найден в context")
	}

	user, err := s.userRepository.FindByEmail(ctx, db, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return "", nil, fmt.Errorf("[AuthService] ошибка поиска пользователя: %w", err)
	}
	if user == nil || !security.CheckPassword(user.PasswordHash, password) {
		return "", nil, fmt.Errorf("[AuthService] неверный email или пароль: %w", ErrUnauthenticated)
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("[AuthService] ошибка генерации токена: %w", err)
	}

	return token, user, nil
}

// GetProfile : профиль с суммой завершённых пожертвований за всё время
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*model.User, float64, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, 0, fmt.Errorf("[AuthService] database connection не найден в context")
	}

	user, err := s.userRepository.FindByID(ctx, db, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("[AuthService] ошибка поиска пользователя: %w", err)
	}
	if user == nil {
		return nil, 0, fmt.Errorf("[AuthService] пользователь не найден: %w", ErrNotFound)
	}

	total, err := s.donationRepository.SumCompletedByUser(ctx, db, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("[AuthService] ошибка подсчёта пожертвований: %w", err)
	}

	return user, total, nil
}

// UpdateProfile : имя и язык перезаписываются безусловно, отсутствующие поля сбрасываются.
// Смена пароля требует текущий пароль.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, request *requestresponse.UpdateProfileRequest) (*model.User, float64, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, 0, fmt.Errorf("[AuthService] database connection не найден в context")
	}

	user, err := s.userRepository.FindByID(ctx, db, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("[AuthService] ошибка поиска пользователя: %w", err)
	}
	if user == nil {
		return nil, 0, fmt.Errorf("[AuthService] пользователь не найден: %w", ErrNotFound)
	}

	if request.NewPassword != "" {
		if !security.CheckPassword(user.PasswordHash, request.CurrentPassword) {
			return nil, 0, fmt.Errorf("[AuthService] неверный текущий пароль: %w", ErrInvalidArgument)
		}
		if len(request.NewPassword) < security.MinPasswordLength {
			return nil, 0, fmt.Errorf("[AuthService] новый пароль должен содержать минимум %d символов: %w",
				security.MinPasswordLength, ErrInvalidArgument)
		}

		hash, err := security.HashPassword(request.NewPassword)
		if err != nil {
			return nil, 0, fmt.Errorf("[AuthService] не удалось создать хэш пароля: %w", err)
		}
		if err := s.userRepository.UpdatePassword(ctx, db, userID, hash); err != nil {
			return nil, 0, fmt.Errorf("[AuthService] ошибка смены пароля: %w", err)
		}
	}

	language := request.Language
	if language == "" {
		language = defaultLanguage
	}

	if err := s.userRepository.UpdateProfile(ctx, db, userID, request.FirstName, request.LastName, language); err != nil {
		return nil, 0, fmt.Errorf("[AuthService] ошибка обновления профиля: %w", err)
	}

	updated, err := s.userRepository.FindByID(ctx, db, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("[AuthService] ошибка чтения профиля: %w", err)
	}

	total, err := s.donationRepository.SumCompletedByUser(ctx, db, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("[AuthService] ошибка подсчёта пожертвований: %w", err)
	}

	return updated, total, nil
}
