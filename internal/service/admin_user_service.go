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

type AdminUserService struct {
	userRepository     ports.UserRepository
	folderRepository   ports.FolderRepository
	donationRepository ports.DonationRepository
	grantRepository    ports.GrantRepository
	cacheRepository    ports.CacheRepository
}

func NewAdminUserService(
	userRepository ports.UserRepository,
	folderRepository ports.FolderRepository,
	donationRepository ports.DonationRepository,
	grantRepository ports.GrantRepository,
	cacheRepository ports.CacheRepository,
) *AdminUserService {
	return &AdminUserService{
		userRepository:     userRepository,
		folderRepository:   folderRepository,
		donationRepository: donationRepository,
		grantRepository:    grantRepository,
		cacheRepository:    cacheRepository,
	}
}

// ListUsers : постраничный список пользователей с агрегатами по пожертвованиям
func (s *AdminUserService) ListUsers(ctx context.Context, page, limit int) ([]*model.UserWithDonations, int64, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, 0, fmt.Errorf("[AdminUserService] database connection не найден в context")
	}

	page, limit = normalizePage(page, limit)
	offset := (page - 1) * limit

	users, err := s.userRepository.ListWithDonations(ctx, db, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("[AdminUserService] ошибка получения списка пользователей: %w", err)
	}

	total, err := s.userRepository.CountUsers(ctx, db)
	if err != nil {
		return nil, 0, fmt.Errorf("[AdminUserService] ошибка подсчёта пользователей: %w", err)
	}

	return users, total, nil
}

// GetUserDetails : пользователь с агрегатами, историей пожертвований и доступами
func (s *AdminUserService) GetUserDetails(ctx context.Context, userID int64) (*model.UserWithDonations, []model.Donation, []model.UserFolderGrant, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, nil, nil, fmt.Errorf("[AdminUserService] database connection не найден в context")
	}

	user, err := s.userRepository.GetWithDonations(ctx, db, userID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("[AdminUserService] ошибка поиска пользователя: %w", err)
	}
	if user == nil {
		return nil, nil, nil, fmt.Errorf("[AdminUserService] пользователь не найден: %w", ErrNotFound)
	}

	donations, err := s.donationRepository.ListByUser(ctx, db, userID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("[AdminUserService] ошибка получения истории пожертвований: %w", err)
	}

	grants, err := s.grantRepository.ListByUser(ctx, db, userID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("[AdminUserService] ошибка получения доступов: %w", err)
	}

	return user, donations, grants, nil
}

func (s *AdminUserService) CreateUser(ctx context.Context, request *requestresponse.AdminCreateUserRequest) (*model.User, error) {
	email := strings.TrimSpace(strings.ToLower(request.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("[AdminUserService] некорректный email: %w", ErrInvalidArgument)
	}
	if len(request.Password) < security.MinPasswordLength {
		return nil, fmt.Errorf("[AdminUserService] пароль должен содержать минимум %d символов: %w",
			security.MinPasswordLength, ErrInvalidArgument)
	}

	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, fmt.Errorf("[AdminUserService] database connection не найден в context")
	}

	taken, err := s.userRepository.EmailTaken(ctx, db, email, 0)
	if err != nil {
		return nil, fmt.Errorf("[AdminUserService] ошибка проверки email: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("[AdminUserService] email уже зарегистрирован: %w", ErrAlreadyExists)
	}

	hash, err := security.HashPassword(request.Password)
	if err != nil {
		return nil, fmt.Errorf("[AdminUserService] не удалось создать хэш пароля: %w", err)
	}

	language := request.Language
	if language == "" {
		language = defaultLanguage
	}

	created, err := s.userRepository.CreateUser(ctx, db, &model.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		Language:     language,
		IsAdmin:      request.IsAdmin,
	})
	if err != nil {
		return nil, fmt.Errorf("[AdminUserService] ошибка создания пользователя: %w", err)
	}

	return created, nil
}

// UpdateUser : частичное обновление, nil-поля запроса сохраняют текущие значения
func (s *AdminUserService) UpdateUser(ctx context.Context, request *requestresponse.AdminUpdateUserRequest) (*model.User, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, fmt.Errorf("[AdminUserService] database connection не найден в context")
	}

	user, err := s.userRepository.FindByID(ctx, db, request.UserID)
	if err != nil {
		return nil, fmt.Errorf("[AdminUserService] ошибка поиска пользователя: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("[AdminUserService] пользователь не найден: %w", ErrNotFound)
	}

	if request.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*request.Email))
		if email == "" || !strings.Contains(email, "@") {
			return nil, fmt.Errorf("[AdminUserService] некорректный email: %w", ErrInvalidArgument)
		}
		taken, err := s.userRepository.EmailTaken(ctx, db, email, request.UserID)
		if err != nil {
			return nil, fmt.Errorf("[AdminUserService] ошибка проверки email: %w", err)
		}
		if taken {
			return nil, fmt.Errorf("[AdminUserService] email уже занят: %w", ErrAlreadyExists)
		}
		user.Email = email
	}
	if request.FirstName != nil {
		user.FirstName = *request.FirstName
	}
	if request.LastName != nil {
		user.LastName = *request.LastName
	}
	if request.Language != nil {
		user.Language = *request.Language
	}
	if request.IsAdmin != nil {
		user.IsAdmin = *request.IsAdmin
	}

	if err := s.userRepository.UpdateUser(ctx, db, user); err != nil {
		return nil, fmt.Errorf("[AdminUserService] ошибка обновления пользователя: %w", err)
	}

	if request.Password != nil {
		if len(*request.Password) < security.MinPasswordLength {
			return nil, fmt.Errorf("[AdminUserService] пароль должен содержать минимум %d символов: %w",
				security.MinPasswordLength, ErrInvalidArgument)
		}
		hash, err := security.HashPassword(*request.Password)
		if err != nil {
			return nil, fmt.Errorf("[AdminUserService] не удалось создать хэш пароля: %w", err)
		}
		if err := s.userRepository.UpdatePassword(ctx, db, request.UserID, hash); err != nil {
			return nil, fmt.Errorf("[AdminUserService] ошибка смены пароля: %w", err)
		}
	}

	updated, err := s.userRepository.FindByID(ctx, db, request.UserID)
	if err != nil {
		return nil, fmt.Errorf("[AdminUserService] ошибка чтения пользователя: %w", err)
	}
	return updated, nil
}

// DeleteUser : администраторов удалять нельзя, сначала нужно снять флаг
func (s *AdminUserService) DeleteUser(ctx context.Context, userID int64) error {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return fmt.Errorf("[AdminUserService] database connection не найден в context")
	}

	user, err := s.userRepository.FindByID(ctx, db, userID)
	if err != nil {
		return fmt.Errorf("[AdminUserService] ошибка поиска пользователя: %w", err)
	}
	if user == nil {
		return fmt.Errorf("[AdminUserService] пользователь не найден: %w", ErrNotFound)
	}
	if user.IsAdmin {
		return fmt.Errorf("[AdminUserService] администратора удалить нельзя: %w", ErrPermissionDenied)
	}

	if err := s.userRepository.DeleteUser(ctx, db, userID); err != nil {
		return fmt.Errorf("[AdminUserService] ошибка удаления пользователя: %w", err)
	}

	_ = s.cacheRepository.InvalidateUserGrants(ctx, userID)

	return nil
}

// GrantAccess : выдаёт пользователю доступ к папке вручную, повторная выдача — no-op
func (s *AdminUserService) GrantAccess(ctx context.Context, userID, folderID int64) error {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return fmt.Errorf("[AdminUserService] database connection не найден в context")
	}

	if err := s.checkUserAndFolder(ctx, db, userID, folderID); err != nil {
		return err
	}

	if err := s.grantRepository.AddGrant(ctx, db, userID, folderID); err != nil {
		return fmt.Errorf("[AdminUserService] ошибка выдачи доступа: %w", err)
	}

	_ = s.cacheRepository.InvalidateUserGrants(ctx, userID)

	return nil
}

// RevokeAccess : отзывает доступ пользователя к папке
func (s *AdminUserService) RevokeAccess(ctx context.Context, userID, folderID int64) error {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return fmt.Errorf("[AdminUserService] database connection не найден в context")
	}

	if err := s.checkUserAndFolder(ctx, db, userID, folderID); err != nil {
		return err
	}

	if err := s.grantRepository.RemoveGrant(ctx, db, userID, folderID); err != nil {
		return fmt.Errorf("[AdminUserService] ошибка отзыва доступа: %w", err)
	}

	_ = s.cacheRepository.InvalidateUserGrants(ctx, userID)

	return nil
}

func (s *AdminUserService) checkUserAndFolder(ctx context.Context, db *config.Database, userID, folderID int64) error {
	user, err := s.userRepository.FindByID(ctx, db, userID)
	if err != nil {
		return fmt.Errorf("[AdminUserService] ошибка поиска пользователя: %w", err)
	}
	if user == nil {
		return fmt.Errorf("[AdminUserService] пользователь не найден: %w", ErrNotFound)
	}

	folder, err := s.folderRepository.GetByID(ctx, db, folderID)
	if err != nil {
		return fmt.Errorf("[AdminUserService] ошибка поиска папки: %w", err)
	}
	if folder == nil {
		return fmt.Errorf("[AdminUserService] папка не найдена: %w", ErrNotFound)
	}

	return nil
}
