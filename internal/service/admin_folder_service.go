package service

import (
	"context"
	"fmt"
	"strings"

	"donation-web-server/config"
	"donation-web-server/internal/model"
	"donation-web-server/internal/model/requestresponse"
	"donation-web-server/internal/ports"
)

type AdminFolderService struct {
	folderRepository ports.FolderRepository
	cacheRepository  ports.CacheRepository
}

func NewAdminFolderService(
	folderRepository ports.FolderRepository,
	cacheRepository ports.CacheRepository,
) *AdminFolderService {
	return &AdminFolderService{
		folderRepository: folderRepository,
		cacheRepository:  cacheRepository,
	}
}

// ListFolders : все папки с количеством файлов и выданных доступов
func (s *AdminFolderService) ListFolders(ctx context.Context) ([]model.FolderStats, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, fmt.Errorf("[AdminFolderService] database connection не найден в context")
	}

	folders, err := s.folderRepository.ListWithStats(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("[AdminFolderService] ошибка получения списка папок: %w", err)
	}
	return folders, nil
}

func (s *AdminFolderService) CreateFolder(ctx context.Context, name, description string, minDonationAmount float64) (*model.FolderStats, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("[AdminFolderService] не указано имя папки: %w", ErrInvalidArgument)
	}
	if minDonationAmount < 0 {
		return nil, fmt.Errorf("[AdminFolderService] порог пожертвования не может быть отрицательным: %w", ErrInvalidArgument)
	}

	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, fmt.Errorf("[AdminFolderService] database connection не найден в context")
	}

	taken, err := s.folderRepository.NameTaken(ctx, db, name, 0)
	if err != nil {
		return nil, fmt.Errorf("[AdminFolderService] ошибка проверки имени: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("[AdminFolderService] папка с таким именем уже существует: %w", ErrAlreadyExists)
	}

	created, err := s.folderRepository.Create(ctx, db, name, description, minDonationAmount)
	if err != nil {
		return nil, fmt.Errorf("[AdminFolderService] ошибка создания папки: %w", err)
	}

	_ = s.cacheRepository.InvalidateFolders(ctx)

	stats, err := s.folderRepository.GetStats(ctx, db, created.ID)
	if err != nil {
		return nil, fmt.Errorf("[AdminFolderService] ошибка чтения созданной папки: %w", err)
	}
	return stats, nil
}

func (s *AdminFolderService) UpdateFolder(ctx context.Context, request *requestresponse.AdminUpdateFolderRequest) (*model.FolderStats, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, fmt.Errorf("[AdminFolderService] database connection не найден в context")
	}

	folder, err := s.folderRepository.GetByID(ctx, db, request.FolderID)
	if err != nil {
		return nil, fmt.Errorf("[AdminFolderService] ошибка поиска папки: %w", err)
	}
	if folder == nil {
		return nil, fmt.Errorf("[AdminFolderService] папка не найдена: %w", ErrNotFound)
	}

	if request.Name != nil {
		name := strings.TrimSpace(*request.Name)
		if name == "" {
			return nil, fmt.Errorf("[AdminFolderService] имя папки не может быть пустым: %w", ErrInvalidArgument)
		}
		taken, err := s.folderRepository.NameTaken(ctx, db, name, request.FolderID)
		if err != nil {
			return nil, fmt.Errorf("[AdminFolderService] ошибка проверки имени: %w", err)
		}
		if taken {
			return nil, fmt.Errorf("[AdminFolderService] папка с таким именем уже существует: %w", ErrAlreadyExists)
		}
		request.Name = &name
	}
	if request.MinDonationAmount != nil && *request.MinDonationAmount < 0 {
		return nil, fmt.Errorf("[AdminFolderService] порог пожертвования не может быть отрицательным: %w", ErrInvalidArgument)
	}

	if err := s.folderRepository.Update(ctx, db, request.FolderID, request.Name, request.Description, request.MinDonationAmount); err != nil {
		return nil, fmt.Errorf("[AdminFolderService] ошибка обновления папки: %w", err)
	}

	_ = s.cacheRepository.InvalidateFolders(ctx)

	stats, err := s.folderRepository.GetStats(ctx, db, request.FolderID)
	if err != nil {
		return nil, fmt.Errorf("[AdminFolderService] ошибка чтения обновлённой папки: %w", err)
	}
	return stats, nil
}

// DeleteFolder : базовые папки (id <= DefaultFolderMaxID) защищены от удаления
func (s *AdminFolderService) DeleteFolder(ctx context.Context, folderID int64) error {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return fmt.Errorf("[AdminFolderService] database connection не найден в context")
	}

	folder, err := s.folderRepository.GetByID(ctx, db, folderID)
	if err != nil {
		return fmt.Errorf("[AdminFolderService] ошибка поиска папки: %w", err)
	}
	if folder == nil {
		return fmt.Errorf("[AdminFolderService] папка не найдена: %w", ErrNotFound)
	}
	if folder.ID <= model.DefaultFolderMaxID {
		return fmt.Errorf("[AdminFolderService] базовую папку удалить нельзя: %w", ErrPermissionDenied)
	}

	if err := s.folderRepository.Delete(ctx, db, folderID); err != nil {
		return fmt.Errorf("[AdminFolderService] ошибка удаления папки: %w", err)
	}

	_ = s.cacheRepository.InvalidateFolders(ctx)

	return nil
}

// GetFolderUsers : папка и пользователи с доступом к ней
func (s *AdminFolderService) GetFolderUsers(ctx context.Context, folderID int64) (*model.Folder, []model.FolderUser, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, nil, fmt.Errorf("[AdminFolderService] database connection не найден в context")
	}

	folder, err := s.folderRepository.GetByID(ctx, db, folderID)
	if err != nil {
		return nil, nil, fmt.Errorf("[AdminFolderService] ошибка поиска папки: %w", err)
	}
	if folder == nil {
		return nil, nil, fmt.Errorf("[AdminFolderService] папка не найдена: %w", ErrNotFound)
	}

	users, err := s.folderRepository.ListUsers(ctx, db, folderID)
	if err != nil {
		return nil, nil, fmt.Errorf("[AdminFolderService] ошибка получения пользователей папки: %w", err)
	}

	return folder, users, nil
}
