package service

import (
	"context"
	"fmt"
	"time"

	"donation-web-server/config"
	"donation-web-server/internal/model"
	"donation-web-server/internal/ports"
)

type AccessService struct {
	folderRepository ports.FolderRepository
	fileRepository   ports.FileRepository
	grantRepository  ports.GrantRepository
	cacheRepository  ports.CacheRepository
	storage          ports.S3Storage
	urlTTL           time.Duration
}

func NewAccessService(
	folderRepository ports.FolderRepository,
	fileRepository ports.FileRepository,
	grantRepository ports.GrantRepository,
	cacheRepository ports.CacheRepository,
	storage ports.S3Storage,
	urlTTL time.Duration,
) *AccessService {
	return &AccessService{
		folderRepository: folderRepository,
		fileRepository:   fileRepository,
		grantRepository:  grantRepository,
		cacheRepository:  cacheRepository,
		storage:          storage,
		urlTTL:           urlTTL,
	}
}

// ListFiles : каталог папок с флагом доступа, при folderID != nil ещё и файлы папки.
// Каталог и доступы читаются сквозь Redis-кэш.
func (s *AccessService) ListFiles(ctx context.Context, userID int64, folderID *int64) ([]model.FolderAccess, []model.File, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, nil, fmt.Errorf("[AccessService] database connection не найден в context")
	}

	folders, err := s.folderCatalog(ctx, db)
	if err != nil {
		return nil, nil, err
	}

	granted, err := s.userGrantSet(ctx, db, userID)
	if err != nil {
		return nil, nil, err
	}

	catalog := make([]model.FolderAccess, 0, len(folders))
	for _, folder := range folders {
		catalog = append(catalog, model.FolderAccess{
			Folder:    folder,
			HasAccess: granted[folder.ID],
		})
	}

	if folderID == nil {
		return catalog, nil, nil
	}

	var requested *model.Folder
	for i := range folders {
		if folders[i].ID == *folderID {
			requested = &folders[i]
			break
		}
	}
	if requested == nil {
		return nil, nil, fmt.Errorf("[AccessService] папка не найдена: %w", ErrNotFound)
	}
	if !granted[requested.ID] {
		return nil, nil, fmt.Errorf("[AccessService] нет доступа к папке: %w", ErrPermissionDenied)
	}

	files, err := s.fileRepository.ListByFolder(ctx, db, requested.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("[AccessService] ошибка получения файлов: %w", err)
	}

	return catalog, files, nil
}

// DownloadFile : pre-signed GET на файл, если у пользователя есть доступ к его папке.
// Возвращает URL и оригинальное имя файла.
func (s *AccessService) DownloadFile(ctx context.Context, userID, fileID int64) (string, string, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return "", "", fmt.Errorf("[AccessService] database connection не найден в context")
	}

	file, err := s.fileRepository.GetByID(ctx, db, fileID)
	if err != nil {
		return "", "", fmt.Errorf("[AccessService] ошибка поиска файла: %w", err)
	}
	if file == nil {
		return "", "", fmt.Errorf("[AccessService] файл не найден: %w", ErrNotFound)
	}

	granted, err := s.userGrantSet(ctx, db, userID)
	if err != nil {
		return "", "", err
	}
	if !granted[file.FolderID] {
		return "", "", fmt.Errorf("[AccessService] нет доступа к папке файла: %w", ErrPermissionDenied)
	}

	url, err := s.storage.GeneratePresignedGetURL(ctx, file.StoragePath, s.urlTTL)
	if err != nil {
		return "", "", fmt.Errorf("[AccessService] ошибка генерации ссылки на скачивание: %w", err)
	}

	return url, file.OriginalName, nil
}

// folderCatalog : каталог папок из кэша, при промахе — из БД с прогревом кэша
func (s *AccessService) folderCatalog(ctx context.Context, db *config.Database) ([]model.Folder, error) {
	folders, err := s.cacheRepository.GetFolders(ctx)
	if err == nil && folders != nil {
		return folders, nil
	}

	folders, err = s.folderRepository.ListAll(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("[AccessService] ошибка получения каталога папок: %w", err)
	}

	// Ошибки кэширования не фатальны, репозиторий их уже логирует
	_ = s.cacheRepository.SetFolders(ctx, folders)

	return folders, nil
}

// userGrantSet : множество id папок, доступных пользователю, сквозь кэш
func (s *AccessService) userGrantSet(ctx context.Context, db *config.Database, userID int64) (map[int64]bool, error) {
	ids, found, err := s.cacheRepository.GetUserGrants(ctx, userID)
	if err != nil || !found {
		ids, err = s.grantRepository.FolderIDsByUser(ctx, db, userID)
		if err != nil {
			return nil, fmt.Errorf("[AccessService] ошибка получения доступов: %w", err)
		}
		_ = s.cacheRepository.SetUserGrants(ctx, userID, ids)
	}

	granted := make(map[int64]bool, len(ids))
	for _, id := range ids {
		granted[id] = true
	}
	return granted, nil
}
