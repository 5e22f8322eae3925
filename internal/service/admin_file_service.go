package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"donation-web-server/config"
	"donation-web-server/internal/model"
	"donation-web-server/internal/model/requestresponse"
	"donation-web-server/internal/ports"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 100
)

type AdminFileService struct {
	fileRepository   ports.FileRepository
	folderRepository ports.FolderRepository
	storage          ports.S3Storage
	urlTTL           time.Duration
}

func NewAdminFileService(
	fileRepository ports.FileRepository,
	folderRepository ports.FolderRepository,
	storage ports.S3Storage,
	urlTTL time.Duration,
) *AdminFileService {
	return &AdminFileService{
		fileRepository:   fileRepository,
		folderRepository: folderRepository,
		storage:          storage,
		urlTTL:           urlTTL,
	}
}

// ListFiles : постраничный список файлов, folderID = nil отдаёт все папки
func (s *AdminFileService) ListFiles(ctx context.Context, folderID *int64, page, limit int) ([]model.FileWithFolder, int64, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, 0, fmt.Errorf("[AdminFileService] database connection не найден в context")
	}

	page, limit = normalizePage(page, limit)
	offset := (page - 1) * limit

	files, err := s.fileRepository.ListWithFolder(ctx, db, folderID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("[AdminFileService] ошибка получения списка файлов: %w", err)
	}

	total, err := s.fileRepository.CountFiles(ctx, db, folderID)
	if err != nil {
		return nil, 0, fmt.Errorf("[AdminFileService] ошибка подсчёта файлов: %w", err)
	}

	return files, total, nil
}

// UploadFile : регистрирует файл и выдаёт pre-signed PUT, байты загружает клиент.
// Ключ в хранилище включает метку времени, имена не конфликтуют.
func (s *AdminFileService) UploadFile(ctx context.Context, request *requestresponse.AdminUploadFileRequest) (string, int64, error) {
	fileName := strings.TrimSpace(request.FileName)
	if fileName == "" {
		return "", 0, fmt.Errorf("[AdminFileService] не указано имя файла: %w", ErrInvalidArgument)
	}

	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return "", 0, fmt.Errorf("[AdminFileService] database connection не найден в context")
	}

	folder, err := s.folderRepository.GetByID(ctx, db, request.FolderID)
	if err != nil {
		return "", 0, fmt.Errorf("[AdminFileService] ошибка поиска папки: %w", err)
	}
	if folder == nil {
		return "", 0, fmt.Errorf("[AdminFileService] папка не найдена: %w", ErrNotFound)
	}

	storagePath := fmt.Sprintf("%d/%d_%s", request.FolderID, time.Now().UnixMilli(), fileName)

	uploadURL, err := s.storage.GeneratePresignedPutURL(ctx, storagePath, s.urlTTL)
	if err != nil {
		return "", 0, fmt.Errorf("[AdminFileService] ошибка генерации ссылки на загрузку: %w", err)
	}

	fileID, err := s.fileRepository.Create(ctx, db, &model.File{
		FolderID:     request.FolderID,
		Name:         fileName,
		OriginalName: fileName,
		FileType:     request.FileType,
		FileSize:     request.FileSize,
		StoragePath:  storagePath,
	})
	if err != nil {
		return "", 0, fmt.Errorf("[AdminFileService] ошибка записи файла: %w", err)
	}

	return uploadURL, fileID, nil
}

// UpdateFile : частичное обновление имени и папки файла
func (s *AdminFileService) UpdateFile(ctx context.Context, request *requestresponse.AdminUpdateFileRequest) (*model.FileWithFolder, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return nil, fmt.Errorf("[AdminFileService] database connection не найден в context")
	}

	file, err := s.fileRepository.GetByID(ctx, db, request.FileID)
	if err != nil {
		return nil, fmt.Errorf("[AdminFileService] ошибка поиска файла: %w", err)
	}
	if file == nil {
		return nil, fmt.Errorf("[AdminFileService] файл не найден: %w", ErrNotFound)
	}

	if request.FolderID != nil {
		folder, err := s.folderRepository.GetByID(ctx, db, *request.FolderID)
		if err != nil {
			return nil, fmt.Errorf("[AdminFileService] ошибка поиска папки: %w", err)
		}
		if folder == nil {
			return nil, fmt.Errorf("[AdminFileService] целевая папка не найдена: %w", ErrNotFound)
		}
	}

	if err := s.fileRepository.Update(ctx, db, request.FileID, request.OriginalName, request.FolderID); err != nil {
		return nil, fmt.Errorf("[AdminFileService] ошибка обновления файла: %w", err)
	}

	updated, err := s.fileRepository.GetWithFolder(ctx, db, request.FileID)
	if err != nil {
		return nil, fmt.Errorf("[AdminFileService] ошибка чтения обновлённого файла: %w", err)
	}
	return updated, nil
}

// DeleteFile : сначала удаляется запись в БД, затем объект в хранилище.
// Осиротевший объект в S3 безопаснее, чем запись о несуществующем файле.
func (s *AdminFileService) DeleteFile(ctx context.Context, fileID int64) error {
	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return fmt.Errorf("[AdminFileService] database connection не найден в context")
	}

	file, err := s.fileRepository.GetByID(ctx, db, fileID)
	if err != nil {
		return fmt.Errorf("[AdminFileService] ошибка поиска файла: %w", err)
	}
	if file == nil {
		return fmt.Errorf("[AdminFileService] файл не найден: %w", ErrNotFound)
	}

	if err := s.fileRepository.Delete(ctx, db, fileID); err != nil {
		return fmt.Errorf("[AdminFileService] ошибка удаления записи о файле: %w", err)
	}

	if err := s.storage.DeleteObject(ctx, file.StoragePath); err != nil {
		log.Printf("[AdminFileService] объект %s не удалён из хранилища: %v", file.StoragePath, err)
	}

	return nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxPageLimit {
		limit = defaultPageLimit
	}
	return page, limit
}
