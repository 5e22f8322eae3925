package repository

import (
	"context"
	"database/sql"
	"errors"

	"donation-web-server/config"
	"donation-web-server/internal/model"
	"donation-web-server/internal/util"

	"github.com/jmoiron/sqlx"
)

type FileRepository struct {
	*config.Database
}

func NewFileRepository(database *config.Database) *FileRepository {
	return &FileRepository{database}
}

// Create : сохраняет запись о файле до фактической загрузки байтов по pre-signed URL
func (r *FileRepository) Create(ctx context.Context, exec sqlx.ExtContext, file *model.File) (int64, error) {
	query := `
		INSERT INTO files (folder_id, name, original_name, file_type, file_size, storage_path)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, exec, &id, query,
		file.FolderID, file.Name, file.OriginalName, file.FileType, file.FileSize, file.StoragePath)
	if err != nil {
		return 0, util.LogError("[FileRepo] не удалось создать запись о файле", err)
	}
	return id, nil
}

// GetByID : файл по id, nil если не найден
func (r *FileRepository) GetByID(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.File, error) {
	query := `
		SELECT id, folder_id, name, original_name, file_type, file_size, storage_path, created_at
		FROM files WHERE id = $1
	`
	var file model.File
	err := sqlx.GetContext(ctx, exec, &file, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, util.LogError("[FileRepo] не удалось найти файл", err)
	}
	return &file, nil
}

// GetWithFolder : файл с именем папки, nil если не найден
func (r *FileRepository) GetWithFolder(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.FileWithFolder, error) {
	query := `
		SELECT
			f.id, f.folder_id, f.name, f.original_name, f.file_type, f.file_size,
			f.storage_path, f.created_at,
			folder.name AS folder_name
		FROM files f
		JOIN folders folder ON f.folder_id = folder.id
		WHERE f.id = $1
	`
	var file model.FileWithFolder
	err := sqlx.GetContext(ctx, exec, &file, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, util.LogError("[FileRepo] не удалось найти файл с папкой", err)
	}
	return &file, nil
}

// ListByFolder : файлы папки, сначала новые (список для конечного пользователя)
func (r *FileRepository) ListByFolder(ctx context.Context, exec sqlx.ExtContext, folderID int64) ([]model.File, error) {
	query := `
		SELECT id, folder_id, name, original_name, file_type, file_size, storage_path, created_at
		FROM files
		WHERE folder_id = $1
		ORDER BY created_at DESC
	`

	files := []model.File{}
	err := sqlx.SelectContext(ctx, exec, &files, query, folderID)
	if err != nil {
		return nil, util.LogError("[FileRepo] не удалось получить файлы папки", err)
	}
	return files, nil
}

// ListWithFolder : постраничный список с именем папки, folderID = nil отдаёт все файлы
func (r *FileRepository) ListWithFolder(ctx context.Context, exec sqlx.ExtContext, folderID *int64, limit, offset int) ([]model.FileWithFolder, error) {
	query := `
		SELECT
			f.id, f.folder_id, f.name, f.original_name, f.file_type, f.file_size,
			f.storage_path, f.created_at,
			folder.name AS folder_name
		FROM files f
		JOIN folders folder ON f.folder_id = folder.id
		WHERE ($1::bigint IS NULL OR f.folder_id = $1)
		ORDER BY f.created_at DESC
		LIMIT $2 OFFSET $3
	`

	files := []model.FileWithFolder{}
	err := sqlx.SelectContext(ctx, exec, &files, query, folderID, limit, offset)
	if err != nil {
		return nil, util.LogError("[FileRepo] не удалось получить список файлов", err)
	}
	return files, nil
}

// CountFiles : количество файлов для того же фильтра, что и ListWithFolder
func (r *FileRepository) CountFiles(ctx context.Context, exec sqlx.ExtContext, folderID *int64) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM files f WHERE ($1::bigint IS NULL OR f.folder_id = $1)`
	err := sqlx.GetContext(ctx, exec, &count, query, folderID)
	if err != nil {
		return 0, util.LogError("[FileRepo] ошибка подсчёта файлов", err)
	}
	return count, nil
}

// Update : частичное обновление имени и папки, nil-аргументы сохраняют текущее значение
func (r *FileRepository) Update(ctx context.Context, exec sqlx.ExtContext, id int64, originalName *string, folderID *int64) error {
	query := `
		UPDATE files
		SET
			original_name = COALESCE($2, original_name),
			folder_id = COALESCE($3, folder_id)
		WHERE id = $1
	`
	_, err := exec.ExecContext(ctx, query, id, originalName, folderID)
	if err != nil {
		return util.LogError("[FileRepo] не удалось обновить файл", err)
	}
	return nil
}

// Delete : удаляет запись о файле
func (r *FileRepository) Delete(ctx context.Context, exec sqlx.ExtContext, id int64) error {
	_, err := exec.ExecContext(ctx, `DELETE FROM files WHERE id = $1`, id)
	if err != nil {
		return util.LogError("[FileRepo] не удалось удалить запись о файле", err)
	}
	return nil
}
