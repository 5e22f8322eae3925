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

type FolderRepository struct {
	*config.Database
}

func NewFolderRepository(database *config.Database) *FolderRepository {
	return &FolderRepository{database}
}

// ListWithStats : все папки с количеством файлов и выданных доступов (нулевые значения через COALESCE)
func (r *FolderRepository) ListWithStats(ctx context.Context, exec sqlx.ExtContext) ([]model.FolderStats, error) {
	query := `
		SELECT
			f.id, f.name, f.description, f.min_donation_amount, f.created_at, f.updated_at,
			COALESCE(file_counts.count, 0) AS file_count,
			COALESCE(user_counts.count, 0) AS user_count
		FROM folders f
		LEFT JOIN (
			SELECT folder_id, COUNT(*) AS count FROM files GROUP BY folder_id
		) file_counts ON f.id = file_counts.folder_id
		LEFT JOIN (
			SELECT folder_id, COUNT(*) AS count FROM user_folder_access GROUP BY folder_id
		) user_counts ON f.id = user_counts.folder_id
		ORDER BY f.id
	`

	folders := []model.FolderStats{}
	err := sqlx.SelectContext(ctx, exec, &folders, query)
	if err != nil {
		return nil, util.LogError("[FolderRepo] не удалось получить список папок", err)
	}
	return folders, nil
}

// GetStats : одна папка со статистикой, nil если не найдена
func (r *FolderRepository) GetStats(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.FolderStats, error) {
	query := `
		SELECT
			f.id, f.name, f.description, f.min_donation_amount, f.created_at, f.updated_at,
			COALESCE(file_counts.count, 0) AS file_count,
			COALESCE(user_counts.count, 0) AS user_count
		FROM folders f
		LEFT JOIN (
			SELECT folder_id, COUNT(*) AS count FROM files WHERE folder_id = $1 GROUP BY folder_id
		) file_counts ON f.id = file_counts.folder_id
		LEFT JOIN (
			SELECT folder_id, COUNT(*) AS count FROM user_folder_access WHERE folder_id = $1 GROUP BY folder_id
		) user_counts ON f.id = user_counts.folder_id
		WHERE f.id = $1
	`

	var folder model.FolderStats
	err := sqlx.GetContext(ctx, exec, &folder, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, util.LogError("[FolderRepo] не удалось получить папку со статистикой", err)
	}
	return &folder, nil
}

// GetByID : папка по id, nil если не найдена
func (r *FolderRepository) GetByID(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.Folder, error) {
	query := `SELECT id, name, description, min_donation_amount, created_at, updated_at FROM folders WHERE id = $1`
	var folder model.Folder
	err := sqlx.GetContext(ctx, exec, &folder, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, util.LogError("[FolderRepo] не удалось найти папку", err)
	}
	return &folder, nil
}

// NameTaken : занято ли имя другой папкой (excludeID = 0 проверяет все)
func (r *FolderRepository) NameTaken(ctx context.Context, exec sqlx.ExtContext, name string, excludeID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM folders WHERE name = $1 AND id <> $2)`
	err := sqlx.GetContext(ctx, exec, &exists, query, name, excludeID)
	if err != nil {
		return false, util.LogError("[FolderRepo] ошибка проверки имени папки", err)
	}
	return exists, nil
}

// Create : сохраняет новую папку
func (r *FolderRepository) Create(ctx context.Context, exec sqlx.ExtContext, name, description string, minDonationAmount float64) (*model.Folder, error) {
	query := `
		INSERT INTO folders (name, description, min_donation_amount)
		VALUES ($1, $2, $3)
		RETURNING id, name, description, min_donation_amount, created_at, updated_at
	`

	var folder model.Folder
	err := sqlx.GetContext(ctx, exec, &folder, query, name, description, minDonationAmount)
	if err != nil {
		return nil, util.LogError("[FolderRepo] не удалось создать папку", err)
	}
	return &folder, nil
}

// Update : частичное обновление, nil-аргументы сохраняют текущее значение (COALESCE)
func (r *FolderRepository) Update(ctx context.Context, exec sqlx.ExtContext, id int64, name *string, description *string, minDonationAmount *float64) error {
	query := `
		UPDATE folders
		SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			min_donation_amount = COALESCE($4, min_donation_amount),
			updated_at = NOW()
		WHERE id = $1
	`
	_, err := exec.ExecContext(ctx, query, id, name, description, minDonationAmount)
	if err != nil {
		return util.LogError("[FolderRepo] не удалось обновить папку", err)
	}
	return nil
}

// Delete : удаляет папку, файлы и доступы уходят каскадом по FK
func (r *FolderRepository) Delete(ctx context.Context, exec sqlx.ExtContext, id int64) error {
	_, err := exec.ExecContext(ctx, `DELETE FROM folders WHERE id = $1`, id)
	if err != nil {
		return util.LogError("[FolderRepo] не удалось удалить папку", err)
	}
	return nil
}

// ListAll : все папки по возрастанию id (каталог для конечных пользователей)
func (r *FolderRepository) ListAll(ctx context.Context, exec sqlx.ExtContext) ([]model.Folder, error) {
	query := `SELECT id, name, description, min_donation_amount, created_at, updated_at FROM folders ORDER BY id`
	folders := []model.Folder{}
	err := sqlx.SelectContext(ctx, exec, &folders, query)
	if err != nil {
		return nil, util.LogError("[FolderRepo] не удалось получить каталог папок", err)
	}
	return folders, nil
}

// ListUsers : пользователи с доступом к папке, сначала самые свежие доступы
func (r *FolderRepository) ListUsers(ctx context.Context, exec sqlx.ExtContext, folderID int64) ([]model.FolderUser, error) {
	query := `
		SELECT u.id, u.email, u.first_name, u.last_name, ufa.granted_at
		FROM users u
		JOIN user_folder_access ufa ON u.id = ufa.user_id
		WHERE ufa.folder_id = $1
		ORDER BY ufa.granted_at DESC
	`

	users := []model.FolderUser{}
	err := sqlx.SelectContext(ctx, exec, &users, query, folderID)
	if err != nil {
		return nil, util.LogError("[FolderRepo] не удалось получить пользователей папки", err)
	}
	return users, nil
}

// IDsWithinAmount : id папок, порог которых не превышает подтверждённую сумму пожертвования
func (r *FolderRepository) IDsWithinAmount(ctx context.Context, exec sqlx.ExtContext, amount float64) ([]int64, error) {
	var ids []int64
	query := `SELECT id FROM folders WHERE min_donation_amount <= $1 ORDER BY id`
	err := sqlx.SelectContext(ctx, exec, &ids, query, amount)
	if err != nil {
		return nil, util.LogError("[FolderRepo] не удалось получить папки по порогу", err)
	}
	return ids, nil
}
