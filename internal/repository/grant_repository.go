package repository

import (
	"context"

	"donation-web-server/config"
	"donation-web-server/internal/model"
	"donation-web-server/internal/util"

	"github.com/jmoiron/sqlx"
)

type GrantRepository struct {
	*config.Database
}

func NewGrantRepository(database *config.Database) *GrantRepository {
	return &GrantRepository{database}
}

// AddGrant : выдаёт доступ пользователю к папке, повторная выдача — no-op.
// Insert-or-ignore переживает гонку двух одновременных подтверждений пожертвования.
func (r *GrantRepository) AddGrant(ctx context.Context, exec sqlx.ExtContext, userID, folderID int64) error {
	query := `
		INSERT INTO user_folder_access (user_id, folder_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, folder_id) DO NOTHING
	`
	_, err := exec.ExecContext(ctx, query, userID, folderID)
	if err != nil {
		return util.LogError("[GrantRepo] не удалось выдать доступ к папке", err)
	}
	return nil
}

// RemoveGrant : отзывает доступ пользователя к папке
func (r *GrantRepository) RemoveGrant(ctx context.Context, exec sqlx.ExtContext, userID, folderID int64) error {
	query := `DELETE FROM user_folder_access WHERE user_id = $1 AND folder_id = $2`
	_, err := exec.ExecContext(ctx, query, userID, folderID)
	if err != nil {
		return util.LogError("[GrantRepo] не удалось отозвать доступ к папке", err)
	}
	return nil
}

// HasAccess : есть ли у пользователя доступ к папке
func (r *GrantRepository) HasAccess(ctx context.Context, exec sqlx.ExtContext, userID, folderID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM user_folder_access WHERE user_id = $1 AND folder_id = $2)`
	err := sqlx.GetContext(ctx, exec, &exists, query, userID, folderID)
	if err != nil {
		return false, util.LogError("[GrantRepo] ошибка проверки доступа", err)
	}
	return exists, nil
}

// FolderIDsByUser : id папок, к которым у пользователя есть доступ
func (r *GrantRepository) FolderIDsByUser(ctx context.Context, exec sqlx.ExtContext, userID int64) ([]int64, error) {
	var ids []int64
	query := `SELECT folder_id FROM user_folder_access WHERE user_id = $1 ORDER BY folder_id`
	err := sqlx.SelectContext(ctx, exec, &ids, query, userID)
	if err != nil {
		return nil, util.LogError("[GrantRepo] не удалось получить доступы пользователя", err)
	}
	return ids, nil
}

// ListByUser : доступы пользователя с именами папок (история для админа)
func (r *GrantRepository) ListByUser(ctx context.Context, exec sqlx.ExtContext, userID int64) ([]model.UserFolderGrant, error) {
	query := `
		SELECT f.id AS folder_id, f.name, ufa.granted_at
		FROM user_folder_access ufa
		JOIN folders f ON ufa.folder_id = f.id
		WHERE ufa.user_id = $1
		ORDER BY f.id
	`

	grants := []model.UserFolderGrant{}
	err := sqlx.SelectContext(ctx, exec, &grants, query, userID)
	if err != nil {
		return nil, util.LogError("[GrantRepo] не удалось получить список доступов", err)
	}
	return grants, nil
}
