package ports

import (
	"context"

	"donation-web-server/internal/model"

	"github.com/jmoiron/sqlx"
)

type GrantRepository interface {
	AddGrant(ctx context.Context, exec sqlx.ExtContext, userID, folderID int64) error
	RemoveGrant(ctx context.Context, exec sqlx.ExtContext, userID, folderID int64) error
	HasAccess(ctx context.Context, exec sqlx.ExtContext, userID, folderID int64) (bool, error)
	FolderIDsByUser(ctx context.Context, exec sqlx.ExtContext, userID int64) ([]int64, error)
	ListByUser(ctx context.Context, exec sqlx.ExtContext, userID int64) ([]model.UserFolderGrant, error)
}
