package ports

import (
	"context"

	"donation-web-server/internal/model"
)

// CacheRepository : Redis слой
type CacheRepository interface {
	GetFolders(ctx context.Context) ([]model.Folder, error)
	SetFolders(ctx context.Context, folders []model.Folder) error
	InvalidateFolders(ctx context.Context) error
	GetUserGrants(ctx context.Context, userID int64) ([]int64, bool, error)
	SetUserGrants(ctx context.Context, userID int64, folderIDs []int64) error
	InvalidateUserGrants(ctx context.Context, userID int64) error
}
