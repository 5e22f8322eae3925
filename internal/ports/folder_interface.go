package ports

import (
	"context"

	"donation-web-server/internal/model"
	"donation-web-server/internal/model/requestresponse"

	"github.com/jmoiron/sqlx"
)

type FolderRepository interface {
	ListWithStats(ctx context.Context, exec sqlx.ExtContext) ([]model.FolderStats, error)
	GetStats(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.FolderStats, error)
	GetByID(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.Folder, error)
	NameTaken(ctx context.Context, exec sqlx.ExtContext, name string, excludeID int64) (bool, error)
	Create(ctx context.Context, exec sqlx.ExtContext, name, description string, minDonationAmount float64) (*model.Folder, error)
	Update(ctx context.Context, exec sqlx.ExtContext, id int64, name *string, description *string, minDonationAmount *float64) error
	Delete(ctx context.Context, exec sqlx.ExtContext, id int64) error
	ListAll(ctx context.Context, exec sqlx.ExtContext) ([]model.Folder, error)
	ListUsers(ctx context.Context, exec sqlx.ExtContext, folderID int64) ([]model.FolderUser, error)
	IDsWithinAmount(ctx context.Context, exec sqlx.ExtContext, amount float64) ([]int64, error)
}

type AdminFolderService interface {
	ListFolders(ctx context.Context) ([]model.FolderStats, error)
	CreateFolder(ctx context.Context, name, description string, minDonationAmount float64) (*model.FolderStats, error)
	UpdateFolder(ctx context.Context, request *requestresponse.AdminUpdateFolderRequest) (*model.FolderStats, error)
	DeleteFolder(ctx context.Context, folderID int64) error
	GetFolderUsers(ctx context.Context, folderID int64) (*model.Folder, []model.FolderUser, error)
}
