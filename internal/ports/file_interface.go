package ports

import (
	"context"

	"donation-web-server/internal/model"
	"donation-web-server/internal/model/requestresponse"

	"github.com/jmoiron/sqlx"
)

// FileRepository : SQL слой
type FileRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, file *model.File) (int64, error)
	GetByID(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.File, error)
	GetWithFolder(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.FileWithFolder, error)
	ListByFolder(ctx context.Context, exec sqlx.ExtContext, folderID int64) ([]model.File, error)
	ListWithFolder(ctx context.Context, exec sqlx.ExtContext, folderID *int64, limit, offset int) ([]model.FileWithFolder, error)
	CountFiles(ctx context.Context, exec sqlx.ExtContext, folderID *int64) (int64, error)
	Update(ctx context.Context, exec sqlx.ExtContext, id int64, originalName *string, folderID *int64) error
	Delete(ctx context.Context, exec sqlx.ExtContext, id int64) error
}

// AccessService : выдача контента конечным пользователям с учётом их доступов
type AccessService interface {
	ListFiles(ctx context.Context, userID int64, folderID *int64) ([]model.FolderAccess, []model.File, error)
	DownloadFile(ctx context.Context, userID, fileID int64) (string, string, error)
}

type AdminFileService interface {
	ListFiles(ctx context.Context, folderID *int64, page, limit int) ([]model.FileWithFolder, int64, error)
	UploadFile(ctx context.Context, request *requestresponse.AdminUploadFileRequest) (string, int64, error)
	UpdateFile(ctx context.Context, request *requestresponse.AdminUpdateFileRequest) (*model.FileWithFolder, error)
	DeleteFile(ctx context.Context, fileID int64) error
}
