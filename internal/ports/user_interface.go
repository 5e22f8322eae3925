package ports

import (
	"context"

	"donation-web-server/internal/model"
	"donation-web-server/internal/model/requestresponse"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error)
	FindByID(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.User, error)
	FindByEmail(ctx context.Context, exec sqlx.ExtContext, email string) (*model.User, error)
	EmailTaken(ctx context.Context, exec sqlx.ExtContext, email string, excludeID int64) (bool, error)
	UpdateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) error
	UpdateProfile(ctx context.Context, exec sqlx.ExtContext, id int64, firstName, lastName, language string) error
	UpdatePassword(ctx context.Context, exec sqlx.ExtContext, id int64, newPasswordHash string) error
	DeleteUser(ctx context.Context, exec sqlx.ExtContext, id int64) error
	CountUsers(ctx context.Context, exec sqlx.ExtContext) (int64, error)
	ListWithDonations(ctx context.Context, exec sqlx.ExtContext, limit, offset int) ([]*model.UserWithDonations, error)
	GetWithDonations(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.UserWithDonations, error)
}

type AdminUserService interface {
	ListUsers(ctx context.Context, page, limit int) ([]*model.UserWithDonations, int64, error)
	GetUserDetails(ctx context.Context, userID int64) (*model.UserWithDonations, []model.Donation, []model.UserFolderGrant, error)
	CreateUser(ctx context.Context, request *requestresponse.AdminCreateUserRequest) (*model.User, error)
	UpdateUser(ctx context.Context, request *requestresponse.AdminUpdateUserRequest) (*model.User, error)
	DeleteUser(ctx context.Context, userID int64) error
	GrantAccess(ctx context.Context, userID, folderID int64) error
	RevokeAccess(ctx context.Context, userID, folderID int64) error
}
