package ports

import (
	"context"

	"donation-web-server/internal/model"
	"donation-web-server/internal/model/requestresponse"
)

type AuthService interface {
	Register(ctx context.Context, request *requestresponse.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, email, password string) (string, *model.User, error)
	GetProfile(ctx context.Context, userID int64) (*model.User, float64, error)
	UpdateProfile(ctx context.Context, userID int64, request *requestresponse.UpdateProfileRequest) (*model.User, float64, error)
}
