package service_test

import (
	"context"
	"time"

	"donation-web-server/internal/model"
	"donation-web-server/internal/security"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error) {
	args := m.Called(ctx, exec, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.User, error) {
	args := m.Called(ctx, exec, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, exec sqlx.ExtContext, email string) (*model.User, error) {
	args := m.Called(ctx, exec, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) EmailTaken(ctx context.Context, exec sqlx.ExtContext, email string, excludeID int64) (bool, error) {
	args := m.Called(ctx, exec, email, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) error {
	return m.Called(ctx, exec, user).Error(0)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, exec sqlx.ExtContext, id int64, firstName, lastName, language string) error {
	return m.Called(ctx, exec, id, firstName, lastName, language).Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, exec sqlx.ExtContext, id int64, newPasswordHash string) error {
	return m.Called(ctx, exec, id, newPasswordHash).Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, exec sqlx.ExtContext, id int64) error {
	return m.Called(ctx, exec, id).Error(0)
}

func (m *MockUserRepository) CountUsers(ctx context.Context, exec sqlx.ExtContext) (int64, error) {
	args := m.Called(ctx, exec)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ListWithDonations(ctx context.Context, exec sqlx.ExtContext, limit, offset int) ([]*model.UserWithDonations, error) {
	args := m.Called(ctx, exec, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.UserWithDonations), args.Error(1)
}

func (m *MockUserRepository) GetWithDonations(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.UserWithDonations, error) {
	args := m.Called(ctx, exec, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.UserWithDonations), args.Error(1)
}

type MockFolderRepository struct{ mock.Mock }

func (m *MockFolderRepository) ListWithStats(ctx context.Context, exec sqlx.ExtContext) ([]model.FolderStats, error) {
	args := m.Called(ctx, exec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FolderStats), args.Error(1)
}

func (m *MockFolderRepository) GetStats(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.FolderStats, error) {
	args := m.Called(ctx, exec, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FolderStats), args.Error(1)
}

func (m *MockFolderRepository) GetByID(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.Folder, error) {
	args := m.Called(ctx, exec, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Folder), args.Error(1)
}

func (m *MockFolderRepository) NameTaken(ctx context.Context, exec sqlx.ExtContext, name string, excludeID int64) (bool, error) {
	args := m.Called(ctx, exec, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFolderRepository) Create(ctx context.Context, exec sqlx.ExtContext, name, description string, minDonationAmount float64) (*model.Folder, error) {
	args := m.Called(ctx, exec, name, description, minDonationAmount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Folder), args.Error(1)
}

func (m *MockFolderRepository) Update(ctx context.Context, exec sqlx.ExtContext, id int64, name *string, description *string, minDonationAmount *float64) error {
	return m.Called(ctx, exec, id, name, description, minDonationAmount).Error(0)
}

func (m *MockFolderRepository) Delete(ctx context.Context, exec sqlx.ExtContext, id int64) error {
	return m.Called(ctx, exec, id).Error(0)
}

func (m *MockFolderRepository) ListAll(ctx context.Context, exec sqlx.ExtContext) ([]model.Folder, error) {
	args := m.Called(ctx, exec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Folder), args.Error(1)
}

func (m *MockFolderRepository) ListUsers(ctx context.Context, exec sqlx.ExtContext, folderID int64) ([]model.FolderUser, error) {
	args := m.Called(ctx, exec, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FolderUser), args.Error(1)
}

func (m *MockFolderRepository) IDsWithinAmount(ctx context.Context, exec sqlx.ExtContext, amount float64) ([]int64, error) {
	args := m.Called(ctx, exec, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type MockFileRepository struct{ mock.Mock }

func (m *MockFileRepository) Create(ctx context.Context, exec sqlx.ExtContext, file *model.File) (int64, error) {
	args := m.Called(ctx, exec, file)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFileRepository) GetByID(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.File, error) {
	args := m.Called(ctx, exec, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.File), args.Error(1)
}

func (m *MockFileRepository) GetWithFolder(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.FileWithFolder, error) {
	args := m.Called(ctx, exec, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FileWithFolder), args.Error(1)
}

func (m *MockFileRepository) ListByFolder(ctx context.Context, exec sqlx.ExtContext, folderID int64) ([]model.File, error) {
	args := m.Called(ctx, exec, folderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.File), args.Error(1)
}

func (m *MockFileRepository) ListWithFolder(ctx context.Context, exec sqlx.ExtContext, folderID *int64, limit, offset int) ([]model.FileWithFolder, error) {
	args := m.Called(ctx, exec, folderID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FileWithFolder), args.Error(1)
}

func (m *MockFileRepository) CountFiles(ctx context.Context, exec sqlx.ExtContext, folderID *int64) (int64, error) {
	args := m.Called(ctx, exec, folderID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFileRepository) Update(ctx context.Context, exec sqlx.ExtContext, id int64, originalName *string, folderID *int64) error {
	return m.Called(ctx, exec, id, originalName, folderID).Error(0)
}

func (m *MockFileRepository) Delete(ctx context.Context, exec sqlx.ExtContext, id int64) error {
	return m.Called(ctx, exec, id).Error(0)
}

type MockDonationRepository struct{ mock.Mock }

func (m *MockDonationRepository) InsertCompleted(ctx context.Context, exec sqlx.ExtContext, donation *model.Donation) (int64, error) {
	args := m.Called(ctx, exec, donation)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDonationRepository) SumCompletedByUser(ctx context.Context, exec sqlx.ExtContext, userID int64) (float64, error) {
	args := m.Called(ctx, exec, userID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockDonationRepository) ListByUser(ctx context.Context, exec sqlx.ExtContext, userID int64) ([]model.Donation, error) {
	args := m.Called(ctx, exec, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Donation), args.Error(1)
}

type MockGrantRepository struct{ mock.Mock }

func (m *MockGrantRepository) AddGrant(ctx context.Context, exec sqlx.ExtContext, userID, folderID int64) error {
	return m.Called(ctx, exec, userID, folderID).Error(0)
}

func (m *MockGrantRepository) RemoveGrant(ctx context.Context, exec sqlx.ExtContext, userID, folderID int64) error {
	return m.Called(ctx, exec, userID, folderID).Error(0)
}

func (m *MockGrantRepository) HasAccess(ctx context.Context, exec sqlx.ExtContext, userID, folderID int64) (bool, error) {
	args := m.Called(ctx, exec, userID, folderID)
	return args.Bool(0), args.Error(1)
}

func (m *MockGrantRepository) FolderIDsByUser(ctx context.Context, exec sqlx.ExtContext, userID int64) ([]int64, error) {
	args := m.Called(ctx, exec, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockGrantRepository) ListByUser(ctx context.Context, exec sqlx.ExtContext, userID int64) ([]model.UserFolderGrant, error) {
	args := m.Called(ctx, exec, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.UserFolderGrant), args.Error(1)
}

type MockCacheRepository struct{ mock.Mock }

func (m *MockCacheRepository) GetFolders(ctx context.Context) ([]model.Folder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Folder), args.Error(1)
}

func (m *MockCacheRepository) SetFolders(ctx context.Context, folders []model.Folder) error {
	return m.Called(ctx, folders).Error(0)
}

func (m *MockCacheRepository) InvalidateFolders(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockCacheRepository) GetUserGrants(ctx context.Context, userID int64) ([]int64, bool, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]int64), args.Bool(1), args.Error(2)
}

func (m *MockCacheRepository) SetUserGrants(ctx context.Context, userID int64, folderIDs []int64) error {
	return m.Called(ctx, userID, folderIDs).Error(0)
}

func (m *MockCacheRepository) InvalidateUserGrants(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

type MockS3Storage struct{ mock.Mock }

func (m *MockS3Storage) GeneratePresignedGetURL(ctx context.Context, key string, expire time.Duration) (string, error) {
	args := m.Called(ctx, key, expire)
	return args.String(0), args.Error(1)
}

func (m *MockS3Storage) GeneratePresignedPutURL(ctx context.Context, key string, expire time.Duration) (string, error) {
	args := m.Called(ctx, key, expire)
	return args.String(0), args.Error(1)
}

func (m *MockS3Storage) DeleteObject(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type MockJWTService struct{ mock.Mock }

func (m *MockJWTService) GenerateToken(user *model.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *MockJWTService) ValidateJWT(tokenString string) (*security.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.Claims), args.Error(1)
}

type MockPaymentProvider struct{ mock.Mock }

func (m *MockPaymentProvider) CreateIntent(ctx context.Context, userID int64, amountCents int64, currency string) (*model.PaymentIntent, error) {
	args := m.Called(ctx, userID, amountCents, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentIntent), args.Error(1)
}

func (m *MockPaymentProvider) GetIntent(ctx context.Context, paymentIntentID string) (*model.PaymentIntent, error) {
	args := m.Called(ctx, paymentIntentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PaymentIntent), args.Error(1)
}
