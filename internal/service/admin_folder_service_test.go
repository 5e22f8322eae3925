package service_test

import (
	"context"
	"testing"

	"donation-web-server/config"
	"donation-web-server/internal/model"
	"donation-web-server/internal/model/requestresponse"
	"donation-web-server/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminFolderService_CreateFolder(t *testing.T) {
	db := &config.Database{}
	ctx := context.WithValue(context.Background(), "db", db)

	t.Run("empty name", func(t *testing.T) {
		folderService := service.NewAdminFolderService(new(MockFolderRepository), new(MockCacheRepository))

		_, err := folderService.CreateFolder(ctx, "   ", "", 10)
		assert.ErrorIs(t, err, service.ErrInvalidArgument)
	})

	t.Run("negative threshold", func(t *testing.T) {
		folderService := service.NewAdminFolderService(new(MockFolderRepository), new(MockCacheRepository))

		_, err := folderService.CreateFolder(ctx, "tutorials", "", -1)
		assert.ErrorIs(t, err, service.ErrInvalidArgument)
	})

	t.Run("duplicate name", func(t *testing.T) {
		folderRepo := new(MockFolderRepository)
		folderService := service.NewAdminFolderService(folderRepo, new(MockCacheRepository))

		folderRepo.On("NameTaken", mock.Anything, mock.Anything, "tutorials", int64(0)).Return(true, nil)

		_, err := folderService.CreateFolder(ctx, "tutorials", "", 25)
		assert.ErrorIs(t, err, service.ErrAlreadyExists)
	})

	t.Run("success invalidates catalog cache", func(t *testing.T) {
		folderRepo := new(MockFolderRepository)
		cacheRepo := new(MockCacheRepository)
		folderService := service.NewAdminFolderService(folderRepo, cacheRepo)

		folderRepo.On("NameTaken", mock.Anything, mock.Anything, "tutorials", int64(0)).Return(false, nil)
		folderRepo.On("Create", mock.Anything, mock.Anything, "tutorials", "Обучающие материалы", 25.0).
			Return(&model.Folder{ID: 3, Name: "tutorials", MinDonationAmount: 25}, nil)
		cacheRepo.On("InvalidateFolders", mock.Anything).Return(nil)
		folderRepo.On("GetStats", mock.Anything, mock.Anything, int64(3)).
			Return(&model.FolderStats{Folder: model.Folder{ID: 3, Name: "tutorials", MinDonationAmount: 25}}, nil)

		folder, err := folderService.CreateFolder(ctx, "tutorials", "Обучающие материалы", 25)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), folder.ID)

		cacheRepo.AssertExpectations(t)
	})
}

func TestAdminFolderService_UpdateFolder(t *testing.T) {
	db := &config.Database{}
	ctx := context.WithValue(context.Background(), "db", db)

	t.Run("folder not found", func(t *testing.T) {
		folderRepo := new(MockFolderRepository)
		folderService := service.NewAdminFolderService(folderRepo, new(MockCacheRepository))

		folderRepo.On("GetByID", mock.Anything, mock.Anything, int64(99)).Return(nil, nil)

		_, err := folderService.UpdateFolder(ctx, &requestresponse.AdminUpdateFolderRequest{FolderID: 99})
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("rename collision", func(t *testing.T) {
		folderRepo := new(MockFolderRepository)
		folderService := service.NewAdminFolderService(folderRepo, new(MockCacheRepository))

		folderRepo.On("GetByID", mock.Anything, mock.Anything, int64(3)).
			Return(&model.Folder{ID: 3, Name: "tutorials"}, nil)
		folderRepo.On("NameTaken", mock.Anything, mock.Anything, "premium", int64(3)).Return(true, nil)

		name := "premium"
		_, err := folderService.UpdateFolder(ctx, &requestresponse.AdminUpdateFolderRequest{FolderID: 3, Name: &name})
		assert.ErrorIs(t, err, service.ErrAlreadyExists)
	})

	t.Run("negative threshold", func(t *testing.T) {
		folderRepo := new(MockFolderRepository)
		folderService := service.NewAdminFolderService(folderRepo, new(MockCacheRepository))

		folderRepo.On("GetByID", mock.Anything, mock.Anything, int64(3)).
			Return(&model.Folder{ID: 3, Name: "tutorials"}, nil)

		threshold := -5.0
		_, err := folderService.UpdateFolder(ctx, &requestresponse.AdminUpdateFolderRequest{FolderID: 3, MinDonationAmount: &threshold})
		assert.ErrorIs(t, err, service.ErrInvalidArgument)
	})
}

func TestAdminFolderService_DeleteFolder(t *testing.T) {
	db := &config.Database{}
	ctx := context.WithValue(context.Background(), "db", db)

	t.Run("base folders protected", func(t *testing.T) {
		for _, id := range []int64{1, 2} {
			folderRepo := new(MockFolderRepository)
			folderService := service.NewAdminFolderService(folderRepo, new(MockCacheRepository))

			folderRepo.On("GetByID", mock.Anything, mock.Anything, id).
				Return(&model.Folder{ID: id}, nil)

			err := folderService.DeleteFolder(ctx, id)
			assert.ErrorIs(t, err, service.ErrPermissionDenied)
		}
	})

	t.Run("folder not found", func(t *testing.T) {
		folderRepo := new(MockFolderRepository)
		folderService := service.NewAdminFolderService(folderRepo, new(MockCacheRepository))

		folderRepo.On("GetByID", mock.Anything, mock.Anything, int64(99)).Return(nil, nil)

		err := folderService.DeleteFolder(ctx, 99)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("custom folder deleted", func(t *testing.T) {
		folderRepo := new(MockFolderRepository)
		cacheRepo := new(MockCacheRepository)
		folderService := service.NewAdminFolderService(folderRepo, cacheRepo)

		folderRepo.On("GetByID", mock.Anything, mock.Anything, int64(3)).
			Return(&model.Folder{ID: 3, Name: "tutorials"}, nil)
		folderRepo.On("Delete", mock.Anything, mock.Anything, int64(3)).Return(nil)
		cacheRepo.On("InvalidateFolders", mock.Anything).Return(nil)

		err := folderService.DeleteFolder(ctx, 3)
		assert.NoError(t, err)

		folderRepo.AssertExpectations(t)
		cacheRepo.AssertExpectations(t)
	})
}
