package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"donation-web-server/config"
	"donation-web-server/internal/model"
	"donation-web-server/internal/model/requestresponse"
	"donation-web-server/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminFileService_UploadFile(t *testing.T) {
	db := &config.Database{}
	ctx := context.WithValue(context.Background(), "db", db)

	t.Run("empty file name", func(t *testing.T) {
		fileService := service.NewAdminFileService(new(MockFileRepository), new(MockFolderRepository),
			new(MockS3Storage), time.Hour)

		_, _, err := fileService.UploadFile(ctx, &requestresponse.AdminUploadFileRequest{FolderID: 3, FileName: "  "})
		assert.ErrorIs(t, err, service.ErrInvalidArgument)
	})

	t.Run("folder not found", func(t *testing.T) {
		folderRepo := new(MockFolderRepository)
		fileService := service.NewAdminFileService(new(MockFileRepository), folderRepo,
			new(MockS3Storage), time.Hour)

		folderRepo.On("GetByID", mock.Anything, mock.Anything, int64(99)).Return(nil, nil)

		_, _, err := fileService.UploadFile(ctx, &requestresponse.AdminUploadFileRequest{FolderID: 99, FileName: "guide.pdf"})
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("presigned put url and file record", func(t *testing.T) {
		fileRepo := new(MockFileRepository)
		folderRepo := new(MockFolderRepository)
		storage := new(MockS3Storage)
		fileService := service.NewAdminFileService(fileRepo, folderRepo, storage, time.Hour)

		folderRepo.On("GetByID", mock.Anything, mock.Anything, int64(3)).
			Return(&model.Folder{ID: 3, Name: "tutorials"}, nil)
		storage.On("GeneratePresignedPutURL", mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "3/") && strings.HasSuffix(key, "_guide.pdf")
		}), time.Hour).Return("https://s3.example.com/upload", nil)
		fileRepo.On("Create", mock.Anything, mock.Anything, mock.MatchedBy(func(file *model.File) bool {
			return file.FolderID == 3 && file.OriginalName == "guide.pdf" && strings.HasPrefix(file.StoragePath, "3/")
		})).Return(int64(10), nil)

		uploadURL, fileID, err := fileService.UploadFile(ctx, &requestresponse.AdminUploadFileRequest{
			FolderID: 3,
			FileName: "guide.pdf",
			FileType: "application/pdf",
			FileSize: 1024,
		})
		assert.NoError(t, err)
		assert.Equal(t, "https://s3.example.com/upload", uploadURL)
		assert.Equal(t, int64(10), fileID)

		storage.AssertExpectations(t)
		fileRepo.AssertExpectations(t)
	})
}

func TestAdminFileService_UpdateFile(t *testing.T) {
	db := &config.Database{}
	ctx := context.WithValue(context.Background(), "db", db)

	t.Run("file not found", func(t *testing.T) {
		fileRepo := new(MockFileRepository)
		fileService := service.NewAdminFileService(fileRepo, new(MockFolderRepository),
			new(MockS3Storage), time.Hour)

		fileRepo.On("GetByID", mock.Anything, mock.Anything, int64(99)).Return(nil, nil)

		_, err := fileService.UpdateFile(ctx, &requestresponse.AdminUpdateFileRequest{FileID: 99})
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("target folder not found", func(t *testing.T) {
		fileRepo := new(MockFileRepository)
		folderRepo := new(MockFolderRepository)
		fileService := service.NewAdminFileService(fileRepo, folderRepo,
			new(MockS3Storage), time.Hour)

		fileRepo.On("GetByID", mock.Anything, mock.Anything, int64(10)).
			Return(&model.File{ID: 10, FolderID: 1}, nil)
		folderRepo.On("GetByID", mock.Anything, mock.Anything, int64(99)).Return(nil, nil)

		target := int64(99)
		_, err := fileService.UpdateFile(ctx, &requestresponse.AdminUpdateFileRequest{FileID: 10, FolderID: &target})
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("move to another folder", func(t *testing.T) {
		fileRepo := new(MockFileRepository)
		folderRepo := new(MockFolderRepository)
		fileService := service.NewAdminFileService(fileRepo, folderRepo,
			new(MockS3Storage), time.Hour)

		target := int64(2)
		fileRepo.On("GetByID", mock.Anything, mock.Anything, int64(10)).
			Return(&model.File{ID: 10, FolderID: 1, OriginalName: "guide.pdf"}, nil)
		folderRepo.On("GetByID", mock.Anything, mock.Anything, int64(2)).
			Return(&model.Folder{ID: 2, Name: "premium"}, nil)
		fileRepo.On("Update", mock.Anything, mock.Anything, int64(10), (*string)(nil), &target).Return(nil)
		fileRepo.On("GetWithFolder", mock.Anything, mock.Anything, int64(10)).
			Return(&model.FileWithFolder{File: model.File{ID: 10, FolderID: 2, OriginalName: "guide.pdf"}, FolderName: "premium"}, nil)

		updated, err := fileService.UpdateFile(ctx, &requestresponse.AdminUpdateFileRequest{FileID: 10, FolderID: &target})
		assert.NoError(t, err)
		assert.Equal(t, int64(2), updated.FolderID)
		assert.Equal(t, "premium", updated.FolderName)

		fileRepo.AssertExpectations(t)
	})
}

func TestAdminFileService_DeleteFile(t *testing.T) {
	db := &config.Database{}
	ctx := context.WithValue(context.Background(), "db", db)

	file := &model.File{ID: 10, FolderID: 1, StoragePath: "1/1724400000000_guide.pdf"}

	t.Run("file not found", func(t *testing.T) {
		fileRepo := new(MockFileRepository)
		fileService := service.NewAdminFileService(fileRepo, new(MockFolderRepository),
			new(MockS3Storage), time.Hour)

		fileRepo.On("GetByID", mock.Anything, mock.Anything, int64(99)).Return(nil, nil)

		err := fileService.DeleteFile(ctx, 99)
		assert.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("record and object removed", func(t *testing.T) {
		fileRepo := new(MockFileRepository)
		storage := new(MockS3Storage)
		fileService := service.NewAdminFileService(fileRepo, new(MockFolderRepository), storage, time.Hour)

		fileRepo.On("GetByID", mock.Anything, mock.Anything, int64(10)).Return(file, nil)
		fileRepo.On("Delete", mock.Anything, mock.Anything, int64(10)).Return(nil)
		storage.On("DeleteObject", mock.Anything, file.StoragePath).Return(nil)

		err := fileService.DeleteFile(ctx, 10)
		assert.NoError(t, err)

		storage.AssertExpectations(t)
	})

	t.Run("storage failure tolerated", func(t *testing.T) {
		fileRepo := new(MockFileRepository)
		storage := new(MockS3Storage)
		fileService := service.NewAdminFileService(fileRepo, new(MockFolderRepository), storage, time.Hour)

		fileRepo.On("GetByID", mock.Anything, mock.Anything, int64(10)).Return(file, nil)
		fileRepo.On("Delete", mock.Anything, mock.Anything, int64(10)).Return(nil)
		storage.On("DeleteObject", mock.Anything, file.StoragePath).Return(errors.New("s3 unavailable"))

		err := fileService.DeleteFile(ctx, 10)
		assert.NoError(t, err)
	})
}
