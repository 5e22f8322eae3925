package service_test

import (
	"context"
	"errors"
	"testing"

	"donation-web-server/config"
	"donation-web-server/internal/model"
	"donation-web-server/internal/model/requestresponse"
	"donation-web-server/internal/security"
	"donation-web-server/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthService_Register(t *testing.T) {
	db := &config.Database{}
	ctx := context.WithValue(context.Background(), "db", db)

	tests := []struct {
		name        string
		request     *requestresponse.RegisterRequest
		setupMocks  func(u *MockUserRepository)
		expectError error
	}{
		{
			name:        "invalid email",
			request:     &requestresponse.RegisterRequest{Email: "not-an-email", Password: "secret1"},
			expectError: service.ErrInvalidArgument,
		},
		{
			name:        "short password",
			request:     &requestresponse.RegisterRequest{Email: "user@example.com", Password: "12345"},
			expectError: service.ErrInvalidArgument,
		},
		{
			name:    "email already registered",
			request: &requestresponse.RegisterRequest{Email: "user@example.com", Password: "secret1"},
			setupMocks: func(u *MockUserRepository) {
				u.On("FindByEmail", mock.Anything, mock.Anything, "user@example.com").
					Return(&model.User{ID: 1, Email: "user@example.com"}, nil)
			},
			expectError: service.ErrAlreadyExists,
		},
		{
			name:    "success with default language",
			request: &requestresponse.RegisterRequest{Email: "User@Example.com", Password: "secret1", FirstName: "Ana"},
			setupMocks: func(u *MockUserRepository) {
				u.On("FindByEmail", mock.Anything, mock.Anything, "user@example.com").Return(nil, nil)
				u.On("CreateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(user *model.User) bool {
					return user.Email == "user@example.com" && user.Language == "es" && !user.IsAdmin
				})).Return(&model.User{ID: 1, Email: "user@example.com", FirstName: "Ana", Language: "es"}, nil)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			donationRepo := new(MockDonationRepository)
			jwtService := new(MockJWTService)
			authService := service.NewAuthService(userRepo, donationRepo, jwtService)

			if tt.setupMocks != nil {
				tt.setupMocks(userRepo)
			}

			user, err := authService.Register(ctx, tt.request)

			if tt.expectError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, "user@example.com", user.Email)
			}

			userRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	db := &config.Database{}
	ctx := context.WithValue(context.Background(), "db", db)

	hash, err := security.HashPassword("correct1")
	assert.NoError(t, err)
	stored := &model.User{ID: 5, Email: "user@example.com", PasswordHash: hash}

	t.Run("unknown email", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		authService := service.NewAuthService(userRepo, new(MockDonationRepository), new(MockJWTService))

		userRepo.On("FindByEmail", mock.Anything, mock.Anything, "nobody@example.com").Return(nil, nil)

		token, user, err := authService.Login(ctx, "nobody@example.com", "whatever")
		assert.ErrorIs(t, err, service.ErrUnauthenticated)
		assert.Empty(t, token)
		assert.Nil(t, user)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		authService := service.NewAuthService(userRepo, new(MockDonationRepository), new(MockJWTService))

		userRepo.On("FindByEmail", mock.Anything, mock.Anything, "user@example.com").Return(stored, nil)

		token, user, err := authService.Login(ctx, "user@example.com", "wrong")
		assert.ErrorIs(t, err, service.ErrUnauthenticated)
		assert.Empty(t, token)
		assert.Nil(t, user)
	})

	t.Run("success", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		jwtService := new(MockJWTService)
		authService := service.NewAuthService(userRepo, new(MockDonationRepository), jwtService)

		userRepo.On("FindByEmail", mock.Anything, mock.Anything, "user@example.com").Return(stored, nil)
		jwtService.On("GenerateToken", stored).Return("signed-token", nil)

		token, user, err := authService.Login(ctx, "user@example.com", "correct1")
		assert.NoError(t, err)
		assert.Equal(t, "signed-token", token)
		assert.Equal(t, int64(5), user.ID)

		jwtService.AssertExpectations(t)
	})

	t.Run("token generation failure", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		jwtService := new(MockJWTService)
		authService := service.NewAuthService(userRepo, new(MockDonationRepository), jwtService)

		userRepo.On("FindByEmail", mock.Anything, mock.Anything, "user@example.com").Return(stored, nil)
		jwtService.On("GenerateToken", stored).Return("", errors.New("sign error"))

		token, user, err := authService.Login(ctx, "user@example.com", "correct1")
		assert.Error(t, err)
		assert.Empty(t, token)
		assert.Nil(t, user)
	})
}

func TestAuthService_GetProfile(t *testing.T) {
	db := &config.Database{}
	ctx := context.WithValue(context.Background(), "db", db)

	t.Run("user not found", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		authService := service.NewAuthService(userRepo, new(MockDonationRepository), new(MockJWTService))

		userRepo.On("FindByID", mock.Anything, mock.Anything, int64(99)).Return(nil, nil)

		user, total, err := authService.GetProfile(ctx, 99)
		assert.ErrorIs(t, err, service.ErrNotFound)
		assert.Nil(t, user)
		assert.Zero(t, total)
	})

	t.Run("success with donation total", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		donationRepo := new(MockDonationRepository)
		authService := service.NewAuthService(userRepo, donationRepo, new(MockJWTService))

		userRepo.On("FindByID", mock.Anything, mock.Anything, int64(5)).
			Return(&model.User{ID: 5, Email: "user@example.com"}, nil)
		donationRepo.On("SumCompletedByUser", mock.Anything, mock.Anything, int64(5)).Return(150.0, nil)

		user, total, err := authService.GetProfile(ctx, 5)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), user.ID)
		assert.Equal(t, 150.0, total)
	})
}

func TestAuthService_UpdateProfile(t *testing.T) {
	db := &config.Database{}
	ctx := context.WithValue(context.Background(), "db", db)

	hash, err := security.HashPassword("current1")
	assert.NoError(t, err)
	stored := &model.User{ID: 5, Email: "user@example.com", PasswordHash: hash, Language: "es"}

	t.Run("wrong current password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		authService := service.NewAuthService(userRepo, new(MockDonationRepository), new(MockJWTService))

		userRepo.On("FindByID", mock.Anything, mock.Anything, int64(5)).Return(stored, nil)

		_, _, err := authService.UpdateProfile(ctx, 5, &requestresponse.UpdateProfileRequest{
			CurrentPassword: "wrong",
			NewPassword:     "newpass1",
		})
		assert.ErrorIs(t, err, service.ErrInvalidArgument)
		assert.NotErrorIs(t, err, service.ErrUnauthenticated)
	})

	t.Run("short new password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		authService := service.NewAuthService(userRepo, new(MockDonationRepository), new(MockJWTService))

		userRepo.On("FindByID", mock.Anything, mock.Anything, int64(5)).Return(stored, nil)

		_, _, err := authService.UpdateProfile(ctx, 5, &requestresponse.UpdateProfileRequest{
			CurrentPassword: "current1",
			NewPassword:     "123",
		})
		assert.ErrorIs(t, err, service.ErrInvalidArgument)
	})

	t.Run("names overwritten unconditionally", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		donationRepo := new(MockDonationRepository)
		authService := service.NewAuthService(userRepo, donationRepo, new(MockJWTService))

		updated := &model.User{ID: 5, Email: "user@example.com", FirstName: "Ana", Language: "es"}
		userRepo.On("FindByID", mock.Anything, mock.Anything, int64(5)).Return(stored, nil).Once()
		userRepo.On("UpdateProfile", mock.Anything, mock.Anything, int64(5), "Ana", "", "es").Return(nil)
		userRepo.On("FindByID", mock.Anything, mock.Anything, int64(5)).Return(updated, nil).Once()
		donationRepo.On("SumCompletedByUser", mock.Anything, mock.Anything, int64(5)).Return(0.0, nil)

		user, _, err := authService.UpdateProfile(ctx, 5, &requestresponse.UpdateProfileRequest{FirstName: "Ana"})
		assert.NoError(t, err)
		assert.Equal(t, "Ana", user.FirstName)
		assert.Equal(t, "", user.LastName)

		userRepo.AssertExpectations(t)
	})
}
