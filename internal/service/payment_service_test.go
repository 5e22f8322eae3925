package service_test

import (
	"context"
	"testing"

	"donation-web-server/config"
	"donation-web-server/internal/model"
	"donation-web-server/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newPaymentService(
	donationRepo *MockDonationRepository,
	folderRepo *MockFolderRepository,
	grantRepo *MockGrantRepository,
	cacheRepo *MockCacheRepository,
	provider *MockPaymentProvider,
) *service.PaymentService {
	return service.NewPaymentService(donationRepo, folderRepo, grantRepo, cacheRepo, provider)
}

func TestPaymentService_CreateIntent(t *testing.T) {
	ctx := context.Background()

	t.Run("amount below minimum", func(t *testing.T) {
		paymentService := newPaymentService(new(MockDonationRepository), new(MockFolderRepository),
			new(MockGrantRepository), new(MockCacheRepository), new(MockPaymentProvider))

		intent, err := paymentService.CreateIntent(ctx, 5, 4.99, "usd")
		assert.ErrorIs(t, err, service.ErrInvalidArgument)
		assert.Nil(t, intent)
	})

	t.Run("amount above maximum", func(t *testing.T) {
		paymentService := newPaymentService(new(MockDonationRepository), new(MockFolderRepository),
			new(MockGrantRepository), new(MockCacheRepository), new(MockPaymentProvider))

		intent, err := paymentService.CreateIntent(ctx, 5, 1000.01, "usd")
		assert.ErrorIs(t, err, service.ErrInvalidArgument)
		assert.Nil(t, intent)
	})

	t.Run("amount converted to cents, currency defaulted", func(t *testing.T) {
		provider := new(MockPaymentProvider)
		paymentService := newPaymentService(new(MockDonationRepository), new(MockFolderRepository),
			new(MockGrantRepository), new(MockCacheRepository), provider)

		provider.On("CreateIntent", mock.Anything, int64(5), int64(5000), "usd").
			Return(&model.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret", Status: "requires_payment_method"}, nil)

		intent, err := paymentService.CreateIntent(ctx, 5, 50, "")
		assert.NoError(t, err)
		assert.Equal(t, "pi_1", intent.ID)
		assert.Equal(t, "pi_1_secret", intent.ClientSecret)

		provider.AssertExpectations(t)
	})
}

func TestPaymentService_ConfirmDonation(t *testing.T) {
	db := &config.Database{}
	ctx := context.WithValue(context.Background(), "db", db)

	t.Run("intent not paid yet", func(t *testing.T) {
		provider := new(MockPaymentProvider)
		paymentService := newPaymentService(new(MockDonationRepository), new(MockFolderRepository),
			new(MockGrantRepository), new(MockCacheRepository), provider)

		provider.On("GetIntent", mock.Anything, "pi_1").
			Return(&model.PaymentIntent{ID: "pi_1", Status: "requires_payment_method"}, nil)

		donationID, err := paymentService.ConfirmDonation(ctx, 5, "pi_1")
		assert.ErrorIs(t, err, service.ErrFailedPrecondition)
		assert.Zero(t, donationID)
	})

	t.Run("empty intent id", func(t *testing.T) {
		paymentService := newPaymentService(new(MockDonationRepository), new(MockFolderRepository),
			new(MockGrantRepository), new(MockCacheRepository), new(MockPaymentProvider))

		_, err := paymentService.ConfirmDonation(ctx, 5, "")
		assert.ErrorIs(t, err, service.ErrInvalidArgument)
	})

	t.Run("small donation unlocks only base folder", func(t *testing.T) {
		provider := new(MockPaymentProvider)
		donationRepo := new(MockDonationRepository)
		folderRepo := new(MockFolderRepository)
		grantRepo := new(MockGrantRepository)
		cacheRepo := new(MockCacheRepository)
		paymentService := newPaymentService(donationRepo, folderRepo, grantRepo, cacheRepo, provider)

		provider.On("GetIntent", mock.Anything, "pi_1").
			Return(&model.PaymentIntent{ID: "pi_1", Status: "succeeded", Amount: 50, Currency: "usd"}, nil)
		donationRepo.On("InsertCompleted", mock.Anything, mock.Anything, mock.MatchedBy(func(d *model.Donation) bool {
			return d.UserID == 5 && d.Amount == 50 && d.PaymentProvider == "stripe" && d.PaymentID == "pi_1"
		})).Return(int64(7), nil)
		folderRepo.On("IDsWithinAmount", mock.Anything, mock.Anything, 50.0).Return([]int64{1}, nil)
		grantRepo.On("AddGrant", mock.Anything, mock.Anything, int64(5), int64(1)).Return(nil)
		cacheRepo.On("InvalidateUserGrants", mock.Anything, int64(5)).Return(nil)

		donationID, err := paymentService.ConfirmDonation(ctx, 5, "pi_1")
		assert.NoError(t, err)
		assert.Equal(t, int64(7), donationID)

		grantRepo.AssertExpectations(t)
	})

	t.Run("donation at premium threshold unlocks both folders", func(t *testing.T) {
		provider := new(MockPaymentProvider)
		donationRepo := new(MockDonationRepository)
		folderRepo := new(MockFolderRepository)
		grantRepo := new(MockGrantRepository)
		cacheRepo := new(MockCacheRepository)
		paymentService := newPaymentService(donationRepo, folderRepo, grantRepo, cacheRepo, provider)

		provider.On("GetIntent", mock.Anything, "pi_2").
			Return(&model.PaymentIntent{ID: "pi_2", Status: "succeeded", Amount: 100, Currency: "usd"}, nil)
		donationRepo.On("InsertCompleted", mock.Anything, mock.Anything, mock.Anything).Return(int64(8), nil)
		folderRepo.On("IDsWithinAmount", mock.Anything, mock.Anything, 100.0).Return([]int64{1, 2}, nil)
		grantRepo.On("AddGrant", mock.Anything, mock.Anything, int64(5), int64(1)).Return(nil)
		grantRepo.On("AddGrant", mock.Anything, mock.Anything, int64(5), int64(2)).Return(nil)
		cacheRepo.On("InvalidateUserGrants", mock.Anything, int64(5)).Return(nil)

		donationID, err := paymentService.ConfirmDonation(ctx, 5, "pi_2")
		assert.NoError(t, err)
		assert.Equal(t, int64(8), donationID)

		grantRepo.AssertExpectations(t)
		cacheRepo.AssertExpectations(t)
	})

	t.Run("repeated confirmation returns same donation id", func(t *testing.T) {
		provider := new(MockPaymentProvider)
		donationRepo := new(MockDonationRepository)
		folderRepo := new(MockFolderRepository)
		grantRepo := new(MockGrantRepository)
		cacheRepo := new(MockCacheRepository)
		paymentService := newPaymentService(donationRepo, folderRepo, grantRepo, cacheRepo, provider)

		provider.On("GetIntent", mock.Anything, "pi_1").
			Return(&model.PaymentIntent{ID: "pi_1", Status: "succeeded", Amount: 50, Currency: "usd"}, nil)
		// Вставка идемпотентна: второй вызов отдаёт id уже существующей записи
		donationRepo.On("InsertCompleted", mock.Anything, mock.Anything, mock.Anything).Return(int64(7), nil)
		folderRepo.On("IDsWithinAmount", mock.Anything, mock.Anything, 50.0).Return([]int64{1}, nil)
		grantRepo.On("AddGrant", mock.Anything, mock.Anything, int64(5), int64(1)).Return(nil)
		cacheRepo.On("InvalidateUserGrants", mock.Anything, int64(5)).Return(nil)

		first, err := paymentService.ConfirmDonation(ctx, 5, "pi_1")
		assert.NoError(t, err)
		second, err := paymentService.ConfirmDonation(ctx, 5, "pi_1")
		assert.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("repeat donor below threshold keeps premium locked", func(t *testing.T) {
		provider := new(MockPaymentProvider)
		donationRepo := new(MockDonationRepository)
		folderRepo := new(MockFolderRepository)
		grantRepo := new(MockGrantRepository)
		cacheRepo := new(MockCacheRepository)
		paymentService := newPaymentService(donationRepo, folderRepo, grantRepo, cacheRepo, provider)

		// У пользователя уже есть пожертвования на $110, но подтверждается $50:
		// пороги сравниваются с суммой одного пожертвования, не с накопленной
		provider.On("GetIntent", mock.Anything, "pi_3").
			Return(&model.PaymentIntent{ID: "pi_3", Status: "succeeded", Amount: 50, Currency: "usd"}, nil)
		donationRepo.On("InsertCompleted", mock.Anything, mock.Anything, mock.Anything).Return(int64(9), nil)
		folderRepo.On("IDsWithinAmount", mock.Anything, mock.Anything, 50.0).Return([]int64{1}, nil)
		grantRepo.On("AddGrant", mock.Anything, mock.Anything, int64(5), int64(1)).Return(nil)
		cacheRepo.On("InvalidateUserGrants", mock.Anything, int64(5)).Return(nil)

		_, err := paymentService.ConfirmDonation(ctx, 5, "pi_3")
		assert.NoError(t, err)

		donationRepo.AssertNotCalled(t, "SumCompletedByUser", mock.Anything, mock.Anything, int64(5))
		grantRepo.AssertNotCalled(t, "AddGrant", mock.Anything, mock.Anything, int64(5), int64(2))
		folderRepo.AssertExpectations(t)
	})
}
