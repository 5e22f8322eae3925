package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"donation-web-server/config"
	"donation-web-server/internal/model"
	"donation-web-server/internal/ports"
)

// Допустимый диапазон одного пожертвования в валютных единицах
const (
	MinDonationAmount = 5.0
	MaxDonationAmount = 1000.0
)

const defaultCurrency = "usd"

type PaymentService struct {
	donationRepository ports.DonationRepository
	folderRepository   ports.FolderRepository
	grantRepository    ports.GrantRepository
	cacheRepository    ports.CacheRepository
	provider           ports.PaymentProvider
}

func NewPaymentService(
	donationRepository ports.DonationRepository,
	folderRepository ports.FolderRepository,
	grantRepository ports.GrantRepository,
	cacheRepository ports.CacheRepository,
	provider ports.PaymentProvider,
) *PaymentService {
	return &PaymentService{
		donationRepository: donationRepository,
		folderRepository:   folderRepository,
		grantRepository:    grantRepository,
		cacheRepository:    cacheRepository,
		provider:           provider,
	}
}

// CreateIntent : создаёт платёжное намерение у провайдера, сумма уходит в центах
func (s *PaymentService) CreateIntent(ctx context.Context, userID int64, amount float64, currency string) (*model.PaymentIntent, error) {
	if amount < MinDonationAmount || amount > MaxDonationAmount {
		return nil, fmt.Errorf("[PaymentService] сумма должна быть от %.0f до %.0f: %w",
			MinDonationAmount, MaxDonationAmount, ErrInvalidArgument)
	}

	currency = strings.ToLower(strings.TrimSpace(currency))
	if currency == "" {
		currency = defaultCurrency
	}

	amountCents := int64(math.Round(amount * 100))

	intent, err := s.provider.CreateIntent(ctx, userID, amountCents, currency)
	if err != nil {
		return nil, fmt.Errorf("[PaymentService] ошибка создания платёжного намерения: %w", err)
	}

	return intent, nil
}

// ConfirmDonation : фиксирует оплаченное намерение как пожертвование и выдаёт доступы.
// Повторное подтверждение того же намерения возвращает id уже существующей записи.
func (s *PaymentService) ConfirmDonation(ctx context.Context, userID int64, paymentIntentID string) (int64, error) {
	if paymentIntentID == "" {
		return 0, fmt.Errorf("[PaymentService] не указан идентификатор платежа: %w", ErrInvalidArgument)
	}

	db, ok := ctx.Value("db").(*config.Database)
	if !ok {
		return 0, fmt.Errorf("[PaymentService] database connection не найден в context")
	}

	intent, err := s.provider.GetIntent(ctx, paymentIntentID)
	if err != nil {
		return 0, fmt.Errorf("[PaymentService] ошибка получения платёжного намерения: %w", err)
	}
	if intent.Status != model.PaymentIntentStatusSucceeded {
		return 0, fmt.Errorf("[PaymentService] платёж не завершён, статус %q: %w",
			intent.Status, ErrFailedPrecondition)
	}

	donation := &model.Donation{
		UserID:          userID,
		Amount:          intent.Amount,
		Currency:        intent.Currency,
		PaymentProvider: model.PaymentProviderStripe,
		PaymentID:       intent.ID,
	}

	donationID, err := s.donationRepository.InsertCompleted(ctx, db, donation)
	if err != nil {
		return 0, fmt.Errorf("[PaymentService] ошибка записи пожертвования: %w", err)
	}

	if err := s.grantFoldersForAmount(ctx, db, userID, intent.Amount); err != nil {
		return 0, err
	}

	return donationID, nil
}

// grantFoldersForAmount : выдаёт доступ ко всем папкам, порог которых покрыт
// суммой одного подтверждённого пожертвования. Пороги не накапливаются:
// два пожертвования по $50 не открывают папку с порогом $100.
func (s *PaymentService) grantFoldersForAmount(ctx context.Context, db *config.Database, userID int64, amount float64) error {
	folderIDs, err := s.folderRepository.IDsWithinAmount(ctx, db, amount)
	if err != nil {
		return fmt.Errorf("[PaymentService] ошибка подбора папок по порогу: %w", err)
	}

	for _, folderID := range folderIDs {
		if err := s.grantRepository.AddGrant(ctx, db, userID, folderID); err != nil {
			return fmt.Errorf("[PaymentService] ошибка выдачи доступа: %w", err)
		}
	}

	_ = s.cacheRepository.InvalidateUserGrants(ctx, userID)

	return nil
}
