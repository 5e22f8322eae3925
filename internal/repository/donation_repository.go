package repository

import (
	"context"
	"database/sql"
	"errors"

	"donation-web-server/config"
	"donation-web-server/internal/model"
	"donation-web-server/internal/util"

	"github.com/jmoiron/sqlx"
)

type DonationRepository struct {
	*config.Database
}

func NewDonationRepository(database *config.Database) *DonationRepository {
	return &DonationRepository{database}
}

// InsertCompleted : записывает завершённое пожертвование.
// Пара (payment_provider, payment_id) уникальна: повторное подтверждение того же intent
// не создаёт дубликата, возвращается id существующей записи.
func (r *DonationRepository) InsertCompleted(ctx context.Context, exec sqlx.ExtContext, donation *model.Donation) (int64, error) {
	query := `
		INSERT INTO donations (user_id, amount, currency, payment_provider, payment_id, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (payment_provider, payment_id) DO NOTHING
		RETURNING id
	`

	var id int64
	err := sqlx.GetContext(ctx, exec, &id, query,
		donation.UserID, donation.Amount, donation.Currency,
		donation.PaymentProvider, donation.PaymentID, model.DonationStatusCompleted)

	if errors.Is(err, sql.ErrNoRows) {
		existing := `SELECT id FROM donations WHERE payment_provider = $1 AND payment_id = $2`
		if err := sqlx.GetContext(ctx, exec, &id, existing, donation.PaymentProvider, donation.PaymentID); err != nil {
			return 0, util.LogError("[DonationRepo] не удалось найти существующее пожертвование", err)
		}
		return id, nil
	}
	if err != nil {
		return 0, util.LogError("[DonationRepo] не удалось записать пожертвование", err)
	}

	return id, nil
}

// SumCompletedByUser : сумма завершённых пожертвований пользователя за всё время
func (r *DonationRepository) SumCompletedByUser(ctx context.Context, exec sqlx.ExtContext, userID int64) (float64, error) {
	var total float64
	query := `SELECT COALESCE(SUM(amount), 0) FROM donations WHERE user_id = $1 AND status = $2`
	err := sqlx.GetContext(ctx, exec, &total, query, userID, model.DonationStatusCompleted)
	if err != nil {
		return 0, util.LogError("[DonationRepo] не удалось посчитать сумму пожертвований", err)
	}
	return total, nil
}

// ListByUser : история пожертвований пользователя, сначала новые
func (r *DonationRepository) ListByUser(ctx context.Context, exec sqlx.ExtContext, userID int64) ([]model.Donation, error) {
	query := `
		SELECT id, user_id, amount, currency, payment_provider, payment_id, status, created_at
		FROM donations
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	donations := []model.Donation{}
	err := sqlx.SelectContext(ctx, exec, &donations, query, userID)
	if err != nil {
		return nil, util.LogError("[DonationRepo] не удалось получить историю пожертвований", err)
	}
	return donations, nil
}
