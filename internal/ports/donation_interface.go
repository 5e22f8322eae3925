package ports

import (
	"context"

	"donation-web-server/internal/model"

	"github.com/jmoiron/sqlx"
)

type DonationRepository interface {
	InsertCompleted(ctx context.Context, exec sqlx.ExtContext, donation *model.Donation) (int64, error)
	SumCompletedByUser(ctx context.Context, exec sqlx.ExtContext, userID int64) (float64, error)
	ListByUser(ctx context.Context, exec sqlx.ExtContext, userID int64) ([]model.Donation, error)
}

// PaymentProvider : внешний платёжный шлюз, суммы передаются в центах
type PaymentProvider interface {
	CreateIntent(ctx context.Context, userID int64, amountCents int64, currency string) (*model.PaymentIntent, error)
	GetIntent(ctx context.Context, paymentIntentID string) (*model.PaymentIntent, error)
}

type PaymentService interface {
	CreateIntent(ctx context.Context, userID int64, amount float64, currency string) (*model.PaymentIntent, error)
	ConfirmDonation(ctx context.Context, userID int64, paymentIntentID string) (int64, error)
}
