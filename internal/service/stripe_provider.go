package service

import (
	"context"
	"strconv"

	"donation-web-server/config"
	"donation-web-server/internal/model"
	"donation-web-server/internal/util"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

// StripeProvider : адаптер Stripe PaymentIntents API
type StripeProvider struct{}

func NewStripeProvider(cfg *config.StripeConfig) *StripeProvider {
	stripe.Key = cfg.SecretKey
	return &StripeProvider{}
}

// CreateIntent : создаёт PaymentIntent, id пользователя уходит в metadata
func (p *StripeProvider) CreateIntent(ctx context.Context, userID int64, amountCents int64, currency string) (*model.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("user_id", strconv.FormatInt(userID, 10))
	params.SetIdempotencyKey(uuid.New().String())

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, util.LogError("[StripeProvider] не удалось создать PaymentIntent", err)
	}

	return mapIntent(intent), nil
}

// GetIntent : актуальное состояние PaymentIntent по id
func (p *StripeProvider) GetIntent(ctx context.Context, paymentIntentID string) (*model.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	intent, err := paymentintent.Get(paymentIntentID, params)
	if err != nil {
		return nil, util.LogError("[StripeProvider] не удалось получить PaymentIntent", err)
	}

	return mapIntent(intent), nil
}

func mapIntent(intent *stripe.PaymentIntent) *model.PaymentIntent {
	return &model.PaymentIntent{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       string(intent.Status),
		Amount:       float64(intent.Amount) / 100, // Stripe хранит сумму в центах
		Currency:     string(intent.Currency),
	}
}
