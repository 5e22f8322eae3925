package model

import "time"

// DonationStatusCompleted : единственный терминальный статус, записывается только после
// подтверждения провайдером
const DonationStatusCompleted = "completed"

// PaymentProviderStripe : имя провайдера в донат-леджере
const PaymentProviderStripe = "stripe"

type Donation struct {
	ID              int64     `db:"id" json:"id"`
	UserID          int64     `db:"user_id" json:"user_id"`
	Amount          float64   `db:"amount" json:"amount"`
	Currency        string    `db:"currency" json:"currency"`
	PaymentProvider string    `db:"payment_provider" json:"payment_provider"`
	PaymentID       string    `db:"payment_id" json:"payment_id"`
	Status          string    `db:"status" json:"status"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// PaymentIntentStatusSucceeded : статус intent у провайдера, при котором пожертвование
// можно записать в леджер
const PaymentIntentStatusSucceeded = "succeeded"

// PaymentIntent : ответ платёжного провайдера, не хранится в БД
type PaymentIntent struct {
	ID           string
	ClientSecret string
	Status       string
	// Amount : подтверждённая сумма в валютных единицах (не в центах)
	Amount   float64
	Currency string
}
