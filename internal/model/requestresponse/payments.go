package requestresponse

// CreatePaymentIntentRequest : сумма в валютных единицах, допустимый диапазон [5, 1000]
type CreatePaymentIntentRequest struct {
	Amount   float64 `json:"amount" example:"50"`
	Currency string  `json:"currency" example:"USD"`
}

// CreatePaymentIntentResponse : данные intent от провайдера
type CreatePaymentIntentResponse struct {
	ClientSecret    string `json:"client_secret" example:"pi_3Nq..._secret_abc"`
	PaymentIntentID string `json:"payment_intent_id" example:"pi_3Nq..."`
}

// ConfirmDonationRequest : подтверждение пожертвования по id intent
type ConfirmDonationRequest struct {
	PaymentIntentID string `json:"payment_intent_id" example:"pi_3Nq..."`
}

// ConfirmDonationResponse : id записи в донат-леджере
type ConfirmDonationResponse struct {
	Success    bool  `json:"success" example:"true"`
	DonationID int64 `json:"donation_id" example:"7"`
}
