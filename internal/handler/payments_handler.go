package handler

import (
	"encoding/json"
	"net/http"

	"donation-web-server/internal/model/requestresponse"
	"donation-web-server/internal/ports"
)

type PaymentsHandler struct {
	ports.PaymentService
}

func NewPaymentsHandler(paymentService ports.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{paymentService}
}

// CreateIntent godoc
// @Summary Создание платёжного намерения
// @Description Создаёт Stripe PaymentIntent на сумму от 5 до 1000 и возвращает client_secret для оплаты на клиенте
// @Tags Payments
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Param body body requestresponse.CreatePaymentIntentRequest true "Тело запроса"
// @Success 200 {object} requestresponse.CreatePaymentIntentResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Сумма вне диапазона [5, 1000]"
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/payments/create-intent [post]
func (h *PaymentsHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	claims, ok := currentClaims(w, r)
	if !ok {
		return
	}

	var req requestresponse.CreatePaymentIntentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	intent, err := h.PaymentService.CreateIntent(r.Context(), claims.UserID, req.Amount, req.Currency)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := requestresponse.CreatePaymentIntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// ConfirmDonation godoc
// @Summary Подтверждение пожертвования
// @Description Проверяет оплату intent у Stripe, записывает пожертвование и выдаёт доступы к папкам по порогам. Повторное подтверждение идемпотентно.
// @Tags Payments
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Param body body requestresponse.ConfirmDonationRequest true "Тело запроса"
// @Success 200 {object} requestresponse.ConfirmDonationResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 412 {object} requestresponse.ErrorResponse "Платёж ещё не завершён"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/payments/confirm [post]
func (h *PaymentsHandler) ConfirmDonation(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	claims, ok := currentClaims(w, r)
	if !ok {
		return
	}

	var req requestresponse.ConfirmDonationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	donationID, err := h.PaymentService.ConfirmDonation(r.Context(), claims.UserID, req.PaymentIntentID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := requestresponse.ConfirmDonationResponse{
		Success:    true,
		DonationID: donationID,
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}
