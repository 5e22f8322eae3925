package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"donation-web-server/internal/model/requestresponse"
	"donation-web-server/internal/security"
	"donation-web-server/internal/service"
)

func decodeJSON(w http.ResponseWriter, r *http.Request, target interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(400)
		json.NewEncoder(w).Encode(requestresponse.ErrorResponse{
			Error: requestresponse.ErrorDetail{
				Code: 400,
				Text: "invalid request body",
			},
		})
		return err
	}
	return nil
}

func sendErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(requestresponse.ErrorResponse{
		Error: requestresponse.ErrorDetail{
			Code: statusCode,
			Text: message,
		},
	})
}

// handleServiceError переводит сентинельные ошибки сервисов в HTTP-статусы
func handleServiceError(w http.ResponseWriter, err error) {
	log.Println(err)
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		sendErrorResponse(w, http.StatusBadRequest, service.ErrInvalidArgument.Error())
	case errors.Is(err, service.ErrUnauthenticated):
		sendErrorResponse(w, http.StatusUnauthorized, service.ErrUnauthenticated.Error())
	case errors.Is(err, service.ErrPermissionDenied):
		sendErrorResponse(w, http.StatusForbidden, service.ErrPermissionDenied.Error())
	case errors.Is(err, service.ErrNotFound):
		sendErrorResponse(w, http.StatusNotFound, service.ErrNotFound.Error())
	case errors.Is(err, service.ErrAlreadyExists):
		sendErrorResponse(w, http.StatusConflict, service.ErrAlreadyExists.Error())
	case errors.Is(err, service.ErrFailedPrecondition):
		sendErrorResponse(w, http.StatusPreconditionFailed, service.ErrFailedPrecondition.Error())
	default:
		sendErrorResponse(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
	}
}

// currentClaims достаёт claims из контекста, при их отсутствии отвечает 401
func currentClaims(w http.ResponseWriter, r *http.Request) (*security.Claims, bool) {
	claims, ok := r.Context().Value(security.UserContextKey).(*security.Claims)
	if !ok || claims == nil {
		sendErrorResponse(w, http.StatusUnauthorized, "не авторизован")
		return nil, false
	}
	return claims, true
}
