package handler

import (
	"encoding/json"
	"net/http"

	"donation-web-server/internal/model"
	"donation-web-server/internal/model/requestresponse"
	"donation-web-server/internal/ports"
)

type AuthHandler struct {
	ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService}
}

// Register godoc
// @Summary Регистрация нового пользователя
// @Description Создаёт пользователя по email и паролю (минимум 6 символов). Токен не выдаётся, вход выполняется отдельно.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RegisterRequest true "Тело запроса"
// @Success 200 {object} requestresponse.RegisterResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный email или короткий пароль"
// @Failure 409 {object} requestresponse.ErrorResponse "Email уже зарегистрирован"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	user, err := h.AuthService.Register(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := requestresponse.RegisterResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Language:  user.Language,
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// Login godoc
// @Summary Аутентификация пользователя
// @Description Получение JWT по email и паролю, токен действует 7 дней
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Тело запроса"
// @Success 200 {object} requestresponse.LoginResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON или пустые поля"
// @Failure 401 {object} requestresponse.ErrorResponse "Неверный email или пароль"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	if req.Email == "" || req.Password == "" {
		sendErrorResponse(w, 400, "email и password обязательны")
		return
	}

	token, user, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := requestresponse.LoginResponse{
		Token: token,
		User: requestresponse.LoginUser{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Language:  user.Language,
			IsAdmin:   user.IsAdmin,
		},
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// GetProfile godoc
// @Summary Профиль текущего пользователя
// @Description Возвращает профиль с суммой завершённых пожертвований
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.UserProfile
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/auth/profile [get]
func (h *AuthHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	claims, ok := currentClaims(w, r)
	if !ok {
		return
	}

	user, total, err := h.AuthService.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(toUserProfile(user, total))
}

// UpdateProfile godoc
// @Summary Обновление профиля
// @Description Имя и язык перезаписываются безусловно. Для смены пароля нужны current_password и new_password.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Param body body requestresponse.UpdateProfileRequest true "Тело запроса"
// @Success 200 {object} requestresponse.UserProfile
// @Failure 400 {object} requestresponse.ErrorResponse "Неверный текущий пароль или короткий новый"
// @Failure 401 {object} requestresponse.ErrorResponse "Нет или невалидный токен"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/auth/profile [put]
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	claims, ok := currentClaims(w, r)
	if !ok {
		return
	}

	var req requestresponse.UpdateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	user, total, err := h.AuthService.UpdateProfile(r.Context(), claims.UserID, &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(toUserProfile(user, total))
}

func toUserProfile(user *model.User, totalDonated float64) requestresponse.UserProfile {
	return requestresponse.UserProfile{
		ID:           user.ID,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Language:     user.Language,
		IsAdmin:      user.IsAdmin,
		TotalDonated: totalDonated,
	}
}
