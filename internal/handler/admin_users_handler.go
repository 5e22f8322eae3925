package handler

import (
	"encoding/json"
	"net/http"

	"donation-web-server/internal/model"
	"donation-web-server/internal/model/requestresponse"
	"donation-web-server/internal/ports"
)

type AdminUsersHandler struct {
	ports.AdminUserService
}

func NewAdminUsersHandler(adminUserService ports.AdminUserService) *AdminUsersHandler {
	return &AdminUsersHandler{adminUserService}
}

// ListUsers godoc
// @Summary Постраничный список пользователей
// @Description Пользователи с агрегатами по завершённым пожертвованиям, сначала новые
// @Tags Admin/Users
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен администратора" default(Bearer <access_token>)
// @Param body body requestresponse.AdminListUsersRequest true "Тело запроса"
// @Success 200 {object} requestresponse.AdminListUsersResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/admin/users [post]
func (h *AdminUsersHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.AdminListUsersRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	users, total, err := h.AdminUserService.ListUsers(r.Context(), req.Page, req.Limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	page, limit := req.Page, req.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = len(users)
	}

	resp := requestresponse.AdminListUsersResponse{
		Users: make([]requestresponse.AdminUserInfo, 0, len(users)),
		Total: total,
		Page:  page,
		Limit: limit,
	}
	for _, user := range users {
		resp.Users = append(resp.Users, toAdminUserInfo(user))
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// GetUserDetails godoc
// @Summary Детали пользователя
// @Description Пользователь с агрегатами, историей пожертвований и доступами к папкам
// @Tags Admin/Users
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен администратора" default(Bearer <access_token>)
// @Param body body requestresponse.AdminUserDetailsRequest true "Тело запроса"
// @Success 200 {object} requestresponse.AdminUserDetailsResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/admin/users/details [post]
func (h *AdminUsersHandler) GetUserDetails(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.AdminUserDetailsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	user, donations, grants, err := h.AdminUserService.GetUserDetails(r.Context(), req.UserID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := requestresponse.AdminUserDetailsResponse{
		User:         toAdminUserInfo(user),
		Donations:    make([]requestresponse.DonationInfo, 0, len(donations)),
		FolderAccess: make([]requestresponse.FolderAccessInfo, 0, len(grants)),
	}
	for _, donation := range donations {
		resp.Donations = append(resp.Donations, requestresponse.DonationInfo{
			ID:              donation.ID,
			Amount:          donation.Amount,
			Currency:        donation.Currency,
			PaymentProvider: donation.PaymentProvider,
			Status:          donation.Status,
			CreatedAt:       donation.CreatedAt,
		})
	}
	for _, grant := range grants {
		resp.FolderAccess = append(resp.FolderAccess, requestresponse.FolderAccessInfo{
			ID:        grant.FolderID,
			Name:      grant.Name,
			GrantedAt: grant.GrantedAt,
		})
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// CreateUser godoc
// @Summary Создание пользователя
// @Description Создаёт пользователя, опционально сразу администратором
// @Tags Admin/Users
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен администратора" default(Bearer <access_token>)
// @Param body body requestresponse.AdminCreateUserRequest true "Тело запроса"
// @Success 200 {object} requestresponse.AdminUserInfo
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный email или короткий пароль"
// @Failure 409 {object} requestresponse.ErrorResponse "Email уже зарегистрирован"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/admin/users/create [post]
func (h *AdminUsersHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.AdminCreateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	user, err := h.AdminUserService.CreateUser(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(toCreatedUserInfo(user))
}

// UpdateUser godoc
// @Summary Обновление пользователя
// @Description Частичное обновление: отсутствующие поля не меняются, пароль перехэшируется
// @Tags Admin/Users
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен администратора" default(Bearer <access_token>)
// @Param body body requestresponse.AdminUpdateUserRequest true "Тело запроса"
// @Success 200 {object} requestresponse.AdminUserInfo
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Пользователь не найден"
// @Failure 409 {object} requestresponse.ErrorResponse "Email уже занят"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/admin/users/update [put]
func (h *AdminUsersHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.AdminUpdateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	user, err := h.AdminUserService.UpdateUser(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(toCreatedUserInfo(user))
}

// DeleteUser godoc
// @Summary Удаление пользователя
// @Description Удаляет пользователя с пожертвованиями и доступами. Администраторов удалять нельзя.
// @Tags Admin/Users
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен администратора" default(Bearer <access_token>)
// @Param body body requestresponse.AdminDeleteUserRequest true "Тело запроса"
// @Success 200 {object} requestresponse.SuccessResponse
// @Failure 403 {object} requestresponse.ErrorResponse "Администратор защищён от удаления"
// @Failure 404 {object} requestresponse.ErrorResponse "Пользователь не найден"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/admin/users/delete [delete]
func (h *AdminUsersHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.AdminDeleteUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	if err := h.AdminUserService.DeleteUser(r.Context(), req.UserID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.SuccessResponse{Success: true})
}

// GrantAccess godoc
// @Summary Выдача доступа к папке
// @Description Выдаёт пользователю доступ к папке вручную, повторная выдача — no-op
// @Tags Admin/Users
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен администратора" default(Bearer <access_token>)
// @Param body body requestresponse.GrantAccessRequest true "Тело запроса"
// @Success 200 {object} requestresponse.SuccessResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Пользователь или папка не найдены"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/admin/users/grant-access [post]
func (h *AdminUsersHandler) GrantAccess(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.GrantAccessRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	if err := h.AdminUserService.GrantAccess(r.Context(), req.UserID, req.FolderID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.SuccessResponse{Success: true})
}

// RevokeAccess godoc
// @Summary Отзыв доступа к папке
// @Description Отзывает доступ пользователя к папке
// @Tags Admin/Users
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен администратора" default(Bearer <access_token>)
// @Param body body requestresponse.RevokeAccessRequest true "Тело запроса"
// @Success 200 {object} requestresponse.SuccessResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Пользователь или папка не найдены"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/admin/users/revoke-access [delete]
func (h *AdminUsersHandler) RevokeAccess(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.RevokeAccessRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	if err := h.AdminUserService.RevokeAccess(r.Context(), req.UserID, req.FolderID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.SuccessResponse{Success: true})
}

func toAdminUserInfo(user *model.UserWithDonations) requestresponse.AdminUserInfo {
	return requestresponse.AdminUserInfo{
		ID:            user.ID,
		Email:         user.Email,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Language:      user.Language,
		IsAdmin:       user.IsAdmin,
		TotalDonated:  user.TotalDonated,
		DonationCount: user.DonationCount,
		CreatedAt:     user.CreatedAt,
		LastDonation:  user.LastDonation,
	}
}

// toCreatedUserInfo : только что созданный или обновлённый пользователь, агрегаты ещё не считались
func toCreatedUserInfo(user *model.User) requestresponse.AdminUserInfo {
	return requestresponse.AdminUserInfo{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Language:  user.Language,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
	}
}
