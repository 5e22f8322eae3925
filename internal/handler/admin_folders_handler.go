package handler

import (
	"encoding/json"
	"net/http"

	"donation-web-server/internal/model"
	"donation-web-server/internal/model/requestresponse"
	"donation-web-server/internal/ports"
)

type AdminFoldersHandler struct {
	ports.AdminFolderService
}

func NewAdminFoldersHandler(adminFolderService ports.AdminFolderService) *AdminFoldersHandler {
	return &AdminFoldersHandler{adminFolderService}
}

// ListFolders godoc
// @Summary Список папок со статистикой
// @Description Все папки с количеством файлов и выданных доступов
// @Tags Admin/Folders
// @Produce json
// @Param Authorization header string true "Bearer токен администратора" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.AdminListFoldersResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/admin/folders [post]
func (h *AdminFoldersHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	folders, err := h.AdminFolderService.ListFolders(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := requestresponse.AdminListFoldersResponse{
		Folders: make([]requestresponse.AdminFolderInfo, 0, len(folders)),
	}
	for _, folder := range folders {
		resp.Folders = append(resp.Folders, toAdminFolderInfo(&folder))
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// CreateFolder godoc
// @Summary Создание папки
// @Description Создаёт папку с порогом пожертвования, имя должно быть уникальным
// @Tags Admin/Folders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен администратора" default(Bearer <access_token>)
// @Param body body requestresponse.AdminCreateFolderRequest true "Тело запроса"
// @Success 200 {object} requestresponse.AdminFolderInfo
// @Failure 400 {object} requestresponse.ErrorResponse "Пустое имя или отрицательный порог"
// @Failure 409 {object} requestresponse.ErrorResponse "Имя уже занято"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/admin/folders/create [post]
func (h *AdminFoldersHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.AdminCreateFolderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	folder, err := h.AdminFolderService.CreateFolder(r.Context(), req.Name, req.Description, req.MinDonationAmount)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(toAdminFolderInfo(folder))
}

// UpdateFolder godoc
// @Summary Обновление папки
// @Description Частичное обновление: отсутствующие поля не меняются
// @Tags Admin/Folders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен администратора" default(Bearer <access_token>)
// @Param body body requestresponse.AdminUpdateFolderRequest true "Тело запроса"
// @Success 200 {object} requestresponse.AdminFolderInfo
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Папка не найдена"
// @Failure 409 {object} requestresponse.ErrorResponse "Имя уже занято"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/admin/folders/update [put]
func (h *AdminFoldersHandler) UpdateFolder(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.AdminUpdateFolderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	folder, err := h.AdminFolderService.UpdateFolder(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(toAdminFolderInfo(folder))
}

// DeleteFolder godoc
// @Summary Удаление папки
// @Description Удаляет папку вместе с файлами и доступами. Базовые папки (id 1 и 2) защищены.
// @Tags Admin/Folders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен администратора" default(Bearer <access_token>)
// @Param body body requestresponse.AdminDeleteFolderRequest true "Тело запроса"
// @Success 200 {object} requestresponse.SuccessResponse
// @Failure 403 {object} requestresponse.ErrorResponse "Базовая папка защищена от удаления"
// @Failure 404 {object} requestresponse.ErrorResponse "Папка не найдена"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/admin/folders/delete [delete]
func (h *AdminFoldersHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.AdminDeleteFolderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	if err := h.AdminFolderService.DeleteFolder(r.Context(), req.FolderID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.SuccessResponse{Success: true})
}

// GetFolderUsers godoc
// @Summary Пользователи с доступом к папке
// @Description Папка и пользователи, отсортированные по дате выдачи доступа
// @Tags Admin/Folders
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен администратора" default(Bearer <access_token>)
// @Param body body requestresponse.AdminFolderUsersRequest true "Тело запроса"
// @Success 200 {object} requestresponse.AdminFolderUsersResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Папка не найдена"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/admin/folders/users [post]
func (h *AdminFoldersHandler) GetFolderUsers(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.AdminFolderUsersRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	folder, users, err := h.AdminFolderService.GetFolderUsers(r.Context(), req.FolderID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := requestresponse.AdminFolderUsersResponse{
		Users: make([]requestresponse.FolderUserInfo, 0, len(users)),
	}
	resp.Folder.ID = folder.ID
	resp.Folder.Name = folder.Name
	resp.Folder.Description = folder.Description
	for _, user := range users {
		resp.Users = append(resp.Users, requestresponse.FolderUserInfo{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			GrantedAt: user.GrantedAt,
		})
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

func toAdminFolderInfo(folder *model.FolderStats) requestresponse.AdminFolderInfo {
	return requestresponse.AdminFolderInfo{
		ID:                folder.ID,
		Name:              folder.Name,
		Description:       folder.Description,
		MinDonationAmount: folder.MinDonationAmount,
		CreatedAt:         folder.CreatedAt,
		UpdatedAt:         folder.UpdatedAt,
		FileCount:         folder.FileCount,
		UserCount:         folder.UserCount,
	}
}
