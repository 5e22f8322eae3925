package handler

import (
	"encoding/json"
	"net/http"

	"donation-web-server/internal/model"
	"donation-web-server/internal/model/requestresponse"
	"donation-web-server/internal/ports"
)

type AdminFilesHandler struct {
	ports.AdminFileService
}

func NewAdminFilesHandler(adminFileService ports.AdminFileService) *AdminFilesHandler {
	return &AdminFilesHandler{adminFileService}
}

// ListFiles godoc
// @Summary Постраничный список файлов
// @Description Файлы всех папок или одной папки (folder_id), с общим количеством
// @Tags Admin/Files
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен администратора" default(Bearer <access_token>)
// @Param body body requestresponse.AdminListFilesRequest true "Тело запроса"
// @Success 200 {object} requestresponse.AdminListFilesResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/admin/files [post]
func (h *AdminFilesHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.AdminListFilesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	files, total, err := h.AdminFileService.ListFiles(r.Context(), req.FolderID, req.Page, req.Limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	page, limit := req.Page, req.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = len(files)
	}

	resp := requestresponse.AdminListFilesResponse{
		Files: make([]requestresponse.AdminFileInfo, 0, len(files)),
		Total: total,
		Page:  page,
		Limit: limit,
	}
	for _, file := range files {
		resp.Files = append(resp.Files, toAdminFileInfo(&file))
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// UploadFile godoc
// @Summary Загрузка файла
// @Description Регистрирует файл и возвращает pre-signed PUT URL на 1 час, байты клиент загружает напрямую в хранилище
// @Tags Admin/Files
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен администратора" default(Bearer <access_token>)
// @Param body body requestresponse.AdminUploadFileRequest true "Тело запроса"
// @Success 200 {object} requestresponse.AdminUploadFileResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Не указано имя файла"
// @Failure 404 {object} requestresponse.ErrorResponse "Папка не найдена"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/admin/files/upload [post]
func (h *AdminFilesHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.AdminUploadFileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	uploadURL, fileID, err := h.AdminFileService.UploadFile(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := requestresponse.AdminUploadFileResponse{
		UploadURL: uploadURL,
		FileID:    fileID,
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// UpdateFile godoc
// @Summary Обновление файла
// @Description Частичное обновление имени и папки файла
// @Tags Admin/Files
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен администратора" default(Bearer <access_token>)
// @Param body body requestresponse.AdminUpdateFileRequest true "Тело запроса"
// @Success 200 {object} requestresponse.AdminFileInfo
// @Failure 404 {object} requestresponse.ErrorResponse "Файл или целевая папка не найдены"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/admin/files/update [put]
func (h *AdminFilesHandler) UpdateFile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.AdminUpdateFileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	file, err := h.AdminFileService.UpdateFile(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(toAdminFileInfo(file))
}

// DeleteFile godoc
// @Summary Удаление файла
// @Description Удаляет запись в БД, затем объект в хранилище. Недоступность хранилища не откатывает удаление записи.
// @Tags Admin/Files
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен администратора" default(Bearer <access_token>)
// @Param body body requestresponse.AdminDeleteFileRequest true "Тело запроса"
// @Success 200 {object} requestresponse.SuccessResponse
// @Failure 404 {object} requestresponse.ErrorResponse "Файл не найден"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/admin/files/delete [delete]
func (h *AdminFilesHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req requestresponse.AdminDeleteFileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	if err := h.AdminFileService.DeleteFile(r.Context(), req.FileID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(requestresponse.SuccessResponse{Success: true})
}

func toAdminFileInfo(file *model.FileWithFolder) requestresponse.AdminFileInfo {
	return requestresponse.AdminFileInfo{
		ID:           file.ID,
		Name:         file.Name,
		OriginalName: file.OriginalName,
		FileType:     file.FileType,
		FileSize:     file.FileSize,
		CreatedAt:    file.CreatedAt,
		FolderID:     file.FolderID,
		FolderName:   file.FolderName,
	}
}
