package handler

import (
	"encoding/json"
	"net/http"

	"donation-web-server/internal/model/requestresponse"
	"donation-web-server/internal/ports"
)

type FilesHandler struct {
	ports.AccessService
}

func NewFilesHandler(accessService ports.AccessService) *FilesHandler {
	return &FilesHandler{accessService}
}

// ListFiles godoc
// @Summary Каталог папок и файлы выбранной папки
// @Description Возвращает все папки с флагом доступа. При указании folder_id дополнительно возвращает файлы папки, если доступ есть.
// @Tags Files
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Param body body requestresponse.ListFilesRequest true "Тело запроса"
// @Success 200 {object} requestresponse.ListFilesResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse "Нет доступа к папке"
// @Failure 404 {object} requestresponse.ErrorResponse "Папка не найдена"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/files [post]
func (h *FilesHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	claims, ok := currentClaims(w, r)
	if !ok {
		return
	}

	var req requestresponse.ListFilesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	folders, files, err := h.AccessService.ListFiles(r.Context(), claims.UserID, req.FolderID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := requestresponse.ListFilesResponse{
		Folders: make([]requestresponse.FolderInfo, 0, len(folders)),
		Files:   make([]requestresponse.FileInfo, 0, len(files)),
	}
	for _, folder := range folders {
		resp.Folders = append(resp.Folders, requestresponse.FolderInfo{
			ID:                folder.ID,
			Name:              folder.Name,
			Description:       folder.Description,
			MinDonationAmount: folder.MinDonationAmount,
			HasAccess:         folder.HasAccess,
		})
	}
	for _, file := range files {
		resp.Files = append(resp.Files, requestresponse.FileInfo{
			ID:           file.ID,
			Name:         file.Name,
			OriginalName: file.OriginalName,
			FileType:     file.FileType,
			FileSize:     file.FileSize,
			CreatedAt:    file.CreatedAt,
		})
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}

// DownloadFile godoc
// @Summary Ссылка на скачивание файла
// @Description Возвращает pre-signed URL на 1 час, если у пользователя есть доступ к папке файла
// @Tags Files
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Param body body requestresponse.DownloadFileRequest true "Тело запроса"
// @Success 200 {object} requestresponse.DownloadFileResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse "Нет доступа к папке файла"
// @Failure 404 {object} requestresponse.ErrorResponse "Файл не найден"
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/files/download [post]
func (h *FilesHandler) DownloadFile(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	claims, ok := currentClaims(w, r)
	if !ok {
		return
	}

	var req requestresponse.DownloadFileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	if req.FileID == 0 {
		sendErrorResponse(w, 400, "file_id обязателен")
		return
	}

	url, fileName, err := h.AccessService.DownloadFile(r.Context(), claims.UserID, req.FileID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	resp := requestresponse.DownloadFileResponse{
		DownloadURL: url,
		FileName:    fileName,
	}

	w.WriteHeader(200)
	json.NewEncoder(w).Encode(resp)
}
