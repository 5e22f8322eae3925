package requestresponse

import "time"

// ListFilesRequest : запрос списка папок и, опционально, файлов одной папки
type ListFilesRequest struct {
	FolderID *int64 `json:"folder_id,omitempty" example:"1"`
}

// FolderInfo : папка с отметкой о наличии доступа у вызывающего
type FolderInfo struct {
	ID                int64   `json:"id" example:"1"`
	Name              string  `json:"name" example:"general"`
	Description       string  `json:"description,omitempty" example:"Базовый доступ"`
	MinDonationAmount float64 `json:"min_donation_amount" example:"0"`
	HasAccess         bool    `json:"has_access" example:"true"`
}

// FileInfo : файл в списке для конечного пользователя
type FileInfo struct {
	ID           int64     `json:"id" example:"10"`
	Name         string    `json:"name" example:"1/1724400000000_guide.pdf"`
	OriginalName string    `json:"original_name" example:"guide.pdf"`
	FileType     string    `json:"file_type" example:"application/pdf"`
	FileSize     int64     `json:"file_size" example:"204800"`
	CreatedAt    time.Time `json:"created_at"`
}

// ListFilesResponse : все папки + файлы запрошенной папки (если доступ есть)
type ListFilesResponse struct {
	Folders []FolderInfo `json:"folders"`
	Files   []FileInfo   `json:"files"`
}

// DownloadFileRequest : запрос ссылки на скачивание
type DownloadFileRequest struct {
	FileID int64 `json:"file_id" example:"10"`
}

// DownloadFileResponse : pre-signed URL (1 час) и оригинальное имя файла
type DownloadFileResponse struct {
	DownloadURL string `json:"download_url" example:"https://s3.example.com/presigned..."`
	FileName    string `json:"file_name" example:"guide.pdf"`
}
