package requestresponse

import "time"

// AdminListFilesRequest : постраничный список файлов, опционально по одной папке
type AdminListFilesRequest struct {
	FolderID *int64 `json:"folder_id,omitempty" example:"1"`
	Page     int    `json:"page,omitempty" example:"1"`
	Limit    int    `json:"limit,omitempty" example:"50"`
}

// AdminFileInfo : файл с именем папки
type AdminFileInfo struct {
	ID           int64     `json:"id" example:"10"`
	Name         string    `json:"name" example:"1/1724400000000_guide.pdf"`
	OriginalName string    `json:"original_name" example:"guide.pdf"`
	FileType     string    `json:"file_type" example:"application/pdf"`
	FileSize     int64     `json:"file_size" example:"204800"`
	CreatedAt    time.Time `json:"created_at"`
	FolderID     int64     `json:"folder_id" example:"1"`
	FolderName   string    `json:"folder_name" example:"general"`
}

// AdminListFilesResponse : файлы + общее количество для того же фильтра
type AdminListFilesResponse struct {
	Files []AdminFileInfo `json:"files"`
	Total int64           `json:"total" example:"120"`
	Page  int             `json:"page" example:"1"`
	Limit int             `json:"limit" example:"50"`
}

// AdminUploadFileRequest : метаданные загружаемого файла, байты идут напрямую в хранилище
type AdminUploadFileRequest struct {
	FolderID int64  `json:"folder_id" example:"1"`
	FileName string `json:"file_name" example:"guide.pdf"`
	FileType string `json:"file_type" example:"application/pdf"`
	FileSize int64  `json:"file_size" example:"204800"`
}

// AdminUploadFileResponse : pre-signed PUT URL (1 час) и id созданной записи
type AdminUploadFileResponse struct {
	UploadURL string `json:"upload_url" example:"https://s3.example.com/presigned..."`
	FileID    int64  `json:"file_id" example:"10"`
}

// AdminUpdateFileRequest : частичное обновление, nil-поля не меняются (COALESCE)
type AdminUpdateFileRequest struct {
	FileID       int64   `json:"file_id" example:"10"`
	OriginalName *string `json:"original_name,omitempty" example:"guide-v2.pdf"`
	FolderID     *int64  `json:"folder_id,omitempty" example:"2"`
}

// AdminDeleteFileRequest : удаление файла (запись в БД + объект в хранилище)
type AdminDeleteFileRequest struct {
	FileID int64 `json:"file_id" example:"10"`
}
