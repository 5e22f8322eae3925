package model

import "time"

type File struct {
	ID           int64     `db:"id" json:"id"`
	FolderID     int64     `db:"folder_id" json:"folder_id"`
	Name         string    `db:"name" json:"name"`
	OriginalName string    `db:"original_name" json:"original_name"`
	FileType     string    `db:"file_type" json:"file_type"`
	FileSize     int64     `db:"file_size" json:"file_size"`
	StoragePath  string    `db:"storage_path" json:"storage_path"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// FileWithFolder : файл + имя папки (join для админ-списков)
type FileWithFolder struct {
	File
	FolderName string `db:"folder_name" json:"folder_name"`
}
