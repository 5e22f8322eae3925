package model

import "time"

// DefaultFolderMaxID : папки с id <= 2 (general и premium) являются системными и не удаляются
const DefaultFolderMaxID int64 = 2

type Folder struct {
	ID                int64     `db:"id" json:"id"`
	Name              string    `db:"name" json:"name"`
	Description       string    `db:"description" json:"description"`
	MinDonationAmount float64   `db:"min_donation_amount" json:"min_donation_amount"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// FolderStats : папка + количество файлов и выданных доступов (для админ-панели)
type FolderStats struct {
	Folder
	FileCount int `db:"file_count" json:"file_count"`
	UserCount int `db:"user_count" json:"user_count"`
}

// FolderAccess : папка глазами конкретного пользователя
type FolderAccess struct {
	Folder
	HasAccess bool `db:"has_access" json:"has_access"`
}

// FolderUser : пользователь, которому выдан доступ к папке
type FolderUser struct {
	ID        int64     `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	FirstName string    `db:"first_name" json:"first_name"`
	LastName  string    `db:"last_name" json:"last_name"`
	GrantedAt time.Time `db:"granted_at" json:"granted_at"`
}
