package requestresponse

import "time"

// AdminFolderInfo : папка со статистикой для админ-панели
type AdminFolderInfo struct {
	ID                int64     `json:"id" example:"3"`
	Name              string    `json:"name" example:"tutorials"`
	Description       string    `json:"description,omitempty" example:"Обучающие материалы"`
	MinDonationAmount float64   `json:"min_donation_amount" example:"25"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	FileCount         int       `json:"file_count" example:"12"`
	UserCount         int       `json:"user_count" example:"4"`
}

// AdminListFoldersResponse : все папки со статистикой
type AdminListFoldersResponse struct {
	Folders []AdminFolderInfo `json:"folders"`
}

// AdminCreateFolderRequest : создание папки
type AdminCreateFolderRequest struct {
	Name              string  `json:"name" example:"tutorials"`
	Description       string  `json:"description,omitempty" example:"Обучающие материалы"`
	MinDonationAmount float64 `json:"min_donation_amount" example:"25"`
}

// AdminUpdateFolderRequest : частичное обновление, nil-поля не меняются (COALESCE)
type AdminUpdateFolderRequest struct {
	FolderID          int64    `json:"folder_id" example:"3"`
	Name              *string  `json:"name,omitempty" example:"tutorials"`
	Description       *string  `json:"description,omitempty" example:"Обучающие материалы"`
	MinDonationAmount *float64 `json:"min_donation_amount,omitempty" example:"25"`
}

// AdminDeleteFolderRequest : удаление папки (id 1 и 2 защищены)
type AdminDeleteFolderRequest struct {
	FolderID int64 `json:"folder_id" example:"3"`
}

// AdminFolderUsersRequest : запрос списка пользователей папки
type AdminFolderUsersRequest struct {
	FolderID int64 `json:"folder_id" example:"2"`
}

// FolderUserInfo : пользователь с выданным доступом
type FolderUserInfo struct {
	ID        int64     `json:"id" example:"5"`
	Email     string    `json:"email" example:"user@example.com"`
	FirstName string    `json:"first_name,omitempty" example:"Ana"`
	LastName  string    `json:"last_name,omitempty" example:"García"`
	GrantedAt time.Time `json:"granted_at"`
}

// AdminFolderUsersResponse : папка + пользователи, отсортированные по дате выдачи доступа
type AdminFolderUsersResponse struct {
	Folder struct {
		ID          int64  `json:"id" example:"2"`
		Name        string `json:"name" example:"premium"`
		Description string `json:"description,omitempty"`
	} `json:"folder"`
	Users []FolderUserInfo `json:"users"`
}
