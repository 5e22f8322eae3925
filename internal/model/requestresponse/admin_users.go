package requestresponse

import "time"

// AdminListUsersRequest : постраничный список пользователей
type AdminListUsersRequest struct {
	Page  int `json:"page,omitempty" example:"1"`
	Limit int `json:"limit,omitempty" example:"20"`
}

// AdminUserInfo : пользователь + агрегаты по завершённым пожертвованиям
type AdminUserInfo struct {
	ID            int64      `json:"id" example:"5"`
	Email         string     `json:"email" example:"user@example.com"`
	FirstName     string     `json:"first_name,omitempty" example:"Ana"`
	LastName      string     `json:"last_name,omitempty" example:"García"`
	Language      string     `json:"language" example:"es"`
	IsAdmin       bool       `json:"is_admin" example:"false"`
	TotalDonated  float64    `json:"total_donated" example:"150"`
	DonationCount int        `json:"donation_count" example:"3"`
	CreatedAt     time.Time  `json:"created_at"`
	LastDonation  *time.Time `json:"last_donation,omitempty"`
}

// AdminListUsersResponse : пользователи + общее количество
type AdminListUsersResponse struct {
	Users []AdminUserInfo `json:"users"`
	Total int64           `json:"total" example:"42"`
	Page  int             `json:"page" example:"1"`
	Limit int             `json:"limit" example:"20"`
}

// AdminUserDetailsRequest : запрос деталей одного пользователя
type AdminUserDetailsRequest struct {
	UserID int64 `json:"user_id" example:"5"`
}

// DonationInfo : запись донат-леджера
type DonationInfo struct {
	ID              int64     `json:"id" example:"7"`
	Amount          float64   `json:"amount" example:"50"`
	Currency        string    `json:"currency" example:"USD"`
	PaymentProvider string    `json:"payment_provider" example:"stripe"`
	Status          string    `json:"status" example:"completed"`
	CreatedAt       time.Time `json:"created_at"`
}

// FolderAccessInfo : выданный доступ к папке
type FolderAccessInfo struct {
	ID        int64     `json:"id" example:"1"`
	Name      string    `json:"name" example:"general"`
	GrantedAt time.Time `json:"granted_at"`
}

// AdminUserDetailsResponse : пользователь + история пожертвований и доступов
type AdminUserDetailsResponse struct {
	User         AdminUserInfo      `json:"user"`
	Donations    []DonationInfo     `json:"donations"`
	FolderAccess []FolderAccessInfo `json:"folder_access"`
}

// AdminCreateUserRequest : создание пользователя администратором
type AdminCreateUserRequest struct {
	Email     string `json:"email" example:"new@example.com"`
	Password  string `json:"password" example:"P@ssw0rd"`
	FirstName string `json:"first_name,omitempty" example:"Ana"`
	LastName  string `json:"last_name,omitempty" example:"García"`
	Language  string `json:"language,omitempty" example:"es"`
	IsAdmin   bool   `json:"is_admin,omitempty" example:"false"`
}

// AdminUpdateUserRequest : частичное обновление, nil-поля не меняются
type AdminUpdateUserRequest struct {
	UserID    int64   `json:"user_id" example:"5"`
	Email     *string `json:"email,omitempty" example:"new@example.com"`
	Password  *string `json:"password,omitempty" example:"N3wP@ssw0rd"`
	FirstName *string `json:"first_name,omitempty" example:"Ana"`
	LastName  *string `json:"last_name,omitempty" example:"García"`
	Language  *string `json:"language,omitempty" example:"es"`
	IsAdmin   *bool   `json:"is_admin,omitempty" example:"false"`
}

// AdminDeleteUserRequest : удаление пользователя (админы защищены)
type AdminDeleteUserRequest struct {
	UserID int64 `json:"user_id" example:"5"`
}

// GrantAccessRequest : явная выдача доступа к папке
type GrantAccessRequest struct {
	UserID   int64 `json:"user_id" example:"5"`
	FolderID int64 `json:"folder_id" example:"2"`
}

// RevokeAccessRequest : отзыв доступа к папке
type RevokeAccessRequest struct {
	UserID   int64 `json:"user_id" example:"5"`
	FolderID int64 `json:"folder_id" example:"2"`
}
