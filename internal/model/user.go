package model

import "time"

type User struct {
	ID           int64     `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FirstName    string    `db:"first_name" json:"first_name"`
	LastName     string    `db:"last_name" json:"last_name"`
	Language     string    `db:"language" json:"language"`
	IsAdmin      bool      `db:"is_admin" json:"is_admin"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// UserWithDonations : строка для админ-списков, пользователь + агрегаты по завершённым пожертвованиям
type UserWithDonations struct {
	User
	TotalDonated  float64    `db:"total_donated" json:"total_donated"`
	DonationCount int        `db:"donation_count" json:"donation_count"`
	LastDonation  *time.Time `db:"last_donation" json:"last_donation,omitempty"`
}
