package model

import "time"

// FolderGrant : запись в леджере доступов, пара (user_id, folder_id) уникальна
type FolderGrant struct {
	UserID    int64     `db:"user_id" json:"user_id"`
	FolderID  int64     `db:"folder_id" json:"folder_id"`
	GrantedAt time.Time `db:"granted_at" json:"granted_at"`
}

// UserFolderGrant : доступ пользователя вместе с именем папки (история для админа)
type UserFolderGrant struct {
	FolderID  int64     `db:"folder_id" json:"id"`
	Name      string    `db:"name" json:"name"`
	GrantedAt time.Time `db:"granted_at" json:"granted_at"`
}
