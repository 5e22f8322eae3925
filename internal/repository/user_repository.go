package repository

import (
	"context"
	"database/sql"
	"errors"

	"donation-web-server/config"
	"donation-web-server/internal/model"
	"donation-web-server/internal/util"

	"github.com/jmoiron/sqlx"
)

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// CreateUser : сохраняет нового пользователя
func (r *UserRepository) CreateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (email, password_hash, first_name, last_name, language, is_admin)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id, email, password_hash, first_name, last_name, language, is_admin, created_at, updated_at
	`

	createdUser := &model.User{}
	err := sqlx.GetContext(ctx, exec, createdUser, query,
		user.Email, user.PasswordHash, user.FirstName, user.LastName, user.Language, user.IsAdmin)
	if err != nil {
		return nil, util.LogError("[UserRepo] ошибка вставки данных в БД", err)
	}

	return createdUser, nil
}

// FindByID : ищет пользователя по id, nil если не найден
func (r *UserRepository) FindByID(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.User, error) {
	query := `
	SELECT id, email, password_hash, first_name, last_name, language, is_admin, created_at, updated_at
	FROM users WHERE id = $1
	`
	var user model.User
	err := sqlx.GetContext(ctx, exec, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, util.LogError("[UserRepo] не удалось найти пользователя в БД", err)
	}
	return &user, nil
}

// FindByEmail : ищет пользователя по email, nil если не найден
func (r *UserRepository) FindByEmail(ctx context.Context, exec sqlx.ExtContext, email string) (*model.User, error) {
	query := `
	SELECT id, email, password_hash, first_name, last_name, language, is_admin, created_at, updated_at
	FROM users WHERE email = $1
	`
	var user model.User
	err := sqlx.GetContext(ctx, exec, &user, query, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, util.LogError("[UserRepo] не удалось найти пользователя по email", err)
	}
	return &user, nil
}

// EmailTaken : занят ли email другим пользователем (excludeID = 0 проверяет всех)
func (r *UserRepository) EmailTaken(ctx context.Context, exec sqlx.ExtContext, email string, excludeID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1 AND id <> $2)`
	err := sqlx.GetContext(ctx, exec, &exists, query, email, excludeID)
	if err != nil {
		return false, util.LogError("[UserRepo] ошибка проверки email", err)
	}
	return exists, nil
}

// UpdateUser : перезаписывает профильные поля и флаг администратора
func (r *UserRepository) UpdateUser(ctx context.Context, exec sqlx.ExtContext, user *model.User) error {
	query := `
		UPDATE users
		SET email = $2, first_name = $3, last_name = $4, language = $5, is_admin = $6, updated_at = NOW()
		WHERE id = $1
	`
	_, err := exec.ExecContext(ctx, query, user.ID, user.Email, user.FirstName, user.LastName, user.Language, user.IsAdmin)
	if err != nil {
		return util.LogError("[UserRepo] не удалось обновить пользователя", err)
	}
	return nil
}

// UpdateProfile : безусловно перезаписывает имя и язык (отсутствующие поля сбрасываются)
func (r *UserRepository) UpdateProfile(ctx context.Context, exec sqlx.ExtContext, id int64, firstName, lastName, language string) error {
	query := `
		UPDATE users
		SET first_name = $2, last_name = $3, language = $4, updated_at = NOW()
		WHERE id = $1
	`
	_, err := exec.ExecContext(ctx, query, id, firstName, lastName, language)
	if err != nil {
		return util.LogError("[UserRepo] не удалось обновить профиль", err)
	}
	return nil
}

// UpdatePassword : меняет пароль пользователя
func (r *UserRepository) UpdatePassword(ctx context.Context, exec sqlx.ExtContext, id int64, newPasswordHash string) error {
	query := `UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`
	_, err := exec.ExecContext(ctx, query, id, newPasswordHash)
	if err != nil {
		return util.LogError("[UserRepo] не удалось обновить пароль", err)
	}
	return nil
}

// DeleteUser : удаляет пользователя, его пожертвования и доступы (каскад по FK)
func (r *UserRepository) DeleteUser(ctx context.Context, exec sqlx.ExtContext, id int64) error {
	query := `DELETE FROM users WHERE id = $1`
	_, err := exec.ExecContext(ctx, query, id)
	if err != nil {
		return util.LogError("[UserRepo] не удалось удалить пользователя", err)
	}
	return nil
}

// CountUsers : общее количество пользователей
func (r *UserRepository) CountUsers(ctx context.Context, exec sqlx.ExtContext) (int64, error) {
	var count int64
	err := sqlx.GetContext(ctx, exec, &count, `SELECT COUNT(*) FROM users`)
	if err != nil {
		return 0, util.LogError("[UserRepo] ошибка подсчёта пользователей", err)
	}
	return count, nil
}

// ListWithDonations : постраничный список с агрегатами по завершённым пожертвованиям
func (r *UserRepository) ListWithDonations(ctx context.Context, exec sqlx.ExtContext, limit, offset int) ([]*model.UserWithDonations, error) {
	query := `
		SELECT
			u.id, u.email, u.password_hash, u.first_name, u.last_name, u.language,
			u.is_admin, u.created_at, u.updated_at,
			COALESCE(SUM(d.amount), 0) AS total_donated,
			COUNT(d.id) AS donation_count,
			MAX(d.created_at) AS last_donation
		FROM users u
		LEFT JOIN donations d ON u.id = d.user_id AND d.status = 'completed'
		GROUP BY u.id
		ORDER BY u.created_at DESC
		LIMIT $1 OFFSET $2
	`

	var users []*model.UserWithDonations
	err := sqlx.SelectContext(ctx, exec, &users, query, limit, offset)
	if err != nil {
		return nil, util.LogError("[UserRepo] не удалось получить список пользователей", err)
	}
	return users, nil
}

// GetWithDonations : один пользователь с теми же агрегатами, nil если не найден
func (r *UserRepository) GetWithDonations(ctx context.Context, exec sqlx.ExtContext, id int64) (*model.UserWithDonations, error) {
	query := `
		SELECT
			u.id, u.email, u.password_hash, u.first_name, u.last_name, u.language,
			u.is_admin, u.created_at, u.updated_at,
			COALESCE(SUM(d.amount), 0) AS total_donated,
			COUNT(d.id) AS donation_count,
			MAX(d.created_at) AS last_donation
		FROM users u
		LEFT JOIN donations d ON u.id = d.user_id AND d.status = 'completed'
		WHERE u.id = $1
		GROUP BY u.id
	`

	var user model.UserWithDonations
	err := sqlx.GetContext(ctx, exec, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, util.LogError("[UserRepo] не удалось получить пользователя с агрегатами", err)
	}
	return &user, nil
}
