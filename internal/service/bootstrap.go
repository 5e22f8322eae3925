package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"donation-web-server/config"
	"donation-web-server/internal/model"
	"donation-web-server/internal/ports"
	"donation-web-server/internal/security"
)

// EnsureDefaultAdmin : при старте гарантирует наличие администратора из конфигурации.
// Существующий пользователь с этим email повышается до администратора,
// отсутствующий — создаётся. Вызывается до приёма запросов, БД передаётся явно.
func EnsureDefaultAdmin(ctx context.Context, database *config.Database, userRepository ports.UserRepository, cfg *config.BootstrapConfig) error {
	email := strings.TrimSpace(strings.ToLower(cfg.AdminEmail))
	if email == "" {
		log.Println("[Bootstrap] администратор в конфигурации не задан, пропускаем")
		return nil
	}

	existing, err := userRepository.FindByEmail(ctx, database, email)
	if err != nil {
		return fmt.Errorf("[Bootstrap] ошибка поиска администратора: %w", err)
	}

	if existing != nil {
		if existing.IsAdmin {
			return nil
		}
		existing.IsAdmin = true
		if err := userRepository.UpdateUser(ctx, database, existing); err != nil {
			return fmt.Errorf("[Bootstrap] не удалось повысить пользователя до администратора: %w", err)
		}
		log.Printf("[Bootstrap] пользователь %s повышен до администратора", email)
		return nil
	}

	if len(cfg.AdminPassword) < security.MinPasswordLength {
		return fmt.Errorf("[Bootstrap] пароль администратора должен содержать минимум %d символов", security.MinPasswordLength)
	}

	hash, err := security.HashPassword(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("[Bootstrap] не удалось создать хэш пароля: %w", err)
	}

	_, err = userRepository.CreateUser(ctx, database, &model.User{
		Email:        email,
		PasswordHash: hash,
		Language:     defaultLanguage,
		IsAdmin:      true,
	})
	if err != nil {
		return fmt.Errorf("[Bootstrap] не удалось создать администратора: %w", err)
	}

	log.Printf("[Bootstrap] создан администратор %s", email)
	return nil
}
