package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"donation-web-server/config"
	"donation-web-server/internal/model"
	"donation-web-server/internal/util"

	"github.com/redis/go-redis/v9"
)

type CacheRepository struct {
	client *config.RedisClient
	ttl    time.Duration
}

func NewCacheRepository(rdb *config.RedisClient, ttl time.Duration) *CacheRepository {
	return &CacheRepository{rdb, ttl}
}

// GetFolders : каталог папок из кэша, nil если в кэше нет
func (r *CacheRepository) GetFolders(ctx context.Context) ([]model.Folder, error) {
	val, err := r.client.Client.Get(ctx, r.foldersKey()).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // нет в кэше
	} else if err != nil {
		return nil, util.LogError("ошибка получения каталога папок из Redis", err)
	}

	var folders []model.Folder
	if err := json.Unmarshal([]byte(val), &folders); err != nil {
		return nil, util.LogError("ошибка десериализации каталога папок из кэша", err)
	}
	return folders, nil
}

func (r *CacheRepository) SetFolders(ctx context.Context, folders []model.Folder) error {
	data, err := json.Marshal(folders)
	if err != nil {
		return util.LogError("ошибка сериализации каталога папок", err)
	}

	if err := r.client.Client.Set(ctx, r.foldersKey(), data, r.ttl).Err(); err != nil {
		return util.LogError("ошибка сохранения каталога папок в Redis", err)
	}
	return nil
}

// InvalidateFolders : сбрасывает каталог после создания/обновления/удаления папки
func (r *CacheRepository) InvalidateFolders(ctx context.Context) error {
	if err := r.client.Client.Del(ctx, r.foldersKey()).Err(); err != nil {
		return util.LogError("ошибка удаления каталога папок из Redis", err)
	}
	return nil
}

// GetUserGrants : id папок пользователя из кэша, found=false если в кэше нет
func (r *CacheRepository) GetUserGrants(ctx context.Context, userID int64) ([]int64, bool, error) {
	val, err := r.client.Client.Get(ctx, r.grantsKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, util.LogError("ошибка получения доступов из Redis", err)
	}

	var ids []int64
	if err := json.Unmarshal([]byte(val), &ids); err != nil {
		return nil, false, util.LogError("ошибка десериализации доступов из кэша", err)
	}
	return ids, true, nil
}

func (r *CacheRepository) SetUserGrants(ctx context.Context, userID int64, folderIDs []int64) error {
	data, err := json.Marshal(folderIDs)
	if err != nil {
		return util.LogError("ошибка сериализации доступов", err)
	}

	if err := r.client.Client.Set(ctx, r.grantsKey(userID), data, r.ttl).Err(); err != nil {
		return util.LogError("ошибка сохранения доступов в Redis", err)
	}
	return nil
}

// InvalidateUserGrants : сбрасывает доступы после grant/revoke/подтверждения пожертвования
func (r *CacheRepository) InvalidateUserGrants(ctx context.Context, userID int64) error {
	if err := r.client.Client.Del(ctx, r.grantsKey(userID)).Err(); err != nil {
		return util.LogError("ошибка удаления доступов из Redis", err)
	}
	return nil
}

func (r *CacheRepository) foldersKey() string {
	return "folders:catalog"
}

func (r *CacheRepository) grantsKey(userID int64) string {
	return fmt.Sprintf("grants:%d", userID)
}
