package config

import "github.com/aws/aws-sdk-go-v2/service/s3"

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type S3Config struct {
	Bucket   string `yaml:"bucket"`
	Client   *s3.Client
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`
	Local    bool   `yaml:"local"`
}

type JWTConfig struct {
	SecretKey string `yaml:"secret_key"`
	// TokenTTL : время жизни access токена, формат time.ParseDuration (168h = 7 дней)
	TokenTTL string `yaml:"token_ttl"`
}

type StripeConfig struct {
	SecretKey string `yaml:"secret_key"`
}

// BootstrapConfig : учётные данные администратора по умолчанию.
// Используются один раз при старте, если в БД ещё нет ни одного пользователя.
type BootstrapConfig struct {
	AdminEmail    string `yaml:"admin_email"`
	AdminPassword string `yaml:"admin_password"`
}

type TTL struct {
	// S3AndRedis : срок действия pre-signed URL и записей в Redis, в секундах
	S3AndRedis int `yaml:"s3_and_redis"`
}
