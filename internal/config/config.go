package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	log "github.com/sirupsen/logrus"
)

// Config содержит все настройки приложения
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Google   GoogleConfig
	CORS     CORSConfig
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port         string        `env:"SERVER_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" env-default:"15s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" env-default:"15s"`
}

// DatabaseConfig содержит настройки базы данных
type DatabaseConfig struct {
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     string `env:"DB_PORT" env-default:"5432"`
	User     string `env:"DB_USER" env-default:"cats"`
	Password string `env:"DB_PASSWORD" env-default:"password"`
	DBName   string `env:"DB_NAME" env-default:"cats"`
	SSLMode  string `env:"DB_SSLMODE" env-default:"disable"`
}

// JWTConfig содержит настройки сервисных токенов
type JWTConfig struct {
	Secret     string        `env:"JWT_SECRET" env-default:"secret-key"`
	ExpireTime time.Duration `env:"JWT_EXPIRE" env-default:"24h"`
}

// GoogleConfig содержит настройки проверки Google ID-токенов
type GoogleConfig struct {
	ClientID string `env:"GOOGLE_CLIENT_ID" env-default:""`
	Issuer   string `env:"GOOGLE_ISSUER" env-default:"https://accounts.google.com"`
}

// CORSConfig содержит настройки CORS для фронтенда
type CORSConfig struct {
	AllowedOrigin string `env:"CORS_ALLOWED_ORIGIN" env-default:"http://localhost:3000"`
}

// MustLoad загружает конфигурацию из переменных окружения
func MustLoad() *Config {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
