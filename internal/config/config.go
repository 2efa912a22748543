package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrDotEnvNotLoaded возвращается, когда файл .env не найден; конфиг при этом валиден
var ErrDotEnvNotLoaded = errors.New(".env not loaded")

type Config struct {
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"password"`
	DBName     string `env:"DB_NAME" envDefault:"skillswap"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	ServerPort string `env:"SERVER_PORT" envDefault:"8080"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`

	JWTSecret  string        `env:"JWT_SECRET" envDefault:"change-me"`
	JWTTTL     time.Duration `env:"JWT_TTL" envDefault:"24h"`
	AdminToken string        `env:"ADMIN_TOKEN"`

	// Пустой RedisURL отключает кэш
	RedisURL      string        `env:"REDIS_URL"`
	SkillCacheTTL time.Duration `env:"SKILL_CACHE_TTL" envDefault:"5m"`

	// TracingExporter: otlp, stdout или пусто (трейсинг выключен)
	TracingExporter string `env:"TRACING_EXPORTER"`
	OTLPEndpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName     string `env:"OTEL_SERVICE_NAME" envDefault:"skillswap-service"`
}

// DSN собирает строку подключения к Postgres
func (c Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

// LoadConfig читает .env (если есть) и переменные окружения.
// Ошибка ErrDotEnvNotLoaded не фатальна.
func LoadConfig() (Config, error) {
	dotEnvErr := godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if dotEnvErr != nil {
		return cfg, fmt.Errorf("%w: %v", ErrDotEnvNotLoaded, dotEnvErr)
	}
	return cfg, nil
}
