package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort      string        `validate:"required,numeric"`
	GinMode         string        `validate:"oneof=debug release test"`
	LogLevel        string        `validate:"oneof=debug info warn error"`
	LogFormat       string        `validate:"oneof=json console"`
	ServiceName     string        `validate:"required"`
	ShutdownTimeout time.Duration `validate:"gt=0"`

	DBDriver       string `validate:"oneof=postgres sqlite"`
	DBHost         string `validate:"required_if=DBDriver postgres"`
	DBPort         string `validate:"required_if=DBDriver postgres"`
	DBUser         string
	DBPassword     string
	DBName         string `validate:"required_if=DBDriver postgres"`
	DBSSLMode      string
	SQLitePath     string `validate:"required_if=DBDriver sqlite"`
	DBMaxOpenConns int    `validate:"gte=0"`
	DBMaxIdleConns int    `validate:"gte=0"`

	RedisAddr        string
	RedisPassword    string
	RedisDB          int           `validate:"gte=0"`
	CategoryCacheTTL time.Duration `validate:"gte=0"`

	AutoSeed bool
	SeedFile string
}

var validate = validator.New()

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		ServerPort:      v.GetString("SERVER_PORT"),
		GinMode:         v.GetString("GIN_MODE"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogFormat:       v.GetString("LOG_FORMAT"),
		ServiceName:     v.GetString("SERVICE_NAME"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),

		DBDriver:       v.GetString("DB_DRIVER"),
		DBHost:         v.GetString("DB_HOST"),
		DBPort:         v.GetString("DB_PORT"),
		DBUser:         v.GetString("DB_USER"),
		DBPassword:     v.GetString("DB_PASSWORD"),
		DBName:         v.GetString("DB_NAME"),
		DBSSLMode:      v.GetString("DB_SSLMODE"),
		SQLitePath:     v.GetString("SQLITE_PATH"),
		DBMaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		DBMaxIdleConns: v.GetInt("DB_MAX_IDLE_CONNS"),

		RedisAddr:        v.GetString("REDIS_ADDR"),
		RedisPassword:    v.GetString("REDIS_PASSWORD"),
		RedisDB:          v.GetInt("REDIS_DB"),
		CategoryCacheTTL: v.GetDuration("CATEGORY_CACHE_TTL"),

		AutoSeed: v.GetBool("AUTO_SEED"),
		SeedFile: v.GetString("SEED_FILE"),
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("SERVICE_NAME", "trivia-api")
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)

	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "trivia")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("SQLITE_PATH", "trivia.db")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)

	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CATEGORY_CACHE_TTL", 5*time.Minute)

	v.SetDefault("AUTO_SEED", false)
}

// DSN returns the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode,
	)
}

func (c *Config) CacheEnabled() bool {
	return c.RedisAddr != "" && c.CategoryCacheTTL > 0
}
