package config

import (
	"log"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	Auth       AuthConfig
	Validation ValidationConfig
}

type AppConfig struct {
	Port               string `validate:"required"`
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
}

type DatabaseConfig struct {
	Connection string `validate:"required"`
}

type AuthConfig struct {
	JWTSecret     string `validate:"required"`
	IdentityClaim string `validate:"required"`
}

// ValidationConfig carries the input limits. Values are deployment
// specific, so they live here rather than in compile-time constants.
type ValidationConfig struct {
	TitleMaxLength   int `validate:"min=1"`
	ContentMaxLength int `validate:"min=1"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	cfg := &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Auth: AuthConfig{
			JWTSecret:     getEnv("JWT_SECRET", ""),
			IdentityClaim: getEnv("IDENTITY_CLAIM", "user_id"),
		},
		Validation: ValidationConfig{
			TitleMaxLength:   getEnvAsInt("TITLE_MAX_LENGTH", 25),
			ContentMaxLength: getEnvAsInt("CONTENT_MAX_LENGTH", 500),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
