package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Twilio   TwilioConfig
	App      AppConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// TwilioConfig carries the webhook verification inputs. AuthToken and
// PublicURL deliberately have no defaults: the webhook answers 500 when
// the token is absent instead of accepting unauthenticated traffic.
type TwilioConfig struct {
	AuthToken string
	PublicURL string
}

// AppConfig holds the deployment's single tenant. The user ID is still
// passed explicitly through every service call so nothing below the
// handler layer assumes single-tenancy.
type AppConfig struct {
	DefaultUserID uuid.UUID
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// No .env file is fine; plain environment variables work for
	// Docker/K8s deployments.

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))

	userID, err := uuid.Parse(getEnv("DEFAULT_USER_ID", "00000000-0000-0000-0000-000000000000"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_USER_ID: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "smsledger"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Twilio: TwilioConfig{
			AuthToken: os.Getenv("TWILIO_AUTH_TOKEN"),
			PublicURL: os.Getenv("PUBLIC_URL"),
		},
		App: AppConfig{
			DefaultUserID: userID,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
