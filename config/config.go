package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all the configuration for the application
type Config struct {
	DatabaseURL      string
	Port             string
	QuestionsPerPage int
}

// Load loads the configuration from environment variables. A .env file is
// read first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	host := getenv("DB_HOST", "localhost")
	port := getenv("DB_PORT", "5432")
	dbname := os.Getenv("DB_NAME")
	sslmode := getenv("DB_SSLMODE", "disable")

	if user == "" || dbname == "" {
		return nil, fmt.Errorf("DB_USER and DB_NAME environment variables are required")
	}

	perPage := 10
	if v := os.Getenv("QUESTIONS_PER_PAGE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid QUESTIONS_PER_PAGE: %q", v)
		}
		perPage = n
	}

	return &Config{
		DatabaseURL:      fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", user, password, host, port, dbname, sslmode),
		Port:             getenv("PORT", "8080"),
		QuestionsPerPage: perPage,
	}, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
