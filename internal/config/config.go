package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Supported values for DBDriver.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	DBDriver    string
	MySQLDSN    string
	PostgresDSN string
	SQLitePath  string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	JWTSecret   string
	LogLevel    string
	LogEncoding string
	SwaggerHost string
	ResetDB     bool
}

// Load builds Config from environment with sensible defaults.
// Variables from a .env file in the working directory are applied first
// without overriding the real environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		DBDriver:    getEnv("DB_DRIVER", DriverMySQL),
		MySQLDSN:    getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/kickmyb?charset=utf8mb4&parseTime=True&loc=Local"),
		PostgresDSN: getEnv("POSTGRES_DSN", "host=localhost user=postgres password=postgres dbname=kickmyb port=5432 sslmode=disable"),
		SQLitePath:  getEnv("SQLITE_PATH", "kickmyb.db"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		JWTSecret:   getEnv("JWT_SECRET", "change-me"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogEncoding: getEnv("LOG_ENCODING", "json"),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
		ResetDB:     getEnvBool("RESET_DB", false),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
