package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11" // Struct tag based env parsing
	"github.com/joho/godotenv"    // For loading .env files
	"github.com/sirupsen/logrus"
)

// DevJWTSecret signs tokens when JWT_SECRET is unset outside production
const DevJWTSecret = "restaurant-dev-secret"

// Config holds the application configuration
type Config struct {
	AppPort    string        `env:"APP_PORT" envDefault:"8080"`             // Application port
	DBDriver   string        `env:"DB_DRIVER" envDefault:"mysql"`           // mysql or sqlite
	DBUser     string        `env:"DB_USER"`                                // Database user
	DBPassword string        `env:"DB_PASSWORD"`                            // Database password
	DBHost     string        `env:"DB_HOST" envDefault:"127.0.0.1"`         // Database host
	DBPort     string        `env:"DB_PORT" envDefault:"3306"`              // Database port
	DBName     string        `env:"DB_NAME" envDefault:"restaurant"`        // Database name
	SQLitePath string        `env:"SQLITE_PATH" envDefault:"restaurant.db"` // SQLite file when DB_DRIVER=sqlite
	JWTSecret  string        `env:"JWT_SECRET"`                             // JWT secret key
	TokenTTL   time.Duration `env:"TOKEN_TTL" envDefault:"24h"`             // JWT lifetime
	RedisAddr  string        `env:"REDIS_ADDR"`                             // Redis server address, empty disables caching
	RedisPass  string        `env:"REDIS_PASS"`                             // Redis password
	RedisDB    int           `env:"REDIS_DB" envDefault:"0"`                // Redis database number
	AMQPURL    string        `env:"AMQP_URL"`                               // RabbitMQ URL, empty logs events instead
	SeedFile   string        `env:"SEED_FILE" envDefault:"seed.yaml"`       // Seed data for cmd/migrate
	LogLevel   string        `env:"LOG_LEVEL" envDefault:"info"`            // logrus level
	IsProd     bool          `env:"IS_PROD" envDefault:"false"`             // Is production environment
}

// LoadConfig loads configuration from the environment, reading a .env file first if present
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // Load .env file if present
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.JWTSecret == "" {
		if cfg.IsProd {
			return nil, fmt.Errorf("JWT_SECRET is required in production")
		}
		logrus.Warn("JWT_SECRET is not set, using the development secret; set IS_PROD=true to make it mandatory")
		cfg.JWTSecret = DevJWTSecret // Development fallback only
	}
	return &cfg, nil
}

// MySQLDSN builds the Data Source Name for the MySQL driver
func (c *Config) MySQLDSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true&charset=utf8mb4&loc=UTC"
}
