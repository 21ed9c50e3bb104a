package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

type DBConfig struct {
	Driver     string
	Host       string
	User       string
	Password   string
	Name       string
	Port       string
	SSLMode    string
	DSN        string
	MaxRetries int
}

type Config struct {
	AppEnv string
	Port   string

	DB DBConfig

	RedisAddr   string
	KafkaBroker string

	JWTSecret string
	TokenTTL  time.Duration

	// Seeded on boot when no admin with this username exists.
	AdminUsername string
	AdminPassword string

	Timezone *time.Location

	GeoURL     string
	GeoTimeout time.Duration

	BiometricDeviceKey string

	// Optional casbin model file; the built-in model is used when empty.
	RBACModelPath string

	PinRateLimit float64
	PinRateBurst int

	OutboxPollInterval time.Duration
}

// Load reads the process environment. Call godotenv.Load before it when a .env file should apply.
func Load() (Config, error) {
	cfg := Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnv("PORT", "3000"),
		DB: DBConfig{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", "postgres")),
			Host:     os.Getenv("DB_HOST"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			DSN:      os.Getenv("DB_DSN"),
		},
		RedisAddr:          os.Getenv("REDIS_ADDR"),
		KafkaBroker:        os.Getenv("KAFKA_BROKER"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		AdminUsername:      os.Getenv("ADMIN_USERNAME"),
		AdminPassword:      os.Getenv("ADMIN_PASSWORD"),
		GeoURL:             getEnv("GEO_URL", "http://ip-api.com/json/"),
		BiometricDeviceKey: os.Getenv("BIOMETRIC_DEVICE_KEY"),
		RBACModelPath:      os.Getenv("RBAC_MODEL_PATH"),
	}

	var err error
	if cfg.DB.MaxRetries, err = getInt("DB_MAX_RETRIES", 5); err != nil {
		return Config{}, err
	}
	if cfg.TokenTTL, err = getDuration("TOKEN_TTL", 12*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.GeoTimeout, err = getDuration("GEO_TIMEOUT", 3*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.OutboxPollInterval, err = getDuration("OUTBOX_POLL_INTERVAL", 3*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.PinRateBurst, err = getInt("PIN_RATE_BURST", 5); err != nil {
		return Config{}, err
	}
	if cfg.PinRateLimit, err = getFloat("PIN_RATE_LIMIT", 1); err != nil {
		return Config{}, err
	}

	tz := getEnv("APP_TIMEZONE", "Local")
	if cfg.Timezone, err = time.LoadLocation(tz); err != nil {
		return Config{}, fmt.Errorf("invalid APP_TIMEZONE %q: %w", tz, err)
	}

	switch cfg.DB.Driver {
	case "postgres":
	case "sqlite":
		if cfg.DB.DSN == "" {
			cfg.DB.DSN = "attendance.db"
		}
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}

	return cfg, nil
}

// Validate checks what the HTTP API needs on top of Load.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.DB.Driver == "postgres" && c.DB.DSN == "" && c.DB.Host == "" {
		return fmt.Errorf("DB_HOST or DB_DSN is required for postgres")
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
