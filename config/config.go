package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config carries the settings for all four clinic services. Each binary
// reads its own section plus the shared JWT/Redis/Client blocks.
type Config struct {
	Env         string
	User        ServiceConfig
	Appointment ServiceConfig
	Treatment   ServiceConfig
	Payment     ServiceConfig
	JWT         JWTConfig
	Redis       RedisConfig
	Client      ClientConfig
	Reconciler  ReconcilerConfig
}

// ServiceConfig describes one service: where it listens, where its own
// database lives, and the base URL other services use to reach it.
type ServiceConfig struct {
	Port    string
	BaseURL string
	DB      DBConfig
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// ClientConfig bounds inter-service HTTP calls.
type ClientConfig struct {
	Timeout   time.Duration
	RetryMax  int
	RetryWait time.Duration
}

// ReconcilerConfig controls the payment confirmation sweep.
type ReconcilerConfig struct {
	Schedule    string
	MaxAttempts int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// A missing .env is fine, environment variables still apply.
	_ = viper.ReadInConfig()

	setDefaults()

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 24 * time.Hour
	}

	config := &Config{
		Env: viper.GetString("APP_ENV"),
		User: ServiceConfig{
			Port:    viper.GetString("USER_PORT"),
			BaseURL: viper.GetString("USER_SERVICE_URL"),
			DB:      loadDB("USER"),
		},
		Appointment: ServiceConfig{
			Port:    viper.GetString("APPOINTMENT_PORT"),
			BaseURL: viper.GetString("APPOINTMENT_SERVICE_URL"),
			DB:      loadDB("APPOINTMENT"),
		},
		Treatment: ServiceConfig{
			Port:    viper.GetString("TREATMENT_PORT"),
			BaseURL: viper.GetString("TREATMENT_SERVICE_URL"),
			DB:      loadDB("TREATMENT"),
		},
		Payment: ServiceConfig{
			Port:    viper.GetString("PAYMENT_PORT"),
			BaseURL: viper.GetString("PAYMENT_SERVICE_URL"),
			DB:      loadDB("PAYMENT"),
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Client: ClientConfig{
			Timeout:   viper.GetDuration("CLIENT_TIMEOUT"),
			RetryMax:  viper.GetInt("CLIENT_RETRY_MAX"),
			RetryWait: viper.GetDuration("CLIENT_RETRY_WAIT"),
		},
		Reconciler: ReconcilerConfig{
			Schedule:    viper.GetString("RECONCILER_SCHEDULE"),
			MaxAttempts: viper.GetInt("RECONCILER_MAX_ATTEMPTS"),
		},
	}

	return config, nil
}

func loadDB(prefix string) DBConfig {
	return DBConfig{
		Host:     viper.GetString(prefix + "_DB_HOST"),
		Port:     viper.GetString(prefix + "_DB_PORT"),
		User:     viper.GetString(prefix + "_DB_USER"),
		Password: viper.GetString(prefix + "_DB_PASSWORD"),
		Name:     viper.GetString(prefix + "_DB_NAME"),
	}
}

func setDefaults() {
	viper.SetDefault("APP_ENV", "development")

	viper.SetDefault("USER_PORT", "5001")
	viper.SetDefault("APPOINTMENT_PORT", "5002")
	viper.SetDefault("TREATMENT_PORT", "5003")
	viper.SetDefault("PAYMENT_PORT", "5004")

	viper.SetDefault("USER_SERVICE_URL", "http://localhost:5001")
	viper.SetDefault("APPOINTMENT_SERVICE_URL", "http://localhost:5002")
	viper.SetDefault("TREATMENT_SERVICE_URL", "http://localhost:5003")
	viper.SetDefault("PAYMENT_SERVICE_URL", "http://localhost:5004")

	viper.SetDefault("JWT_ACCESS_EXPIRY", "24h")

	viper.SetDefault("CLIENT_TIMEOUT", "5s")
	viper.SetDefault("CLIENT_RETRY_MAX", 2)
	viper.SetDefault("CLIENT_RETRY_WAIT", "200ms")

	viper.SetDefault("RECONCILER_SCHEDULE", "@every 1m")
	viper.SetDefault("RECONCILER_MAX_ATTEMPTS", 5)
}
