package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Booking BookingConfig
}

type AppConfig struct {
	Port string
	Env  string
	// AllowedOrigins is the CORS allowlist; "*" allows every origin.
	AllowedOrigins []string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

type BookingConfig struct {
	// SlotLockTTL bounds the critical section of a single booking attempt.
	SlotLockTTL time.Duration
	// WizardSessionTTL is how long an abandoned booking wizard survives in Redis.
	WizardSessionTTL time.Duration
	// DefaultConsultationMinutes applies when a facility has no duration configured.
	DefaultConsultationMinutes int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	slotLockTTL, err := time.ParseDuration(viper.GetString("BOOKING_SLOT_LOCK_TTL"))
	if err != nil {
		slotLockTTL = 5 * time.Second
	}

	wizardTTL, err := time.ParseDuration(viper.GetString("BOOKING_WIZARD_TTL"))
	if err != nil {
		wizardTTL = 30 * time.Minute
	}

	consultationMinutes := viper.GetInt("BOOKING_DEFAULT_CONSULTATION_MINUTES")
	if consultationMinutes <= 0 {
		consultationMinutes = 30
	}

	allowedOrigins := splitOrigins(viper.GetString("CORS_ALLOWED_ORIGINS"))
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	config := &Config{
		App: AppConfig{
			Port:           viper.GetString("APP_PORT"),
			Env:            viper.GetString("APP_ENV"),
			AllowedOrigins: allowedOrigins,
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Booking: BookingConfig{
			SlotLockTTL:                slotLockTTL,
			WizardSessionTTL:           wizardTTL,
			DefaultConsultationMinutes: consultationMinutes,
		},
	}

	return config, nil
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
