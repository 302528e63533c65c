package utils

import (
	"errors"
	"io/fs"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Booking  BookingConfig
}

type AppConfig struct {
	Name            string
	Port            string
	Debug           bool
	LogPath         string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
}

type SessionConfig struct {
	ExpiryHours int
}

// BookingConfig holds the settlement policy knobs. The down payment suggestion is
// min(round(total * DownPaymentRatio), DownPaymentCap, balance).
type BookingConfig struct {
	Currency          string
	DownPaymentRatio  decimal.Decimal
	DownPaymentCap    decimal.Decimal
	RoundingTolerance decimal.Decimal
}

// LoadConfig reads the given .env file (when present) and overlays environment variables.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "hotel-booking")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 15)
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("SESSION_EXPIRY_HOURS", 12)
	v.SetDefault("BOOKING_CURRENCY", "PHP")
	v.SetDefault("BOOKING_DOWN_PAYMENT_RATIO", "0.5")
	v.SetDefault("BOOKING_DOWN_PAYMENT_CAP", "1000")
	v.SetDefault("BOOKING_ROUNDING_TOLERANCE", "1.00")

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	v.AutomaticEnv()

	ratio, err := decimal.NewFromString(v.GetString("BOOKING_DOWN_PAYMENT_RATIO"))
	if err != nil {
		return nil, errors.New("BOOKING_DOWN_PAYMENT_RATIO must be a decimal")
	}
	downCap, err := decimal.NewFromString(v.GetString("BOOKING_DOWN_PAYMENT_CAP"))
	if err != nil {
		return nil, errors.New("BOOKING_DOWN_PAYMENT_CAP must be a decimal")
	}
	tolerance, err := decimal.NewFromString(v.GetString("BOOKING_ROUNDING_TOLERANCE"))
	if err != nil {
		return nil, errors.New("BOOKING_ROUNDING_TOLERANCE must be a decimal")
	}

	config := &Config{
		App: AppConfig{
			Name:            v.GetString("APP_NAME"),
			Port:            v.GetString("PORT"),
			Debug:           v.GetBool("DEBUG"),
			LogPath:         v.GetString("LOG_PATH"),
			ShutdownTimeout: time.Duration(v.GetInt("SHUTDOWN_TIMEOUT_SECONDS")) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			ExpiryHours: v.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Booking: BookingConfig{
			Currency:          v.GetString("BOOKING_CURRENCY"),
			DownPaymentRatio:  ratio,
			DownPaymentCap:    downCap,
			RoundingTolerance: tolerance,
		},
	}

	return config, nil
}

// DefaultBookingConfig mirrors the LoadConfig defaults.
func DefaultBookingConfig() BookingConfig {
	return BookingConfig{
		Currency:          "PHP",
		DownPaymentRatio:  decimal.NewFromFloat(0.5),
		DownPaymentCap:    decimal.NewFromInt(1000),
		RoundingTolerance: decimal.NewFromInt(1),
	}
}
