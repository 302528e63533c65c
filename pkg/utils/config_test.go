package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "SESSION_EXPIRY_HOURS", "BOOKING_DOWN_PAYMENT_RATIO", "BOOKING_DOWN_PAYMENT_CAP", "BOOKING_ROUNDING_TOLERANCE", "BOOKING_CURRENCY"} {
		t.Setenv(key, "")
	}

	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, 15*time.Second, config.App.ShutdownTimeout)
	assert.Equal(t, 12, config.Session.ExpiryHours)
	assert.Equal(t, "PHP", config.Booking.Currency)
	assert.True(t, config.Booking.DownPaymentRatio.Equal(decimal.RequireFromString("0.5")))
	assert.True(t, config.Booking.DownPaymentCap.Equal(decimal.NewFromInt(1000)))
	assert.True(t, config.Booking.RoundingTolerance.Equal(decimal.NewFromInt(1)))
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9090\nDB_HOST=db.internal\nBOOKING_DOWN_PAYMENT_CAP=2500\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("DB_HOST", "db.override")

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", config.App.Port)
	assert.Equal(t, "db.override", config.Database.Host)
	assert.True(t, config.Booking.DownPaymentCap.Equal(decimal.NewFromInt(2500)))
}

func TestLoadConfig_BadDecimal(t *testing.T) {
	t.Setenv("BOOKING_DOWN_PAYMENT_RATIO", "half")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorContains(t, err, "BOOKING_DOWN_PAYMENT_RATIO")
}
