package config

import (
	"os"
	"strconv"
	"time"
)

// AppConfig holds the domain tunables. Server, redis and jwt settings stay
// in viper (see cmd/server).
type AppConfig struct {
	Currency             string
	BankBrand            string // on-us match: bank names containing this substring pay no fee
	FlatTransferFee      int64
	DailyTransferCeiling int64
	ToastTTL             time.Duration
	MaxNotifications     int
	DefaultLanguage      string
	LoginLatency         time.Duration
	DemoPIN              string
}

func LoadAppConfig() *AppConfig {
	return &AppConfig{
		Currency:             getEnv("BANK_CURRENCY", "XOF"),
		BankBrand:            getEnv("BANK_BRAND", "sunubank"),
		FlatTransferFee:      getEnvAsInt64("TRANSFER_FLAT_FEE", 500),
		DailyTransferCeiling: getEnvAsInt64("TRANSFER_DAILY_CEILING", 2_000_000),
		ToastTTL:             getEnvAsDuration("TOAST_TTL", 4*time.Second),
		MaxNotifications:     getEnvAsInt("NOTIFICATIONS_MAX", 100),
		DefaultLanguage:      getEnv("DEFAULT_LANGUAGE", "FR"),
		LoginLatency:         getEnvAsDuration("LOGIN_LATENCY", 1*time.Second),
		DemoPIN:              getEnv("DEMO_PIN", "123456"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsInt64(key string, defaultVal int64) int64 {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.ParseInt(val, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if duration, err := time.ParseDuration(val); err == nil {
			return duration
		}
	}
	return defaultVal
}
