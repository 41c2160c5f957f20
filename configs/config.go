package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	DBSource string
	LogFile  string

	NewbiePoints   int
	ConversionRate decimal.Decimal // cash value of one redeemed point
	EarnRate       decimal.Decimal // points earned per unit of bill total
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBSource:       getEnv("DB_SOURCE", "cafe.db"),
		LogFile:        getEnv("LOG_FILE", "cafe-crm.log"),
		NewbiePoints:   getEnvInt("NEWBIE_LOYALTY_POINTS", 100),
		ConversionRate: getEnvDecimal("POINTS_CONVERSION_RATE", "0.1"),
		EarnRate:       getEnvDecimal("LOYALTY_EARN_RATE", "0.1"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
	}
	return fallback
}

func getEnvDecimal(key, fallback string) decimal.Decimal {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
		log.Printf("invalid %s=%q, using %s", key, v, fallback)
	}
	return decimal.RequireFromString(fallback)
}
