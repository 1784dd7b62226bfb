package config

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	Filter FilterConfig
}

type AppConfig struct {
	LogLevel string
}

// FilterConfig holds the defaults for the shared (global) filter state.
// DemoYear anchors the named month/quarter/ytd date-range tokens; the
// shipped demo data lives entirely in 2025, so the default stays there
// rather than tracking the system clock.
type FilterConfig struct {
	DemoYear      int
	PriceRangeMin float64
	PriceRangeMax float64
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		// Set default values
		viper.SetDefault("LOG_LEVEL", "info")
		viper.SetDefault("FILTER_DEMO_YEAR", 2025)
		viper.SetDefault("FILTER_PRICE_RANGE_MIN", 0.0)
		viper.SetDefault("FILTER_PRICE_RANGE_MAX", 1000.0)

		// Read from environment variables
		viper.AutomaticEnv()

		instance = &Config{
			App: AppConfig{
				LogLevel: viper.GetString("LOG_LEVEL"),
			},
			Filter: FilterConfig{
				DemoYear:      viper.GetInt("FILTER_DEMO_YEAR"),
				PriceRangeMin: viper.GetFloat64("FILTER_PRICE_RANGE_MIN"),
				PriceRangeMax: viper.GetFloat64("FILTER_PRICE_RANGE_MAX"),
			},
		}
	})

	return instance
}
