package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Log       Logger    `mapstructure:"logger"`
	API       API       `mapstructure:"api"`
	Tradier   Tradier   `mapstructure:"tradier"`
	Cache     Cache     `mapstructure:"cache"`
	Analysis  Analysis  `mapstructure:"analysis"`
	AutoTrade AutoTrade `mapstructure:"autotrade"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type API struct {
	Port int `mapstructure:"port"`
}

type Tradier struct {
	BaseURL          string        `mapstructure:"base_url"`
	AccessToken      string        `mapstructure:"access_token"`
	AccountID        string        `mapstructure:"account_id"`
	Timeout          time.Duration `mapstructure:"timeout"`
	MaxRequestPerMin int           `mapstructure:"max_request_per_min"`
}

type Cache struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

// Analysis holds the support/resistance detection policy. The merge gaps and
// the rounding grid changed between revisions of the analysis, so they are
// configurable instead of hardcoded.
type Analysis struct {
	Window          int     `mapstructure:"window"`
	HistoryDays     int     `mapstructure:"history_days"`
	MergeGapNear    float64 `mapstructure:"merge_gap_near"`
	MergeGapFar     float64 `mapstructure:"merge_gap_far"`
	PriceBreakpoint float64 `mapstructure:"price_breakpoint"`
	RoundStep       float64 `mapstructure:"round_step"`
}

type AutoTrade struct {
	Symbol          string  `mapstructure:"symbol"`
	SpreadWidth     float64 `mapstructure:"spread_width"`
	ExpirationIndex int     `mapstructure:"expiration_index"`
}

func Load() (*Config, error) {
	viper.SetConfigType("yaml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("No config file loaded:", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("api.port", 8080)
	viper.SetDefault("tradier.base_url", "https://sandbox.tradier.com/v1")
	viper.SetDefault("tradier.timeout", 30*time.Second)
	viper.SetDefault("tradier.max_request_per_min", 60)
	viper.SetDefault("cache.default_expiration", 5*time.Minute)
	viper.SetDefault("cache.cleanup_interval", 10*time.Minute)
	viper.SetDefault("analysis.window", 10)
	viper.SetDefault("analysis.history_days", 185)
	viper.SetDefault("analysis.merge_gap_near", 1)
	viper.SetDefault("analysis.merge_gap_far", 2)
	viper.SetDefault("analysis.price_breakpoint", 100)
	viper.SetDefault("analysis.round_step", 5)
	viper.SetDefault("autotrade.symbol", "TSLA")
	viper.SetDefault("autotrade.spread_width", 5)
	viper.SetDefault("autotrade.expiration_index", 4)
}
