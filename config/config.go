package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Data sources. DATA_SOURCE is "csv" or "mongo".
	DataSource    string `mapstructure:"DATA_SOURCE"`
	TimetableFile string `mapstructure:"TIMETABLE_FILE"`
	RoomsFile     string `mapstructure:"ROOMS_FILE"`
	LocatorFile   string `mapstructure:"LOCATOR_FILE"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	DatabaseName  string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	CacheEnabled    bool   `mapstructure:"CACHE_ENABLED"`
	CacheTTLSeconds int    `mapstructure:"CACHE_TTL_SECONDS"`
	RedisAddr       string `mapstructure:"REDIS_ADDR"`
	RedisPassword   string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB    int    `mapstructure:"REDIS_CACHE_DB"`

	// "canonical" compares minutes since midnight, "lexical" keeps the
	// legacy display-string comparison.
	TimeOrdering    string `mapstructure:"TIME_ORDERING"`
	SearchTimeoutMS int    `mapstructure:"SEARCH_TIMEOUT_MS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("DATA_SOURCE", "csv")
	v.SetDefault("TIMETABLE_FILE", "data/timetable.csv")
	v.SetDefault("ROOMS_FILE", "data/rooms.csv")
	v.SetDefault("LOCATOR_FILE", "config/locator.yaml")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "roomfinder")
	v.SetDefault("CACHE_ENABLED", false)
	v.SetDefault("CACHE_TTL_SECONDS", 300)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CACHE_DB", 0)
	v.SetDefault("TIME_ORDERING", "canonical")
	v.SetDefault("SEARCH_TIMEOUT_MS", 2000)
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

func UsesMongo() bool {
	return AppConfig.DataSource == "mongo"
}
