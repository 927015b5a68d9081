package config

import (
	"fmt"

	"roomfinder/models"

	"github.com/spf13/viper"
)

// LoadLocatorConfig reads the building map from the given YAML file.
// Room names are kept in a list because viper folds map keys to lower case.
func LoadLocatorConfig(path string) (models.LocatorConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("gridSize", 40)
	v.SetDefault("origin", "START")

	if err := v.ReadInConfig(); err != nil {
		return models.LocatorConfig{}, fmt.Errorf("error reading locator config file: %w", err)
	}

	var cfg models.LocatorConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return models.LocatorConfig{}, fmt.Errorf("error decoding locator config: %w", err)
	}
	if len(cfg.Rooms) == 0 {
		return models.LocatorConfig{}, fmt.Errorf("locator config %s defines no rooms", path)
	}
	return cfg, nil
}
