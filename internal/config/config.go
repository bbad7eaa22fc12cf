package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv        string `mapstructure:"APP_ENV"`
	Port          string `mapstructure:"PORT"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	SessionSecret string `mapstructure:"SESSION_SECRET"`
	PageSize      int    `mapstructure:"PAGE_SIZE"`
}

func LoadConfig() (config Config, err error) {
	// A local .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	viper.SetDefault("APP_ENV", "local")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_URL", "sqlite://boardrank.db")
	viper.SetDefault("SESSION_SECRET", "change-me-in-production-0123456789ab")
	viper.SetDefault("PAGE_SIZE", 5)

	viper.AutomaticEnv()

	err = viper.Unmarshal(&config)
	if err != nil {
		log.Printf("unable to decode into struct, %v", err)
		return
	}

	return
}
