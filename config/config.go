package config

import (
	"directory/internal/logger"

	"github.com/spf13/viper"
)

type Config struct {
	Environment string
	LogLevel    string

	ServerHost string
	ServerPort string

	DatabaseDbPath string

	CacheAddress   string
	CacheSessionDB int
	CacheEventsDB  int
}

func InitConfig() (Config, error) {
	log := logger.New("config").Function("InitConfig")

	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", "8280")
	viper.SetDefault("DATABASE_DB_PATH", "data/directory.db")
	viper.SetDefault("CACHE_ADDRESS", "localhost:6379")
	viper.SetDefault("CACHE_SESSION_DB", 1)
	viper.SetDefault("CACHE_EVENTS_DB", 2)

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, log.Err("failed to read config file", err)
		}
	}

	config := Config{
		Environment:    viper.GetString("ENVIRONMENT"),
		LogLevel:       viper.GetString("LOG_LEVEL"),
		ServerHost:     viper.GetString("SERVER_HOST"),
		ServerPort:     viper.GetString("SERVER_PORT"),
		DatabaseDbPath: viper.GetString("DATABASE_DB_PATH"),
		CacheAddress:   viper.GetString("CACHE_ADDRESS"),
		CacheSessionDB: viper.GetInt("CACHE_SESSION_DB"),
		CacheEventsDB:  viper.GetInt("CACHE_EVENTS_DB"),
	}

	logger.Configure(config.Environment, config.LogLevel)
	log.Info("Config initialized", "environment", config.Environment)

	return config, nil
}
