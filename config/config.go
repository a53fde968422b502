package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Admin    AdminConfig
	Storage  StorageConfig
}

type ServerConfig struct {
	Port            string
	Env             string
	BaseURL         string
	SessionSecret   string
	SessionTTLHours int
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	URL      string
}

type AdminConfig struct {
	Email    string
	Password string
}

type StorageConfig struct {
	Driver      string // "local" or "s3"
	UploadDir   string
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
}

var AppConfig *Config

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, checking environment variables: %v", err)
	}

	viper.AutomaticEnv()

	viper.BindEnv("SERVER_PORT", "PORT")
	viper.BindEnv("DATABASE_URL")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SESSION_TTL_HOURS", 24)
	viper.SetDefault("STORAGE_DRIVER", "local")
	viper.SetDefault("UPLOAD_DIR", "uploads")

	AppConfig = &Config{
		Server: ServerConfig{
			Port:            viper.GetString("SERVER_PORT"),
			Env:             viper.GetString("SERVER_ENV"),
			BaseURL:         viper.GetString("BASE_URL"),
			SessionSecret:   viper.GetString("SESSION_SECRET"),
			SessionTTLHours: viper.GetInt("SESSION_TTL_HOURS"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			URL:      viper.GetString("DATABASE_URL"),
		},
		Admin: AdminConfig{
			Email:    viper.GetString("ADMIN_EMAIL"),
			Password: viper.GetString("ADMIN_PASSWORD"),
		},
		Storage: StorageConfig{
			Driver:      viper.GetString("STORAGE_DRIVER"),
			UploadDir:   viper.GetString("UPLOAD_DIR"),
			S3Region:    viper.GetString("AWS_REGION"),
			S3Bucket:    viper.GetString("AWS_BUCKET"),
			S3AccessKey: viper.GetString("AWS_ACCESS_KEY_ID"),
			S3SecretKey: viper.GetString("AWS_SECRET_ACCESS_KEY"),
		},
	}

	log.Printf("Configuration loaded:")
	log.Printf("- Server Port: %s", AppConfig.Server.Port)
	log.Printf("- Server Env: %s", AppConfig.Server.Env)
	log.Printf("- Session Secret: %s", func() string {
		if AppConfig.Server.SessionSecret != "" {
			return "SET"
		}
		return "NOT SET"
	}())
	log.Printf("- Database URL: %s", func() string {
		if AppConfig.Database.URL != "" {
			return "SET"
		}
		return "NOT SET"
	}())
	log.Printf("- Storage Driver: %s", AppConfig.Storage.Driver)
}
