package config

import (
	"os"
)

type ServerConfig struct {
	Addr           string
	FrontendOrigin string
	SessionSecret  string
}

type EmailConfig struct {
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string
	SenderEmail        string
}

func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Addr:           getEnvOrDefault("SERVER_ADDR", ":8080"),
		FrontendOrigin: getEnvOrDefault("FRONTEND_ORIGIN", "http://localhost:4200"),
		SessionSecret:  getEnvOrDefault("SESSION_SECRET", "change-me"),
	}
}

func LoadEmailConfig() EmailConfig {
	return EmailConfig{
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		AWSRegion:          getEnvOrDefault("AWS_REGION", "us-east-1"),
		SenderEmail:        os.Getenv("AWS_SENDER_ADDRESS"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
