package config

import (
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	ServerPort       string
	BaseURL          string
	DatabaseDSN      string
	AccessSecret     string
	KafkaBroker      string
	KafkaTopic       string
	CloudinaryUrl    string
	JobDeleteCascade bool
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Warn("env file not found or could not be loaded: ", err)
		}
	}

	return Config{
		ServerPort:       getEnv("SERVER_PORT", ":3000"),
		BaseURL:          getEnv("BASE_URL", "*"),
		DatabaseDSN:      os.Getenv("DATABASE_DSN"),
		AccessSecret:     os.Getenv("ACCESS_SECRET"),
		KafkaBroker:      os.Getenv("KAFKA_BROKER"),
		KafkaTopic:       getEnv("KAFKA_TOPIC", "gig-events"),
		CloudinaryUrl:    os.Getenv("CLOUDINARY_URL"),
		JobDeleteCascade: os.Getenv("JOB_DELETE_CASCADE") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
