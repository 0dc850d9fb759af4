package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting for the server. Values come from the
// environment (optionally seeded from a .env file), with development
// defaults for everything except the storage bucket, which stays empty so a
// missing bucket is detectable at request time.
type Config struct {
	Port     string `env:"PORT" env-default:"8080"`
	Env      string `env:"GO_ENV" env-default:"development"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`

	AWSRegion string `env:"AWS_REGION" env-default:"ap-east-1"`
	S3Bucket  string `env:"S3_BUCKET_NAME"`

	JWTSecret    string        `env:"JWT_SECRET" env-default:"your-secret-key"`
	TokenTTL     time.Duration `env:"TOKEN_TTL" env-default:"168h"`
	UploadURLTTL time.Duration `env:"UPLOAD_URL_TTL" env-default:"2h"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; real environment variables win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad is Load with panic on error, for use from main.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
