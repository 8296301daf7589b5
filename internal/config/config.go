package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the default location of the YAML config file.
const ConfigPath = "config.yaml"

// FileConfig represents configuration loaded from YAML.
type FileConfig struct {
	BotToken              string `yaml:"botToken"`
	LogLevel              string `yaml:"logLevel"`
	DatabaseURL           string `yaml:"databaseURL"`
	RedisAddr             string `yaml:"redisAddr"`
	RedisPassword         string `yaml:"redisPassword"`
	PhotoDir              string `yaml:"photoDir"`
	MinioEndpoint         string `yaml:"minioEndpoint"`
	MinioAccessKey        string `yaml:"minioAccessKey"`
	MinioSecretKey        string `yaml:"minioSecretKey"`
	MinioBucket           string `yaml:"minioBucket"`
	MinioUseSSL           bool   `yaml:"minioUseSSL"`
	ExtendedFields        bool   `yaml:"extendedFields"`
	BrowseLimit           int    `yaml:"browseLimit"`
	OwnedLimit            int    `yaml:"ownedLimit"`
	SessionTTLSeconds     int    `yaml:"sessionTtlSeconds"`
	IntakeStartsPerMinute int    `yaml:"intakeStartsPerMinute"`
}

// Load reads config from path (defaults to config.yaml).
func Load(path string) (FileConfig, error) {
	cfg := FileConfig{}
	if path == "" {
		path = ConfigPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	// Override with environment variables
	if v := os.Getenv("BOT_TOKEN"); v != "" {
		cfg.BotToken = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.RedisPassword = v
	}
	if v := os.Getenv("PHOTO_DIR"); v != "" {
		cfg.PhotoDir = v
	}
	if v := os.Getenv("MINIO_ENDPOINT"); v != "" {
		cfg.MinioEndpoint = v
	}
	if v := os.Getenv("MINIO_ACCESS_KEY"); v != "" {
		cfg.MinioAccessKey = v
	}
	if v := os.Getenv("MINIO_SECRET_KEY"); v != "" {
		cfg.MinioSecretKey = v
	}
	if v := os.Getenv("MINIO_BUCKET"); v != "" {
		cfg.MinioBucket = v
	}
	if v := os.Getenv("MINIO_USE_SSL"); v != "" {
		if useSSL, err := strconv.ParseBool(v); err == nil {
			cfg.MinioUseSSL = useSSL
		}
	}
	if v := os.Getenv("EXTENDED_FIELDS"); v != "" {
		if extended, err := strconv.ParseBool(v); err == nil {
			cfg.ExtendedFields = extended
		}
	}
	if v := os.Getenv("BROWSE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.BrowseLimit = n
		}
	}
	if v := os.Getenv("OWNED_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.OwnedLimit = n
		}
	}
	if v := os.Getenv("SESSION_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.SessionTTLSeconds = n
		}
	}
	if v := os.Getenv("INTAKE_STARTS_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.IntakeStartsPerMinute = n
		}
	}
	if err := validateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func validateConfig(cfg FileConfig) error {
	if cfg.BotToken == "" {
		return errors.New("config: botToken is required (set in config.yaml or BOT_TOKEN)")
	}
	if cfg.DatabaseURL == "" {
		return errors.New("config: databaseURL is required (set in config.yaml or DATABASE_URL)")
	}
	if cfg.MinioEndpoint == "" && cfg.PhotoDir == "" {
		return errors.New("config: photo storage requires minioEndpoint or photoDir")
	}
	if cfg.MinioEndpoint != "" && cfg.MinioBucket == "" {
		return errors.New("config: minioBucket is required when minioEndpoint is set")
	}
	if cfg.BrowseLimit < 0 {
		return errors.New("config: browseLimit must be >= 0")
	}
	if cfg.OwnedLimit < 0 {
		return errors.New("config: ownedLimit must be >= 0")
	}
	if cfg.SessionTTLSeconds < 0 {
		return errors.New("config: sessionTtlSeconds must be >= 0")
	}
	if cfg.IntakeStartsPerMinute < 0 {
		return errors.New("config: intakeStartsPerMinute must be >= 0")
	}
	if cfg.IntakeStartsPerMinute > 0 && cfg.RedisAddr == "" {
		return errors.New("config: intakeStartsPerMinute requires redisAddr")
	}
	return nil
}
