package configs

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	HTTP  HTTPConfig  `yaml:"http"`
	GRPC  GRPCConfig  `yaml:"grpc"`
	DB    DBConfig    `yaml:"db"`
	Kafka KafkaConfig `yaml:"kafka"`
	Redis RedisConfig `yaml:"redis"`
	Log   LogConfig   `yaml:"log"`
}

type HTTPConfig struct {
	Address         string        `yaml:"address" env:"HTTP_ADDRESS"`
	ReadTimeout     time.Duration `yaml:"read_timeout" env:"HTTP_READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" env:"HTTP_WRITE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"HTTP_SHUTDOWN_TIMEOUT"`
}

type GRPCConfig struct {
	Address        string        `yaml:"address" env:"GRPC_ADDRESS"`
	HealthInterval time.Duration `yaml:"health_interval" env:"GRPC_HEALTH_INTERVAL"`
}

type DBConfig struct {
	Host           string `yaml:"host" env:"DB_HOST"`
	Port           int    `yaml:"port" env:"DB_PORT"`
	User           string `yaml:"user" env:"DB_USER"`
	Password       string `yaml:"password" env:"DB_PASSWORD"` //nolint:gosec // config struct, not hardcoded cred
	DBName         string `yaml:"dbname" env:"DB_NAME"`
	SSLMode        string `yaml:"sslmode" env:"DB_SSL_MODE"`
	MaxConns       int    `yaml:"max_conns" env:"DB_MAX_CONNS"`
	MinConns       int    `yaml:"min_conns" env:"DB_MIN_CONNS"`
	AutoMigrate    bool   `yaml:"auto_migrate" env:"DB_AUTO_MIGRATE"`
	MigrationsPath string `yaml:"migrations_path" env:"DB_MIGRATIONS_PATH"`
}

type KafkaConfig struct {
	Brokers         []string      `yaml:"brokers" env:"KAFKA_BROKERS"`
	PaymentTopic    string        `yaml:"payment_topic" env:"KAFKA_PAYMENT_TOPIC"`
	EventsTopic     string        `yaml:"events_topic" env:"KAFKA_EVENTS_TOPIC"`
	GroupID         string        `yaml:"group_id" env:"KAFKA_GROUP_ID"`
	WorkerPoolSize  int           `yaml:"worker_pool_size" env:"KAFKA_WORKER_POOL_SIZE"`
	ConnectAttempts int           `yaml:"connect_attempts" env:"KAFKA_CONNECT_ATTEMPTS"`
	ConnectDelay    time.Duration `yaml:"connect_delay" env:"KAFKA_CONNECT_DELAY"`
}

// RedisConfig is optional; with an empty Addr payment events are not
// deduplicated.
type RedisConfig struct {
	Addr      string        `yaml:"addr" env:"REDIS_ADDR"`
	Password  string        `yaml:"password" env:"REDIS_PASSWORD"` //nolint:gosec // config struct, not hardcoded cred
	DB        int           `yaml:"db" env:"REDIS_DB"`
	DedupeTTL time.Duration `yaml:"dedupe_ttl" env:"REDIS_DEDUPE_TTL"`
}

type LogConfig struct {
	Level string `yaml:"level" env:"LOG_LEVEL"`
}

// Load reads the YAML config file, applies environment overrides and
// defaults, and validates the result. The file is optional unless
// CONFIG_PATH names one explicitly.
func Load() (*Config, error) {
	var cfg Config

	configPath, explicit := getConfigPath()
	data, err := os.ReadFile(configPath) //nolint:gosec // config path from env/flag
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	case explicit || !errors.Is(err, os.ErrNotExist):
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := cleanenv.UpdateEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	setDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func getConfigPath() (string, bool) {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path, true
	}

	possiblePaths := []string{
		"config/config.yaml",
		"/etc/homework-service/config.yaml",
		"./config.yaml",
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			return path, false
		}
	}

	return "config.yaml", false
}

func setDefaults(cfg *Config) {
	if cfg.HTTP.Address == "" {
		cfg.HTTP.Address = ":8080"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 10 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 10 * time.Second
	}
	if cfg.HTTP.ShutdownTimeout == 0 {
		cfg.HTTP.ShutdownTimeout = 15 * time.Second
	}

	if cfg.GRPC.Address == "" {
		cfg.GRPC.Address = ":50052"
	}
	if cfg.GRPC.HealthInterval == 0 {
		cfg.GRPC.HealthInterval = 15 * time.Second
	}

	if cfg.DB.Port == 0 {
		cfg.DB.Port = 5432
	}
	if cfg.DB.SSLMode == "" {
		cfg.DB.SSLMode = "disable"
	}
	if cfg.DB.MigrationsPath == "" {
		cfg.DB.MigrationsPath = "migrations"
	}

	if cfg.Kafka.PaymentTopic == "" {
		cfg.Kafka.PaymentTopic = "payment-success"
	}
	if cfg.Kafka.GroupID == "" {
		cfg.Kafka.GroupID = "homework-service-group"
	}
	if cfg.Kafka.WorkerPoolSize == 0 {
		cfg.Kafka.WorkerPoolSize = 5
	}
	if cfg.Kafka.ConnectAttempts == 0 {
		cfg.Kafka.ConnectAttempts = 10
	}
	if cfg.Kafka.ConnectDelay == 0 {
		cfg.Kafka.ConnectDelay = 5 * time.Second
	}

	if cfg.Redis.DedupeTTL == 0 {
		cfg.Redis.DedupeTTL = 24 * time.Hour
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

func validateConfig(cfg *Config) error {
	if len(cfg.Kafka.Brokers) == 0 {
		return fmt.Errorf("at least one Kafka broker must be specified")
	}

	if cfg.Kafka.WorkerPoolSize < 0 || cfg.Kafka.ConnectAttempts < 0 {
		return fmt.Errorf("kafka worker pool size and connect attempts must be positive")
	}

	if cfg.DB.Host == "" || cfg.DB.User == "" || cfg.DB.DBName == "" {
		return fmt.Errorf("database configuration is incomplete")
	}

	if cfg.DB.MinConns > cfg.DB.MaxConns && cfg.DB.MaxConns > 0 {
		return fmt.Errorf("db min_conns (%d) exceeds max_conns (%d)", cfg.DB.MinConns, cfg.DB.MaxConns)
	}

	return nil
}
