package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"

	MinBoardSize = 3
	MaxBoardSize = 32
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	BoardSize int    `yaml:"board-size" env:"BOARD_SIZE" env-default:"3"`
	Seed      uint64 `yaml:"seed" env:"SEED" env-default:"0"`
	Storage   string `yaml:"storage" env:"STORAGE" env-default:"memory"`
	Redis     Redis  `yaml:"redis"`
}

type Redis struct {
	Host     string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int           `yaml:"db" env:"REDIS_DB" env-default:"0"`
	TTL      time.Duration `yaml:"ttl" env:"REDIS_TTL" env-default:"24h"`
}

// Load - reads the config file at path, or only the environment when the file does not exist.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); statErr == nil {
		err = cleanenv.ReadConfig(path, config)
	} else {
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	if that.BoardSize < MinBoardSize || that.BoardSize > MaxBoardSize {
		return fmt.Errorf("%w: board-size %d out of range [%d, %d]", ErrInvalidConfig, that.BoardSize, MinBoardSize, MaxBoardSize)
	}

	switch that.Storage {
	case StorageMemory, StorageRedis:
	default:
		return fmt.Errorf("%w: unknown storage %q", ErrInvalidConfig, that.Storage)
	}

	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log-level %q", ErrInvalidConfig, that.LogLevel)
	}

	if that.Redis.TTL < 0 {
		return fmt.Errorf("%w: negative redis ttl", ErrInvalidConfig)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
