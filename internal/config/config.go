package config

import (
	"os"
	"strings"
	"time"

	"turnos/queue-service/internal/constant"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type AppEnv string

const (
	ProductionEnv AppEnv = "production"
	StageEnv      AppEnv = "stage"
	DevelopEnv    AppEnv = "develop"
	LocalEnv      AppEnv = "local"
	TestEnv       AppEnv = "test"
)

type (
	Config struct {
		AppEnv      AppEnv    `mapstructure:"app_env"`
		LogLevel    string    `mapstructure:"log_level"`
		HTTP        HTTP      `mapstructure:"http"`
		Redis       Redis     `mapstructure:"redis"`
		Kafka       Kafka     `mapstructure:"kafka"`
		RateLimit   RateLimit `mapstructure:"rate_limit"`
		WorkerCount int       `mapstructure:"worker_count"`
	}

	HTTP struct {
		Port int `mapstructure:"port"`
	}

	// Redis is optional. An empty Host keeps stats in memory.
	Redis struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		Password string `mapstructure:"password"`
		Database int    `mapstructure:"database"`
	}

	// Kafka is optional. An empty Host disables event publishing.
	Kafka struct {
		Host  string `mapstructure:"host"`
		Port  int    `mapstructure:"port"`
		Topic string `mapstructure:"topic"`
	}

	RateLimit struct {
		Enabled bool          `mapstructure:"enabled"`
		RPS     float64       `mapstructure:"rps"`
		Burst   int           `mapstructure:"burst"`
		IdleTTL time.Duration `mapstructure:"idle_ttl"`
	}
)

// Load reads configuration from defaults, an optional file pointed to by
// TURNOS_CONFIG and TURNOS_* environment variables, in increasing precedence.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("app_env", string(LocalEnv))
	v.SetDefault("log_level", "info")
	v.SetDefault("http.port", 3000)
	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.database", 0)
	v.SetDefault("kafka.host", "")
	v.SetDefault("kafka.port", 9092)
	v.SetDefault("kafka.topic", constant.KafkaTopic)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.rps", 5.0)
	v.SetDefault("rate_limit.burst", 10)
	v.SetDefault("rate_limit.idle_ttl", 15*time.Minute)
	v.SetDefault("worker_count", 2)

	if path := os.Getenv("TURNOS_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "config : failed to read %s", path)
		}
	}

	v.SetEnvPrefix("TURNOS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "config : failed to unmarshal")
	}

	return &cfg, nil
}
