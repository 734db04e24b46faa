package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"github.com/goodbooks/goodbooks-service/pkg/kafka"
	"github.com/goodbooks/goodbooks-service/pkg/logger"
	"github.com/goodbooks/goodbooks-service/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port         string        `envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration
}

// Ratings points at the remote aggregate-rating service.
type Ratings struct {
	BaseURL string `envconfig:"RATINGS_BASE_URL" default:"https://www.goodreads.com"`
	Key     string `envconfig:"RATINGS_API_KEY"`
}

type JWT struct {
	Key string        `envconfig:"JWT_KEY" required:"true" json:"-"`
	TTL time.Duration `envconfig:"JWT_TTL" default:"24h"`
}

type Config struct {
	Server   HTTPServer `json:"server"`
	Database postgres.Config
	Ratings  Ratings
	Kafka    kafka.Config
	JWT      JWT
	Log      logger.Log `json:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = timeout
	}
}
