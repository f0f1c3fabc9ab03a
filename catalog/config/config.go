package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Astemirdum/library-catalog/pkg/circuit_breaker"
	"github.com/Astemirdum/library-catalog/pkg/kafka"
	"github.com/Astemirdum/library-catalog/pkg/logger"
	"github.com/Astemirdum/library-catalog/pkg/postgres"
	"github.com/Astemirdum/library-catalog/pkg/sqlite"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"CATALOG_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"CATALOG_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE" default:"10s"`
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Database struct {
	Driver   string `envconfig:"DB_DRIVER" default:"sqlite"`
	Postgres postgres.DB
	SQLite   sqlite.DB
}

type Payment struct {
	// BaseURL of the payment provider. Empty selects the in-process sandbox.
	BaseURL string        `envconfig:"PAYMENT_BASE_URL"`
	APIKey  string        `envconfig:"PAYMENT_API_KEY" json:"-"`
	Timeout time.Duration `envconfig:"PAYMENT_TIMEOUT" default:"10s"`
	CB      circuit_breaker.Config
}

func (p Payment) Sandbox() bool {
	return p.BaseURL == ""
}

type Config struct {
	Server   HTTPServer `yaml:"server"`
	Database Database
	Kafka    kafka.Config
	Payment  Payment
	Log      logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment. Options are applied on top.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		for _, op := range ops {
			op(&config)
		}
		if err := config.validate(); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func (c Config) validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
		return nil
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", c.Database.Driver)
	}
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
