package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Config struct {
	HTTPPort   string `env:"HTTP_PORT" envDefault:"8080"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBName     string `env:"DB_NAME" envDefault:"jibekjoly"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	JWTSecret  string `env:"JWT_SECRET,required"`

	// Empty KafkaBrokers disables the outbox relay; events stay in the outbox.
	KafkaBrokers           string `env:"KAFKA_BROKERS" envDefault:""`
	KafkaOrderChangedTopic string `env:"KAFKA_ORDER_CHANGED_TOPIC" envDefault:"order.changed"`
	OutboxBatchSize        int    `env:"OUTBOX_BATCH_SIZE" envDefault:"100"`
}

// LoadConfig reads an optional .env file, then the environment, then command line
// flags. Later sources win.
func LoadConfig(envFile string, args []string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}

	flags := pflag.NewFlagSet("jibekjoly", pflag.ContinueOnError)
	flags.StringVarP(&c.HTTPPort, "port", "p", c.HTTPPort, "HTTP listen port.")
	flags.StringVar(&c.DBHost, "db-host", c.DBHost, "Database host.")
	flags.StringVar(&c.DBPort, "db-port", c.DBPort, "Database port.")
	flags.StringVar(&c.DBName, "db-name", c.DBName, "Database name.")
	flags.StringVarP(&c.LogLevel, "log-level", "l", c.LogLevel, "Log level.")
	flags.StringVar(&c.KafkaBrokers, "kafka-brokers", c.KafkaBrokers, "Comma separated Kafka brokers.")
	if err := flags.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	if c.OutboxBatchSize <= 0 {
		return Config{}, fmt.Errorf("OUTBOX_BATCH_SIZE must be positive, got %d", c.OutboxBatchSize)
	}
	return c, nil
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) KafkaBrokersSlice() []string {
	parts := strings.Split(c.KafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
