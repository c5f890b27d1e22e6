package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores dispatch service settings.
type Config struct {
	Port     int
	DB       DB
	Kafka    Kafka
	Redis    Redis
	Geocode  Geocode
	Dispatch Dispatch
}

// DB stores Postgres connection settings.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a pgx connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		d.User, d.Pass, d.Host, d.Port, d.Name)
}

// Kafka stores broker and topic settings. Empty brokers disable both the
// order-events consumer and the notification producer.
type Kafka struct {
	Brokers       []string
	OrdersTopic   string
	GroupID       string
	CourierTopic  string
	CustomerTopic string
}

// Redis stores the notified-order set backing store settings. An empty Addr
// selects the in-process store.
type Redis struct {
	Addr string
	TTL  time.Duration
}

// Geocode stores geocoding gateway settings. An empty APIKey disables the
// capability; resolution then fails with GEOCODING_UNAVAILABLE.
type Geocode struct {
	APIKey      string
	Timeout     time.Duration
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Dispatch stores matching engine settings.
type Dispatch struct {
	RadiusKm         float64
	OperationTimeout time.Duration
	EarningsRate     float64
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	cfg := &Config{
		Port:     DefaultPort(),
		DB:       DefaultDB(),
		Kafka:    DefaultKafka(),
		Redis:    DefaultRedis(),
		Geocode:  DefaultGeocode(),
		Dispatch: DefaultDispatch(),
	}

	cfg.Port = envInt("PORT", cfg.Port)
	cfg.DB.Host = envStr("DB_HOST", cfg.DB.Host)
	cfg.DB.Port = envStr("DB_PORT", cfg.DB.Port)
	cfg.DB.User = envStr("DB_USER", cfg.DB.User)
	cfg.DB.Pass = envStr("DB_PASS", cfg.DB.Pass)
	cfg.DB.Name = envStr("DB_NAME", cfg.DB.Name)

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = splitCSV(v)
	}
	cfg.Kafka.OrdersTopic = envStr("KAFKA_ORDERS_TOPIC", cfg.Kafka.OrdersTopic)
	cfg.Kafka.GroupID = envStr("KAFKA_GROUP_ID", cfg.Kafka.GroupID)
	cfg.Kafka.CourierTopic = envStr("KAFKA_COURIER_TOPIC", cfg.Kafka.CourierTopic)
	cfg.Kafka.CustomerTopic = envStr("KAFKA_CUSTOMER_TOPIC", cfg.Kafka.CustomerTopic)

	cfg.Redis.Addr = envStr("REDIS_ADDR", cfg.Redis.Addr)

	cfg.Geocode.APIKey = envStr("GEOCODING_API_KEY", cfg.Geocode.APIKey)
	cfg.Geocode.Timeout = envDuration("GEOCODING_TIMEOUT", cfg.Geocode.Timeout)

	cfg.Dispatch.RadiusKm = envFloat("DISPATCH_RADIUS_KM", cfg.Dispatch.RadiusKm)
	cfg.Dispatch.OperationTimeout = envDuration("DISPATCH_OPERATION_TIMEOUT", cfg.Dispatch.OperationTimeout)

	fs := pflag.NewFlagSet("dispatch", pflag.ContinueOnError)
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	fs.Float64Var(&cfg.Dispatch.RadiusKm, "radius-km", cfg.Dispatch.RadiusKm, "courier matching radius in kilometres")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.Dispatch.RadiusKm <= 0 {
		return nil, fmt.Errorf("invalid dispatch radius: %f", cfg.Dispatch.RadiusKm)
	}
	return cfg, nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
