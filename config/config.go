package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Port             string        `mapstructure:"PORT"`
	Env              string        `mapstructure:"ENV"`
	LogLevel         string        `mapstructure:"LOG_LEVEL"`
	MongoEnabled     bool          `mapstructure:"MONGO_ENABLED"`
	MongoURI         string        `mapstructure:"MONGO_URI"`
	MongoDatabase    string        `mapstructure:"MONGO_DATABASE"`
	CacheEnabled     bool          `mapstructure:"CACHE_ENABLED"`
	RedisAddr        string        `mapstructure:"REDIS_ADDR"`
	RedisPassword    string        `mapstructure:"REDIS_PASSWORD"`
	RedisDB          int           `mapstructure:"REDIS_DB"`
	CacheTTL         time.Duration `mapstructure:"CACHE_TTL"`
	JWTSecret        string        `mapstructure:"JWT_SECRET"`
	TokenTTL         time.Duration `mapstructure:"TOKEN_TTL"`
	BcryptCost       int           `mapstructure:"BCRYPT_COST"`
	CORSOrigins      []string      `mapstructure:"CORS_ORIGINS"`
	LegacyOpenRoutes bool          `mapstructure:"LEGACY_OPEN_ROUTES"`
	JobsEnabled      bool          `mapstructure:"JOBS_ENABLED"`
	EventsDriver     string        `mapstructure:"EVENTS_DRIVER"`
	AMQPURL          string        `mapstructure:"AMQP_URL"`
	KafkaBrokers     []string      `mapstructure:"KAFKA_BROKERS"`
	EventsTopic      string        `mapstructure:"EVENTS_TOPIC"`
	RequestTimeout   time.Duration `mapstructure:"REQUEST_TIMEOUT"`
}

var defaults = map[string]interface{}{
	"PORT":               "5000",
	"ENV":                "development",
	"LOG_LEVEL":          "info",
	"MONGO_ENABLED":      true,
	"MONGO_URI":          "mongodb://localhost:27017",
	"MONGO_DATABASE":     "medibook",
	"CACHE_ENABLED":      false,
	"REDIS_ADDR":         "localhost:6379",
	"REDIS_PASSWORD":     "",
	"REDIS_DB":           0,
	"CACHE_TTL":          "10m",
	"JWT_SECRET":         "",
	"TOKEN_TTL":          "8h",
	"BCRYPT_COST":        10,
	"CORS_ORIGINS":       "*",
	"LEGACY_OPEN_ROUTES": false,
	"JOBS_ENABLED":       true,
	"EVENTS_DRIVER":      "none",
	"AMQP_URL":           "",
	"KAFKA_BROKERS":      "",
	"EVENTS_TOPIC":       "booking.events",
	"REQUEST_TIMEOUT":    "15s",
}

// Load reads configuration from the process environment. A .env file is
// expected to have been loaded into the environment already.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.CORSOrigins = splitList(v.GetString("CORS_ORIGINS"))
	cfg.KafkaBrokers = splitList(v.GetString("KAFKA_BROKERS"))
	cfg.EventsDriver = strings.ToLower(strings.TrimSpace(cfg.EventsDriver))
	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate refuses configurations the server must not start with. There is
// no built-in signing secret in any environment.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.IsProduction() && len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters in production")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("TOKEN_TTL must be positive, got %s", c.TokenTTL)
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("BCRYPT_COST must be between %d and %d, got %d", bcrypt.MinCost, bcrypt.MaxCost, c.BcryptCost)
	}
	if c.MongoEnabled && c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required when MONGO_ENABLED is true")
	}
	switch c.EventsDriver {
	case "", "none":
	case "rabbitmq":
		if c.AMQPURL == "" {
			return fmt.Errorf("AMQP_URL is required when EVENTS_DRIVER is rabbitmq")
		}
	case "kafka":
		if len(c.KafkaBrokers) == 0 {
			return fmt.Errorf("KAFKA_BROKERS is required when EVENTS_DRIVER is kafka")
		}
	default:
		return fmt.Errorf("EVENTS_DRIVER must be \"none\", \"rabbitmq\" or \"kafka\", got %q", c.EventsDriver)
	}
	return nil
}
