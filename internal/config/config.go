package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// InsecureSecret is the fallback for JWT_SECRET and COOKIE_SECRET when they
// are unset. It is public knowledge and must never reach production.
const InsecureSecret = "supersecret"

const EnvProduction = "production"

type Commerce struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

type Cache struct {
	Cap            int
	StaleTime      time.Duration
	RefetchWorkers int
}

type Database struct {
	URL    string
	Schema string
}

type Kafka struct {
	Brokers    []string
	Topic      string
	Group      string
	Workers    int
	Partitions int
}

// CORS holds allow-lists per API surface.
type CORS struct {
	Store []string
	Admin []string
	Auth  []string
}

type Secrets struct {
	JWT    string
	Cookie string
}

type Breaker struct {
	Threshold   int
	OpenTimeout time.Duration
	MaxHalfOpen int
}

type Retry struct {
	Attempts     int
	Base         time.Duration
	Max          time.Duration
	JitterFactor float64
}

type Config struct {
	HTTPAddr   string
	Env        string
	InstanceID string

	Commerce Commerce
	Cache    Cache
	DB       Database
	Kafka    Kafka
	CORS     CORS
	Secrets  Secrets
	Breaker  Breaker
	Retry    Retry

	// Warnings collects non-fatal adjustments made while loading.
	Warnings []string
}

// Load reads env/.env when present and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load("env/.env")

	cfg := Config{
		HTTPAddr:   envDefault("HTTP_ADDR", ":9000"),
		Env:        envDefault("APP_ENV", "development"),
		InstanceID: strings.TrimSpace(os.Getenv("INSTANCE_ID")),

		Commerce: Commerce{
			BaseURL: strings.TrimRight(strings.TrimSpace(os.Getenv("COMMERCE_API_URL")), "/"),
			Token:   strings.TrimSpace(os.Getenv("COMMERCE_API_TOKEN")),
		},

		DB: Database{
			URL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
			Schema: envDefault("DB_SCHEMA", "public"),
		},

		Kafka: Kafka{
			Brokers: splitCSV(strings.TrimSpace(os.Getenv("KAFKA_BROKERS"))),
			Topic:   envDefault("KAFKA_TOPIC", "admin-cache-invalidations"),
			Group:   strings.TrimSpace(os.Getenv("KAFKA_GROUP")),
		},

		CORS: CORS{
			Store: splitCSV(strings.TrimSpace(os.Getenv("STORE_CORS"))),
			Admin: splitCSV(strings.TrimSpace(os.Getenv("ADMIN_CORS"))),
			Auth:  splitCSV(strings.TrimSpace(os.Getenv("AUTH_CORS"))),
		},

		Secrets: Secrets{
			JWT:    envDefault("JWT_SECRET", InsecureSecret),
			Cookie: envDefault("COOKIE_SECRET", InsecureSecret),
		},
	}

	var w []string
	cfg.Commerce.Timeout = envDurationMS("COMMERCE_TIMEOUT", 10*time.Second, &w)
	cfg.Cache = Cache{
		Cap:            envInt("CACHE_CAP", 1000, &w),
		StaleTime:      envDurationMS("CACHE_STALE_TIME", 30*time.Second, &w),
		RefetchWorkers: envInt("CACHE_REFETCH_WORKERS", 4, &w),
	}
	cfg.Kafka.Workers = envInt("KAFKA_WORKERS", 4, &w)
	cfg.Kafka.Partitions = envInt("KAFKA_PARTITIONS", 3, &w)
	cfg.Breaker = Breaker{
		Threshold:   envInt("BREAKER_THRESHOLD", 5, &w),
		OpenTimeout: envDurationMS("BREAKER_OPENTIMEOUT", 10*time.Second, &w),
		MaxHalfOpen: envInt("BREAKER_MAXHALFOPEN", 3, &w),
	}
	cfg.Retry = Retry{
		Attempts:     envInt("RETRY_ATTEMPTS", 3, &w),
		Base:         envDurationMS("RETRY_BASE", 200*time.Millisecond, &w),
		Max:          envDurationMS("RETRY_MAX", 5*time.Second, &w),
		JitterFactor: envFloat64("RETRY_JITTERFACTOR", 0.3, &w),
	}
	cfg.Warnings = w

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	cfg.normalize()
	return cfg, nil
}

// InsecureDefaults names the secrets that fell back to InsecureSecret.
func (c Config) InsecureDefaults() []string {
	var out []string
	if c.Secrets.JWT == InsecureSecret {
		out = append(out, "JWT_SECRET")
	}
	if c.Secrets.Cookie == InsecureSecret {
		out = append(out, "COOKIE_SECRET")
	}
	return out
}

func (c Config) IsProduction() bool { return c.Env == EnvProduction }

func (c Config) KafkaEnabled() bool { return len(c.Kafka.Brokers) > 0 }

func (c Config) validate() error {
	var missing []string
	if c.Commerce.BaseURL == "" {
		missing = append(missing, "COMMERCE_API_URL")
	}
	if c.KafkaEnabled() && c.Kafka.Topic == "" {
		missing = append(missing, "KAFKA_TOPIC")
	}
	if len(missing) > 0 {
		return &missingEnvError{Keys: missing}
	}

	if u, err := url.Parse(c.Commerce.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid COMMERCE_API_URL %q", c.Commerce.BaseURL)
	}

	if c.IsProduction() {
		if insecure := c.InsecureDefaults(); len(insecure) > 0 {
			return &insecureSecretError{Keys: insecure}
		}
	}
	return nil
}

func (c *Config) normalize() {
	if c.Cache.Cap <= 0 {
		c.Warnings = append(c.Warnings, fmt.Sprintf("CACHE_CAP is %d, adjusting to 1", c.Cache.Cap))
		c.Cache.Cap = 1
	}
	if c.Cache.RefetchWorkers <= 0 {
		c.Cache.RefetchWorkers = 1
	}
	if c.Retry.Attempts < 1 {
		c.Warnings = append(c.Warnings, fmt.Sprintf("RETRY_ATTEMPTS is %d, adjusting to 1", c.Retry.Attempts))
		c.Retry.Attempts = 1
	}
	if c.Retry.Base <= 0 {
		c.Retry.Base = 100 * time.Millisecond
	}
	if c.Retry.Max < c.Retry.Base {
		c.Warnings = append(c.Warnings, fmt.Sprintf("RETRY_MAX (%v) < RETRY_BASE (%v), adjusting max to base", c.Retry.Max, c.Retry.Base))
		c.Retry.Max = c.Retry.Base
	}
	if c.InstanceID == "" {
		c.InstanceID = uuid.NewString()
	}
	// Every instance must see every event, so groups are per instance.
	if c.Kafka.Group == "" {
		c.Kafka.Group = "orders-admin-" + c.InstanceID
	}
	if c.Kafka.Workers < 1 {
		c.Kafka.Workers = 1
	}
	if c.Kafka.Partitions < 1 {
		c.Kafka.Partitions = 1
	}
}

type missingEnvError struct{ Keys []string }

func (e *missingEnvError) Error() string {
	return "missing required envs: " + strings.Join(e.Keys, ", ")
}

type insecureSecretError struct{ Keys []string }

func (e *insecureSecretError) Error() string {
	return "insecure default secrets in production: " + strings.Join(e.Keys, ", ")
}

func envDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int, warn *[]string) int {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*warn = append(*warn, fmt.Sprintf("invalid %s=%q, using default %d: %v", k, v, def, err))
		return def
	}
	return n
}

func envFloat64(k string, def float64, warn *[]string) float64 {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		*warn = append(*warn, fmt.Sprintf("invalid %s=%q, using default %.3f: %v", k, v, def, err))
		return def
	}
	return f
}

// envDurationMS supports either plain integer milliseconds ("1500") or
// Go duration strings ("1.5s", "250ms", "2m").
func envDurationMS(k string, def time.Duration, warn *[]string) time.Duration {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	if strings.IndexFunc(v, func(r rune) bool { return r < '0' || r > '9' }) != -1 {
		d, err := time.ParseDuration(v)
		if err != nil {
			*warn = append(*warn, fmt.Sprintf("invalid %s=%q, using default %v: %v", k, v, def, err))
			return def
		}
		return d
	}
	ms, err := strconv.Atoi(v)
	if err != nil {
		*warn = append(*warn, fmt.Sprintf("invalid %s=%q, using default %v: %v", k, v, def, err))
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	out := make([]string, 0, len(raw))
	for _, p := range raw {
		t := strings.TrimSpace(p)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
