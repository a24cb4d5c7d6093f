package config

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type HTTPServer struct {
	Addr string `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
}

type Database struct {
	Host            string        `yaml:"PG_HOST" env:"PG_HOST" env-default:"localhost"`
	Port            string        `yaml:"PG_PORT" env:"PG_PORT" env-default:"5432"`
	User            string        `yaml:"PG_USER" env:"PG_USER" env-required:"true"`
	Password        string        `yaml:"PG_PASSWORD" env:"PG_PASSWORD" env-required:"true"`
	Name            string        `yaml:"PG_DBNAME" env:"PG_DBNAME" env-required:"true"`
	SSLMode         string        `yaml:"PG_SSLMODE" env:"PG_SSLMODE" env-default:"require"`
	MaxOpenConns    int           `yaml:"MAX_OPEN_CONNS" env:"PG_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `yaml:"MAX_IDLE_CONNS" env:"PG_MAX_IDLE_CONNS" env-default:"25"`
	ConnMaxLifetime time.Duration `yaml:"CONN_MAX_LIFETIME" env:"PG_CONN_MAX_LIFETIME" env-default:"5m"`
	ConnMaxIdleTime time.Duration `yaml:"CONN_MAX_IDLE_TIME" env:"PG_CONN_MAX_IDLE_TIME" env-default:"1m"`
	MigrateOnStart  bool          `yaml:"MIGRATE_ON_START" env:"PG_MIGRATE_ON_START" env-default:"true"`
}

type RedisConnect struct {
	Host     string `yaml:"REDIS_HOST" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"REDIS_PORT" env:"REDIS_PORT" env-default:"6379"`
	Username string `yaml:"REDIS_USER" env:"REDIS_USER" env-required:"true"`
	Password string `yaml:"REDIS_PASSWORD" env:"REDIS_PASSWORD" env-required:"true"`
	DB       int    `yaml:"REDIS_DB" env:"REDIS_DB" env-default:"0"`
}

// limits anonymous requests (newsletter, contact, checkout, order lookup) per client IP
type RateConfig struct {
	MaxAttempts int64         `yaml:"MAX_ATTEMPTS" env:"MAX_ATTEMPTS" env-default:"5"`
	WindowSize  time.Duration `yaml:"WINDOW_SIZE" env:"WINDOW_SIZE" env-default:"1m"`
}

type Stripe struct {
	APIKey        string `yaml:"STRIPE_API_KEY" env:"STRIPE_API_KEY" env-default:""`
	WebhookSecret string `yaml:"STRIPE_WEBHOOK_SECRET" env:"STRIPE_WEBHOOK_SECRET" env-default:""`
	SuccessPath   string `yaml:"STRIPE_SUCCESS_PATH" env:"STRIPE_SUCCESS_PATH" env-default:"/checkout/success?order={ORDER_ID}"`
	CancelPath    string `yaml:"STRIPE_CANCEL_PATH" env:"STRIPE_CANCEL_PATH" env-default:"/cart?checkout=cancelled"`
}

type Fulfillment struct {
	APIKey         string        `yaml:"API_KEY" env:"FULFILLMENT_API_KEY" env-default:""`
	BaseURL        string        `yaml:"BASE_URL" env:"FULFILLMENT_BASE_URL" env-default:"https://api.printful.com"`
	WebhookSecret  string        `yaml:"WEBHOOK_SECRET" env:"FULFILLMENT_WEBHOOK_SECRET" env-default:""`
	ConfirmOrders  bool          `yaml:"CONFIRM_ORDERS" env:"FULFILLMENT_CONFIRM_ORDERS" env-default:"false"`
	Timeout        time.Duration `yaml:"TIMEOUT" env:"FULFILLMENT_TIMEOUT" env-default:"30s"`
	RequestsPerSec float64       `yaml:"REQUESTS_PER_SEC" env:"FULFILLMENT_REQUESTS_PER_SEC" env-default:"2"`
	Burst          int           `yaml:"BURST" env:"FULFILLMENT_BURST" env-default:"5"`
}

type SendGrid struct {
	APIKey       string `yaml:"API_KEY" env:"SENDGRID_API_KEY" env-default:""`
	FromEmail    string `yaml:"FROM_EMAIL" env:"SENDGRID_FROM_EMAIL" env-default:"shop@example.com"`
	FromName     string `yaml:"FROM_NAME" env:"SENDGRID_FROM_NAME" env-default:"Storefront"`
	ContactInbox string `yaml:"CONTACT_INBOX" env:"SENDGRID_CONTACT_INBOX" env-default:"support@example.com"`
}

type Security struct {
	JWTKey string `yaml:"JWT_KEY" env:"JWT_KEY" env-required:"true"`
}

type OTel struct {
	ServiceName      string  `yaml:"SERVICE_NAME" env:"OTEL_SERVICE_NAME" env-default:"pod-storefront"`
	ExporterEndpoint string  `yaml:"EXPORTER_ENDPOINT" env:"OTEL_EXPORTER_OTLP_ENDPOINT" env-default:""`
	SamplerRatio     float64 `yaml:"SAMPLER_RATIO" env:"OTEL_SAMPLER_RATIO" env-default:"1.0"`
}

type CacheConfig struct {
	DefaultTTL time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"5m"`
	KeyPrefix  string        `yaml:"key_prefix" env:"CACHE_KEY_PREFIX" env-default:"storefront"`
}

type ExchangeRates struct {
	Sources  []string           `yaml:"sources" env:"EXCHANGE_RATE_SOURCES" env-default:"https://api.frankfurter.app/latest?from=EUR,https://open.er-api.com/v6/latest/EUR"`
	TTL      time.Duration      `yaml:"ttl" env:"EXCHANGE_RATE_TTL" env-default:"1h"`
	Timeout  time.Duration      `yaml:"timeout" env:"EXCHANGE_RATE_TIMEOUT" env-default:"5s"`
	Fallback map[string]float64 `yaml:"fallback" env:"EXCHANGE_RATE_FALLBACK" env-default:"EUR:1.0,CZK:25.0,GBP:0.86"`
	Shared   bool               `yaml:"shared" env:"EXCHANGE_RATE_SHARED_CACHE" env-default:"false"`
}

type PricingZone struct {
	Name       string   `yaml:"name"`
	Multiplier float64  `yaml:"multiplier"`
	Countries  []string `yaml:"countries"`
}

type Pricing struct {
	Zones           []PricingZone     `yaml:"zones"`
	DefaultCurrency string            `yaml:"default_currency" env:"PRICING_DEFAULT_CURRENCY" env-default:"EUR"`
	ShippingFeeEUR  float64           `yaml:"shipping_fee_eur" env:"PRICING_SHIPPING_FEE_EUR" env-default:"4.99"`
	Rounding        map[string]string `yaml:"rounding" env:"PRICING_ROUNDING" env-default:"EUR:charm,CZK:charm,GBP:charm,USD:charm"`
}

type Kafka struct {
	Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-default:""`
	Topic   string   `yaml:"topic" env:"KAFKA_ORDER_TOPIC" env-default:"order-events"`
}

type Config struct {
	Env           string `yaml:"env" env:"ENV" env-required:"true"`
	BaseURL       string `yaml:"base_url" env:"BASE_URL" env-default:"http://localhost:3000"`
	HTTPServer    `yaml:"http_server"`
	Database      Database      `yaml:"database"`
	RedisConnect  RedisConnect  `yaml:"redis"`
	RateConfig    RateConfig    `yaml:"rateConfig"`
	Stripe        Stripe        `yaml:"stripe"`
	Fulfillment   Fulfillment   `yaml:"fulfillment"`
	SendGrid      SendGrid      `yaml:"sendgrid"`
	Security      Security      `yaml:"security"`
	OTel          OTel          `yaml:"otel"`
	Cache         CacheConfig   `yaml:"cache"`
	ExchangeRates ExchangeRates `yaml:"exchange_rates"`
	Pricing       Pricing       `yaml:"pricing"`
	Kafka         Kafka         `yaml:"kafka"`
}

const defaultConfigPath = "./config/local.yaml"

// resolves the config path: CONFIG_PATH, then the -config flag, then ./config/local.yaml
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")

	if configPath == "" {
		flags := flag.String("config", "", "path to the config file")
		flag.Parse()

		configPath = *flags

		if configPath == "" {
			configPath = defaultConfigPath
		}
	}

	cfg, err := LoadConfigFromPath(configPath)
	if err != nil {
		log.Fatalf("can not load config: %s", err.Error())
	}

	return cfg
}

func LoadConfigFromPath(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, errors.New("config path is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("can not read config file: %w", err)
	}

	if len(cfg.Pricing.Zones) == 0 {
		cfg.Pricing.Zones = DefaultZones()
	}

	return &cfg, nil
}

// DefaultZones is the single country -> multiplier table used when the config file defines none.
func DefaultZones() []PricingZone {
	return []PricingZone{
		{
			Name:       "western_europe",
			Multiplier: 1.15,
			Countries:  []string{"AT", "BE", "CH", "DE", "DK", "ES", "FI", "FR", "GB", "IE", "IT", "LU", "NL", "NO", "PT", "SE"},
		},
		{
			Name:       "central_europe",
			Multiplier: 1.08,
			Countries:  []string{"CZ", "HR", "HU", "PL", "SI", "SK"},
		},
	}
}

func (d *Database) GetDSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode)
}

func (r *RedisConnect) GetDSN() string {
	return fmt.Sprintf("redis://%s:%s@%s:%s", r.Username, r.Password, r.Host, r.Port)
}

// KafkaEnabled reports whether any broker is configured.
func (k *Kafka) KafkaEnabled() bool {
	for _, b := range k.Brokers {
		if strings.TrimSpace(b) != "" {
			return true
		}
	}

	return false
}
