package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	Session  SessionConfig
	Signup   SignupConfig
	Pricing  PricingConfig
	Distance DistanceConfig
	Storage  StorageConfig
	Catalog  CatalogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host           string        `envconfig:"DB_HOST" default:"localhost"`
	Port           string        `envconfig:"DB_PORT" default:"5432"`
	User           string        `envconfig:"DB_USER" required:"true"`
	Password       string        `envconfig:"DB_PASSWORD" required:"true"`
	DBName         string        `envconfig:"DB_NAME" required:"true"`
	SSLMode        string        `envconfig:"DB_SSL_MODE" default:"require"`
	TimeZone       string        `envconfig:"DB_TIMEZONE" default:"America/Chicago"`
	MaxConns       int32         `envconfig:"DB_MAX_CONNS" default:"10"`
	MinConns       int32         `envconfig:"DB_MIN_CONNS" default:"0"`
	ConnectTimeout time.Duration `envconfig:"DB_CONNECT_TIMEOUT" default:"10s"`
	QueryTimeout   time.Duration `envconfig:"DB_QUERY_TIMEOUT" default:"30s"`
	AutoMigrate    bool          `envconfig:"DB_AUTO_MIGRATE" default:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Chicago"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-21600"` // -6*60*60
}

// SessionConfig controls the token handed out after a successful PIN verification.
type SessionConfig struct {
	Secret         string        `envconfig:"SESSION_SECRET" required:"true"`
	Duration       time.Duration `envconfig:"SESSION_DURATION" default:"720h"`
	CookieDomain   string        `envconfig:"SESSION_COOKIE_DOMAIN" default:""`
	CookieSecure   bool          `envconfig:"SESSION_COOKIE_SECURE" default:"true"`
	CookieSameSite string        `envconfig:"SESSION_COOKIE_SAMESITE" default:"Lax"`
}

type SignupConfig struct {
	// Empty means any domain is accepted.
	AllowedDomains []string      `envconfig:"SIGNUP_ALLOWED_DOMAINS" default:""`
	PINTTL         time.Duration `envconfig:"SIGNUP_PIN_TTL" default:"15m"`
	SweepInterval  time.Duration `envconfig:"SIGNUP_SWEEP_INTERVAL" default:"5m"`
	PINHashCost    int           `envconfig:"SIGNUP_PIN_HASH_COST" default:"10"`
	// Logs issued PINs; only honored outside release mode.
	LogPIN bool `envconfig:"SIGNUP_LOG_PIN" default:"false"`
}

type PricingConfig struct {
	DiscountRate float64 `envconfig:"PRICING_DISCOUNT_RATE" default:"0.05"`
	APR          float64 `envconfig:"PRICING_APR" default:"0.0799"`
	TermMonths   int     `envconfig:"PRICING_TERM_MONTHS" default:"180"`
}

type DistanceConfig struct {
	BaseURL   string        `envconfig:"DISTANCE_API_URL" default:"https://maps.googleapis.com/maps/api/distancematrix/json"`
	APIKey    string        `envconfig:"DISTANCE_API_KEY" default:""`
	Timeout   time.Duration `envconfig:"DISTANCE_API_TIMEOUT" default:"10s"`
	BatchSize int           `envconfig:"DISTANCE_BATCH_SIZE" default:"25"`
}

type StorageConfig struct {
	Enabled    bool          `envconfig:"STORAGE_ENABLED" default:"false"`
	Bucket     string        `envconfig:"STORAGE_BUCKET" default:"rv-portal"`
	Region     string        `envconfig:"STORAGE_REGION" default:"us-east-1"`
	Endpoint   string        `envconfig:"STORAGE_ENDPOINT" default:""`
	AccessKey  string        `envconfig:"STORAGE_ACCESS_KEY" default:""`
	SecretKey  string        `envconfig:"STORAGE_SECRET_KEY" default:""`
	PresignTTL time.Duration `envconfig:"STORAGE_PRESIGN_TTL" default:"1h"`
	// Used for image URLs when object storage is disabled, e.g. https://cdn.example.com/units/%s.jpg
	PublicImagePattern string `envconfig:"STORAGE_PUBLIC_IMAGE_PATTERN" default:"/images/units/%s.jpg"`
}

type CatalogConfig struct {
	// Empty loads the embedded catalog.
	Path string `envconfig:"CATALOG_PATH" default:""`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:           "localhost",
			Port:           "15433", // Test DB port
			User:           "test",
			Password:       "test",
			DBName:         "test_db",
			SSLMode:        "disable",
			TimeZone:       "America/Chicago",
			MaxConns:       5,
			ConnectTimeout: 5 * time.Second,
			QueryTimeout:   5 * time.Second,
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Chicago",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -21600,
		},
		Session: SessionConfig{
			Secret:         "test-session-secret",
			Duration:       time.Hour,
			CookieSameSite: "Lax",
		},
		Signup: SignupConfig{
			AllowedDomains: []string{"partner.example.com"},
			PINTTL:         15 * time.Minute,
			SweepInterval:  time.Minute,
			PINHashCost:    4, // bcrypt.MinCost keeps tests fast
		},
		Pricing: PricingConfig{
			DiscountRate: 0.05,
			APR:          0.0799,
			TermMonths:   180,
		},
		Distance: DistanceConfig{
			BaseURL:   "http://localhost:0/distancematrix/json",
			APIKey:    "test-key",
			Timeout:   time.Second,
			BatchSize: 25,
		},
		Storage: StorageConfig{
			Enabled:            false,
			Bucket:             "test-bucket",
			Region:             "us-east-1",
			PresignTTL:         time.Hour,
			PublicImagePattern: "/images/units/%s.jpg",
		},
	}
}
