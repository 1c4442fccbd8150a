package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, the scraped source,
// the derived views, the snapshot archive and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the level implied by Environment when set (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Source describes the page holding the population table
	Source struct {
		// URL is the page listing countries by population
		URL string `env:"SOURCE_URL" env-default:"https://www.worldometers.info/world-population/population-by-country/" yaml:"url"` //nolint: lll
		// TableID is the id attribute of the statistics table
		TableID string `env:"SOURCE_TABLE_ID" env-default:"example2" yaml:"tableId"`
		// Columns are the header labels of the required columns
		Columns struct {
			Country    string `env:"SOURCE_COLUMN_COUNTRY" env-default:"Country (or dependency)" yaml:"country"`
			Population string `env:"SOURCE_COLUMN_POPULATION" env-default:"Population (2020)" yaml:"population"`
			Migrants   string `env:"SOURCE_COLUMN_MIGRANTS" env-default:"Migrants (net)" yaml:"migrants"`
			WorldShare string `env:"SOURCE_COLUMN_WORLD_SHARE" env-default:"World Share" yaml:"worldShare"`
			UrbanPct   string `env:"SOURCE_COLUMN_URBAN_PCT" env-default:"Urban Pop %" yaml:"urbanPct"`
		} `yaml:"columns"`
		// UserAgent is sent with every request to the source
		UserAgent string `env:"SOURCE_USER_AGENT" env-default:"" yaml:"userAgent"`
		// Timeout bounds a single fetch of the page
		Timeout time.Duration `env:"SOURCE_TIMEOUT" env-default:"30s" yaml:"timeout"`
		// FallbackToArchive serves the latest archived snapshot when the startup scrape fails
		FallbackToArchive bool `env:"SOURCE_FALLBACK_TO_ARCHIVE" env-default:"false" yaml:"fallbackToArchive"`
	} `yaml:"source"`

	// Stats configures the provider of the summary table
	Stats struct {
		// Provider is either "worldbank" or "snapshot"
		Provider string `env:"STATS_PROVIDER" env-default:"worldbank" yaml:"provider"`
		// URL is the World Bank API root
		URL string `env:"STATS_URL" env-default:"https://api.worldbank.org/v2" yaml:"url"`
		// Indicators are the World Bank series codes shown in the summary table
		Indicators []string `env:"STATS_INDICATORS" env-default:"SP.POP.TOTL,SP.POP.GROW,SP.URB.TOTL.IN.ZS,SP.DYN.CBRT.IN,SP.DYN.CDRT.IN" yaml:"indicators"` //nolint: lll
		// Timeout bounds the whole summary lookup
		Timeout time.Duration `env:"STATS_TIMEOUT" env-default:"15s" yaml:"timeout"`
	} `yaml:"stats"`

	// Views sizes the derived views
	Views struct {
		TopPopulation int `env:"VIEWS_TOP_POPULATION" env-default:"20" yaml:"topPopulation"`
		TopWorldShare int `env:"VIEWS_TOP_WORLD_SHARE" env-default:"10" yaml:"topWorldShare"`
		TopUrban      int `env:"VIEWS_TOP_URBAN" env-default:"10" yaml:"topUrban"`
		// UrbanOverFullSnapshot ranks urban population over all countries instead of the world share subset
		UrbanOverFullSnapshot bool `env:"VIEWS_URBAN_OVER_FULL_SNAPSHOT" env-default:"false" yaml:"urbanOverFullSnapshot"`
	} `yaml:"views"`

	// Dashboard configures the served page
	Dashboard struct {
		// DefaultTheme is served when the request does not pick one (light or dark)
		DefaultTheme string `env:"DASHBOARD_DEFAULT_THEME" env-default:"light" yaml:"defaultTheme"`
		// Title is the page heading
		Title string `env:"DASHBOARD_TITLE" env-default:"Population Data visualization" yaml:"title"`
	} `yaml:"dashboard"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"popdash" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Archive configures the periodic snapshot archive
	Archive struct {
		// Enabled turns on the database, the archive worker and the archive endpoints
		Enabled bool `env:"ARCHIVE_ENABLED" env-default:"false" yaml:"enabled"`
		// Interval is how often a snapshot is archived
		Interval time.Duration `env:"ARCHIVE_INTERVAL" env-default:"24h" yaml:"interval"`
		// MaxAttempts is how many times a failed archive job is tried
		MaxAttempts int `env:"ARCHIVE_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// Workers is the number of concurrent archive jobs
		Workers int `env:"ARCHIVE_WORKERS" env-default:"1" yaml:"workers"`
	} `yaml:"archive"`

	// JWT holds the RSA key pair used for the archive endpoint
	JWT struct {
		// PublicKey is the PEM encoded RSA public key verifying bearer tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" env-default:"" yaml:"publicKey"`
		// PrivateKey is the PEM encoded RSA private key used by the jwt command
		PrivateKey string `env:"JWT_PRIVATE_KEY" env-default:"" yaml:"privateKey"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}

// Defaults returns a Config holding only default values and environment
// overrides, for commands that run without a config file.
func Defaults() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read environment: %w", err)
	}

	return &cfg, nil
}
