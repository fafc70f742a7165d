package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string        `mapstructure:"host"`
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	// PublicURL is the externally reachable base URL of this service,
	// used to build frame URLs
	PublicURL string `mapstructure:"public_url"`
	// JWTPublicKey is the RSA public key in PEM format for bearer auth
	JWTPublicKey string `mapstructure:"jwt_public_key"`
	// APIKeys is the list of accepted API keys
	APIKeys []string `mapstructure:"api_keys"`
}

// URIConfig holds URI resolver configuration
type URIConfig struct {
	IPFSGateways    []string `mapstructure:"ipfs_gateways"`
	ArweaveGateways []string `mapstructure:"arweave_gateways"`
}

// VendorsConfig holds vendor API configurations
type VendorsConfig struct {
	OpenSeaURL    string `mapstructure:"opensea_url"`
	OpenSeaAPIKey string `mapstructure:"opensea_api_key"`
	MetaplexURL   string `mapstructure:"metaplex_url"`
}

// MediaConfig holds media pipeline configuration
type MediaConfig struct {
	// SupportsPartialGifFetch enables the ranged-fetch fast path for GIF
	// frame extraction
	SupportsPartialGifFetch bool `mapstructure:"supports_partial_gif_fetch"`
	// FrameTTL is how long extracted frames stay resolvable
	FrameTTL time.Duration `mapstructure:"frame_ttl"`
	// FrameSweepInterval is how often expired frames are evicted
	FrameSweepInterval time.Duration `mapstructure:"frame_sweep_interval"`
	// HTTPTimeout is the timeout applied to media fetches and probes
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
}

// NormalizerConfig holds normalization fan-out configuration
type NormalizerConfig struct {
	// MaxWorkers bounds how many assets are normalized concurrently
	MaxWorkers int `mapstructure:"max_workers"`
	// MaxQueueSize bounds how many normalization tasks may wait for a worker
	MaxQueueSize int `mapstructure:"max_queue_size"`
	// CacheTTL is how long a cached wallet snapshot stays fresh
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// RateLimitConfig holds per-provider rate limit configuration
type RateLimitConfig struct {
	RequestsPerSecond int           `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	MaxQueueTime      time.Duration `mapstructure:"max_queue_time"`
}

// RateLimiterConfig holds rate limiter proxy configuration
type RateLimiterConfig struct {
	RedisAddr               string                     `mapstructure:"redis_addr"`
	RedisPassword           string                     `mapstructure:"redis_password"`
	RedisDB                 int                        `mapstructure:"redis_db"`
	RedisKeyPrefix          string                     `mapstructure:"redis_key_prefix"`
	Providers               map[string]RateLimitConfig `mapstructure:"providers"`
	MaxWorkers              int                        `mapstructure:"max_workers"`
	MaxQueueSize            int                        `mapstructure:"max_queue_size"`
	EnableLocalFallback     bool                       `mapstructure:"enable_local_fallback"`
	LocalFallbackMultiplier float64                    `mapstructure:"local_fallback_multiplier"`
}

// APIConfig holds the full configuration for the API service
type APIConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Server      ServerConfig      `mapstructure:"server"`
	URI         URIConfig         `mapstructure:"uri"`
	Vendors     VendorsConfig     `mapstructure:"vendors"`
	Media       MediaConfig       `mapstructure:"media"`
	Normalizer  NormalizerConfig  `mapstructure:"normalizer"`
	Database    DatabaseConfig    `mapstructure:"database"`
	NATS        NATSConfig        `mapstructure:"nats"`
	RateLimiter RateLimiterConfig `mapstructure:"rate_limiter"`
}

// LoadAPIConfig loads configuration for the API service
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("uri.ipfs_gateways", []string{"https://ipfs.io"})
	v.SetDefault("uri.arweave_gateways", []string{"https://arweave.net"})
	v.SetDefault("vendors.opensea_url", "https://api.opensea.io/api/v1")
	v.SetDefault("media.supports_partial_gif_fetch", true)
	v.SetDefault("media.frame_ttl", "1h")
	v.SetDefault("media.frame_sweep_interval", "5m")
	v.SetDefault("media.http_timeout", "30s")
	v.SetDefault("normalizer.max_workers", 16)
	v.SetDefault("normalizer.max_queue_size", 2048)
	v.SetDefault("normalizer.cache_ttl", "10m")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "COLLECTIBLE_EVENTS")
	v.SetDefault("nats.connection_name", "collectibles-api")
	v.SetDefault("rate_limiter.enable_local_fallback", true)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("COLLECTIBLES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.public_url",
		"server.jwt_public_key",
		"server.api_keys",
		// URI
		"uri.ipfs_gateways",
		"uri.arweave_gateways",
		// Vendors
		"vendors.opensea_url",
		"vendors.opensea_api_key",
		"vendors.metaplex_url",
		// Media
		"media.supports_partial_gif_fetch",
		"media.frame_ttl",
		"media.frame_sweep_interval",
		"media.http_timeout",
		// Normalizer
		"normalizer.max_workers",
		"normalizer.max_queue_size",
		"normalizer.cache_ttl",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Rate limiter
		"rate_limiter.redis_addr",
		"rate_limiter.redis_password",
		"rate_limiter.redis_db",
		"rate_limiter.redis_key_prefix",
		"rate_limiter.max_workers",
		"rate_limiter.max_queue_size",
		"rate_limiter.enable_local_fallback",
		"rate_limiter.local_fallback_multiplier",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment files before viper reads the environment
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
