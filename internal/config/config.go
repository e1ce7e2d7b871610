package config

import (
	"errors"
	"fmt"
	"os"
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
	ConsumerName   string        `mapstructure:"consumer_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
	AckWait        time.Duration `mapstructure:"ack_wait"`
	MaxDeliver     int           `mapstructure:"max_deliver"`
}

// TemporalConfig holds Temporal configuration
type TemporalConfig struct {
	HostPort                           string  `mapstructure:"host_port"`
	Namespace                          string  `mapstructure:"namespace"`
	EnrichmentTaskQueue                string  `mapstructure:"enrichment_task_queue"`
	MaxConcurrentActivityExecutionSize int     `mapstructure:"max_concurrent_activity_execution_size"`
	WorkerActivitiesPerSecond          float64 `mapstructure:"worker_activities_per_second"`
	MaxConcurrentActivityTaskPollers   int     `mapstructure:"max_concurrent_activity_task_pollers"`
}

// EnrichmentConfig holds the engine constants that are not part of the admin settings surface
type EnrichmentConfig struct {
	// ConnectorTimeout bounds a single connector call
	ConnectorTimeout time.Duration `mapstructure:"connector_timeout"`
	// ImageTimeout bounds a single image download
	ImageTimeout time.Duration `mapstructure:"image_timeout"`
	// MaxImagesPerInvocation caps the images admitted from one connector call
	MaxImagesPerInvocation int `mapstructure:"max_images_per_invocation"`
	// Concurrency is the number of products processed in parallel
	Concurrency int `mapstructure:"concurrency"`
	// PendingLimit is the default batch size of mass enrichment
	PendingLimit int `mapstructure:"pending_limit"`
	// PriorityCategories are enriched first by mass enrichment
	PriorityCategories []string `mapstructure:"priority_categories"`
}

// VendorsConfig holds vendor API endpoints
type VendorsConfig struct {
	LenovoPSREFURL          string  `mapstructure:"lenovo_psref_url"`
	LenovoRequestsPerSecond float64 `mapstructure:"lenovo_requests_per_second"`
	IcecatURL               string  `mapstructure:"icecat_url"`
	BestBuyURL              string  `mapstructure:"bestbuy_url"`
	OpenProductDataURL      string  `mapstructure:"open_product_data_url"`
	GoogleCSEURL            string  `mapstructure:"google_cse_url"`
	YouTubeURL              string  `mapstructure:"youtube_url"`
	GeminiURL               string  `mapstructure:"gemini_url"`
	OpenAIURL               string  `mapstructure:"openai_url"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
	// CORSAllowedOrigins lists the admin front end origins; empty allows all
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// WorkerEnricherConfig holds configuration for worker-enricher
type WorkerEnricherConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Temporal   TemporalConfig   `mapstructure:"temporal"`
	NATS       NATSConfig       `mapstructure:"nats"`
	Enrichment EnrichmentConfig `mapstructure:"enrichment"`
	Vendors    VendorsConfig    `mapstructure:"vendors"`
}

// EventBridgeConfig holds configuration for event-bridge
type EventBridgeConfig struct {
	BaseConfig `mapstructure:",squash"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Temporal   TemporalConfig `mapstructure:"temporal"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Temporal   TemporalConfig   `mapstructure:"temporal"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Enrichment EnrichmentConfig `mapstructure:"enrichment"`
}

// DefaultPriorityCategories are the high-ticket categories enriched first
var DefaultPriorityCategories = []string{
	"Notebooks",
	"PCs",
	"Computadoras",
	"Mini PCs",
	"Servidores",
	"Monitores",
	"Impresoras",
	"Periféricos Gamers",
	"Videovigilancia",
}

// LoadWorkerEnricherConfig loads configuration for worker-enricher
func LoadWorkerEnricherConfig(configFile string, envPath string) (*WorkerEnricherConfig, error) {
	v := configureViper("worker-enricher", configFile, envPath)

	setDatabaseDefaults(v)
	setTemporalDefaults(v)
	setEnrichmentDefaults(v)
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "CATALOG_EVENTS")
	v.SetDefault("nats.connection_name", "worker-enricher")
	v.SetDefault("vendors.lenovo_psref_url", "https://psref.lenovo.com")
	v.SetDefault("vendors.lenovo_requests_per_second", 1)
	v.SetDefault("vendors.icecat_url", "https://live.icecat.biz/api")
	v.SetDefault("vendors.bestbuy_url", "https://api.bestbuy.com/v1")
	v.SetDefault("vendors.open_product_data_url", "https://world.openproductsfacts.org/api/v0")
	v.SetDefault("vendors.google_cse_url", "https://www.googleapis.com/customsearch/v1")
	v.SetDefault("vendors.youtube_url", "https://www.googleapis.com/youtube/v3")
	v.SetDefault("vendors.gemini_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("vendors.openai_url", "https://api.openai.com/v1")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config WorkerEnricherConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadEventBridgeConfig loads configuration for event-bridge
func LoadEventBridgeConfig(configFile string, envPath string) (*EventBridgeConfig, error) {
	v := configureViper("event-bridge", configFile, envPath)

	setTemporalDefaults(v)
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "CATALOG_EVENTS")
	v.SetDefault("nats.consumer_name", "enrichment-bridge")
	v.SetDefault("nats.connection_name", "event-bridge")
	v.SetDefault("nats.ack_wait", "30s")
	v.SetDefault("nats.max_deliver", 3)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config EventBridgeConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	setDatabaseDefaults(v)
	setTemporalDefaults(v)
	setEnrichmentDefaults(v)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
}

func setTemporalDefaults(v *viper.Viper) {
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.enrichment_task_queue", "catalog-enrichment")
	v.SetDefault("temporal.max_concurrent_activity_execution_size", 10)
	v.SetDefault("temporal.worker_activities_per_second", 10)
	v.SetDefault("temporal.max_concurrent_activity_task_pollers", 2)
}

func setEnrichmentDefaults(v *viper.Viper) {
	v.SetDefault("enrichment.connector_timeout", "20s")
	v.SetDefault("enrichment.image_timeout", "10s")
	v.SetDefault("enrichment.max_images_per_invocation", 10)
	v.SetDefault("enrichment.concurrency", 1)
	v.SetDefault("enrichment.pending_limit", 50)
	v.SetDefault("enrichment.priority_categories", DefaultPriorityCategories)
}

// readConfig reads the config file; a missing file falls back to environment variables
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	loadEnv(envPath, service)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	v.SetEnvPrefix("TEC_ENRICHER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables.
// Viper only maps env vars onto struct fields it knows about when no config file exists.
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
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
		"nats.consumer_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		"nats.ack_wait",
		"nats.max_deliver",
		// Temporal
		"temporal.host_port",
		"temporal.namespace",
		"temporal.enrichment_task_queue",
		"temporal.max_concurrent_activity_execution_size",
		"temporal.worker_activities_per_second",
		"temporal.max_concurrent_activity_task_pollers",
		// Enrichment
		"enrichment.connector_timeout",
		"enrichment.image_timeout",
		"enrichment.max_images_per_invocation",
		"enrichment.concurrency",
		"enrichment.pending_limit",
		"enrichment.priority_categories",
		// Vendors
		"vendors.lenovo_psref_url",
		"vendors.lenovo_requests_per_second",
		"vendors.icecat_url",
		"vendors.bestbuy_url",
		"vendors.open_product_data_url",
		"vendors.google_cse_url",
		"vendors.youtube_url",
		"vendors.gemini_url",
		"vendors.openai_url",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.cors_allowed_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads .env, .env.local and .env.<service>.local from envPath, later files winning
func loadEnv(envPath string, service string) {
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		_ = godotenv.Overload(filepath.Join(envPath, envFile))
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
