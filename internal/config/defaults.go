// Package config provides configuration loading, defaults, and validation for
// the GeoSignal-Intelligence platform.
package config

import "time"

const (
	DefaultServerPort      = 8080
	DefaultServerMode      = "debug"
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultDBHost     = "localhost"
	DefaultDBPort     = 5432
	DefaultDBName     = "geosignal"
	DefaultDBUser     = "geosignal"
	DefaultDBSSLMode  = "disable"
	DefaultDBMaxConns = 25

	DefaultMigrationPath = "file://migrations"

	DefaultRedisAddr      = "localhost:6379"
	DefaultRedisDB        = 0
	DefaultRedisTTL       = 5 * time.Minute
	DefaultRedisKeyPrefix = "geosignal"

	DefaultKafkaBroker  = "localhost:9092"
	DefaultKafkaGroupID = "geosignal-ingest"
	DefaultKafkaTopic   = "events.classified"

	DefaultNewsTimeout  = 3 * time.Second
	DefaultNewsCacheTTL = 10 * time.Minute

	DefaultMaxSignals     = 60
	DefaultUpstreamRowCap = 100
	DefaultTopEvents      = 3
	DefaultTopImpacts     = 3

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// ApplyDefaults fills every zero-value field in cfg with the platform default.
// It must be called after unmarshalling raw config data and before Validate()
// so that optional-but-defaulted fields are never seen as missing.  Fields
// already set by the caller are left unchanged so explicit configuration
// always wins.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	// Server
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	// Database
	if cfg.Database.Host == "" {
		cfg.Database.Host = DefaultDBHost
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = DefaultDBPort
	}
	if cfg.Database.User == "" {
		cfg.Database.User = DefaultDBUser
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = DefaultDBName
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = DefaultDBSSLMode
	}
	if cfg.Database.MaxConns == 0 {
		cfg.Database.MaxConns = DefaultDBMaxConns
	}
	if cfg.Database.MigrationPath == "" {
		cfg.Database.MigrationPath = DefaultMigrationPath
	}

	// Redis
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = DefaultRedisAddr
	}
	if cfg.Redis.DefaultTTL == 0 {
		cfg.Redis.DefaultTTL = DefaultRedisTTL
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = DefaultRedisKeyPrefix
	}

	// Kafka
	if len(cfg.Kafka.Brokers) == 0 {
		cfg.Kafka.Brokers = []string{DefaultKafkaBroker}
	}
	if cfg.Kafka.GroupID == "" {
		cfg.Kafka.GroupID = DefaultKafkaGroupID
	}
	if cfg.Kafka.Topic == "" {
		cfg.Kafka.Topic = DefaultKafkaTopic
	}
	if cfg.Kafka.AutoOffsetReset == "" {
		cfg.Kafka.AutoOffsetReset = "latest"
	}

	// News
	if cfg.News.RequestTimeout == 0 {
		cfg.News.RequestTimeout = DefaultNewsTimeout
	}
	if cfg.News.CacheTTL == 0 {
		cfg.News.CacheTTL = DefaultNewsCacheTTL
	}

	// Pipeline
	if cfg.Pipeline.MaxSignals == 0 {
		cfg.Pipeline.MaxSignals = DefaultMaxSignals
	}
	if cfg.Pipeline.UpstreamRowCap == 0 {
		cfg.Pipeline.UpstreamRowCap = DefaultUpstreamRowCap
	}
	if cfg.Pipeline.TopEvents == 0 {
		cfg.Pipeline.TopEvents = DefaultTopEvents
	}
	if cfg.Pipeline.TopImpacts == 0 {
		cfg.Pipeline.TopImpacts = DefaultTopImpacts
	}

	// Log
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}

// NewDefaultConfig returns a Config populated entirely with platform defaults.
// Intended for tests and for running the apiserver without a config file.
func NewDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

//Personal.AI order the ending
