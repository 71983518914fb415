package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Cardano  CardanoConfig  `mapstructure:"cardano"`
	Minting  MintingConfig  `mapstructure:"minting"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the host:port Redis address.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// CardanoConfig locates the ledger provider and the minting wallet.
type CardanoConfig struct {
	ProviderURL   string        `mapstructure:"provider_url"`
	ProjectID     string        `mapstructure:"project_id"` // Blockfrost API key
	Network       string        `mapstructure:"network"`    // mainnet, preprod, preview
	WalletAddress string        `mapstructure:"wallet_address"`
	SigningKey    string        `mapstructure:"signing_key"` // hex-encoded ed25519 seed
	HTTPTimeout   time.Duration `mapstructure:"http_timeout"`
}

// MintingConfig carries every knob of the minting orchestrator in one
// place: the per-output floor, the balance hard floor and all retry and
// backoff parameters for both loops.
type MintingConfig struct {
	LockMode        string        `mapstructure:"lock_mode"` // redis, local
	MinUTXOLovelace uint64        `mapstructure:"min_utxo_lovelace"`
	MinBalance      uint64        `mapstructure:"min_balance"`
	OuterAttempts   int           `mapstructure:"outer_attempts"`
	OuterBackoff    time.Duration `mapstructure:"outer_backoff"`
	InnerAttempts   int           `mapstructure:"inner_attempts"`
	InnerBackoff    time.Duration `mapstructure:"inner_backoff"`
	StartJitterMax  time.Duration `mapstructure:"start_jitter_max"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: CDN_.
// Nested keys use underscore: CDN_DATABASE_HOST, CDN_CARDANO_PROJECT_ID, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "cardano_backend")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "cardano-backend")
	v.SetDefault("cardano.provider_url", "https://cardano-preprod.blockfrost.io/api/v0")
	v.SetDefault("cardano.project_id", "")
	v.SetDefault("cardano.network", "preprod")
	v.SetDefault("cardano.wallet_address", "")
	v.SetDefault("cardano.signing_key", "")
	v.SetDefault("cardano.http_timeout", "30s")
	v.SetDefault("minting.lock_mode", "redis")
	v.SetDefault("minting.min_utxo_lovelace", 2_000_000)
	v.SetDefault("minting.min_balance", 5_000_000)
	v.SetDefault("minting.outer_attempts", 5)
	v.SetDefault("minting.outer_backoff", "2s")
	v.SetDefault("minting.inner_attempts", 3)
	v.SetDefault("minting.inner_backoff", "1s")
	v.SetDefault("minting.start_jitter_max", "500ms")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: CDN_DATABASE_HOST -> database.host
	v.SetEnvPrefix("CDN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (optional, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
