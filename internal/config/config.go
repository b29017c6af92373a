// Package config loads securehash settings from defaults, an optional config
// file, SECUREHASH_* environment variables and command-line flags, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hasbyte1/go-secure-hash/hashing"
)

// EnvPrefix is the prefix of environment variables read by [Load].
// store.redis.url is read from SECUREHASH_STORE_REDIS_URL.
const EnvPrefix = "SECUREHASH"

// Store drivers accepted in store.driver.
const (
	DriverMemory   = "memory"
	DriverLevelDB  = "leveldb"
	DriverRedis    = "redis"
	DriverPostgres = "postgres"
)

// ErrInvalidConfig is returned by [Config.Validate].
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete runtime configuration.
type Config struct {
	Log   LogConfig   `mapstructure:"log"`
	Salt  SaltConfig  `mapstructure:"salt"`
	Store StoreConfig `mapstructure:"store"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`
	// Format is console or json.
	Format string `mapstructure:"format"`
}

// SaltConfig controls salting of stored passwords.
type SaltConfig struct {
	// Bytes is the number of random salt bytes; 0 disables salting.
	Bytes int `mapstructure:"bytes"`
}

// StoreConfig selects and configures the credential store.
type StoreConfig struct {
	Driver   string         `mapstructure:"driver"`
	LevelDB  LevelDBConfig  `mapstructure:"leveldb"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

// LevelDBConfig configures the embedded store.
type LevelDBConfig struct {
	Path string `mapstructure:"path"`
}

// RedisConfig configures the Redis store.
type RedisConfig struct {
	URL    string `mapstructure:"url"`
	Prefix string `mapstructure:"prefix"`
}

// PostgresConfig configures the PostgreSQL store.
type PostgresConfig struct {
	URL   string `mapstructure:"url"`
	Table string `mapstructure:"table"`
}

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"log-level":    "log.level",
	"log-format":   "log.format",
	"salt-bytes":   "salt.bytes",
	"store-driver": "store.driver",
	"store-path":   "store.leveldb.path",
	"redis-url":    "store.redis.url",
	"postgres-url": "store.postgres.url",
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Log:  LogConfig{Level: "warn", Format: "console"},
		Salt: SaltConfig{Bytes: hashing.DefaultSaltBytes},
		Store: StoreConfig{
			Driver:   DriverLevelDB,
			LevelDB:  LevelDBConfig{Path: "securehash.db"},
			Redis:    RedisConfig{URL: "redis://localhost:6379/0", Prefix: "securehash:cred:"},
			Postgres: PostgresConfig{Table: "credentials"},
		},
	}
}

// Load builds a Config. path may be empty, in which case no file is read.
// flags may be nil; otherwise any flag named in the package's flag table
// that the user set overrides the file and environment.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("config: bind flag %s: %w", name, err)
				}
			}
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks driver names and ranges.
func (c Config) Validate() error {
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log.format %q must be console or json", ErrInvalidConfig, c.Log.Format)
	}
	if c.Salt.Bytes != 0 && (c.Salt.Bytes < hashing.MinSaltBytes || c.Salt.Bytes > hashing.MaxSaltBytes) {
		return fmt.Errorf("%w: salt.bytes %d must be 0 or in [%d, %d]",
			ErrInvalidConfig, c.Salt.Bytes, hashing.MinSaltBytes, hashing.MaxSaltBytes)
	}
	switch c.Store.Driver {
	case DriverMemory:
	case DriverLevelDB:
		if c.Store.LevelDB.Path == "" {
			return fmt.Errorf("%w: store.leveldb.path is required", ErrInvalidConfig)
		}
	case DriverRedis:
		if c.Store.Redis.URL == "" {
			return fmt.Errorf("%w: store.redis.url is required", ErrInvalidConfig)
		}
	case DriverPostgres:
		if c.Store.Postgres.URL == "" {
			return fmt.Errorf("%w: store.postgres.url is required", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown store.driver %q", ErrInvalidConfig, c.Store.Driver)
	}
	return nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("salt.bytes", d.Salt.Bytes)
	v.SetDefault("store.driver", d.Store.Driver)
	v.SetDefault("store.leveldb.path", d.Store.LevelDB.Path)
	v.SetDefault("store.redis.url", d.Store.Redis.URL)
	v.SetDefault("store.redis.prefix", d.Store.Redis.Prefix)
	v.SetDefault("store.postgres.url", d.Store.Postgres.URL)
	v.SetDefault("store.postgres.table", d.Store.Postgres.Table)
}
