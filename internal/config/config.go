package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const EnvPrefix = "TRIVIA_"

type Config struct {
	Server ServerConfig `koanf:"server"`
	DB     DBConfig     `koanf:"db"`
	Auth   AuthConfig   `koanf:"auth"`
}

type ServerConfig struct {
	Port string `koanf:"port"`
	Mode string `koanf:"mode"`
}

type DBConfig struct {
	Driver   string `koanf:"driver"`
	Host     string `koanf:"host"`
	Port     string `koanf:"port"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
	Name     string `koanf:"name"`
	SSLMode  string `koanf:"sslmode"`
	Path     string `koanf:"path"`
	LogLevel string `koanf:"log_level"`
}

// AuthConfig enables editor tokens on mutating routes when Secret is set.
type AuthConfig struct {
	Secret string        `koanf:"secret"`
	TTL    time.Duration `koanf:"ttl"`
}

func (c DBConfig) DSN() string {
	if c.Driver == "sqlite" {
		return c.Path
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"server.port":  "8080",
		"server.mode":  "debug",
		"db.driver":    "postgres",
		"db.host":      "localhost",
		"db.port":      "5432",
		"db.user":      "postgres",
		"db.password":  "postgres",
		"db.name":      "trivia",
		"db.sslmode":   "disable",
		"db.path":      "trivia.db",
		"db.log_level": "warn",
		"auth.secret":  "",
		"auth.ttl":     "24h",
	}
}

// Flags returns the command line flags understood by Load. Flag names use
// dashes where config keys use dots: --db-driver sets db.driver.
func Flags(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to a YAML config file")
	fs.String("server-port", "8080", "HTTP listen port")
	fs.String("server-mode", "debug", "gin mode: debug, release or test")
	fs.String("db-driver", "postgres", "database driver: postgres or sqlite")
	fs.String("db-path", "trivia.db", "sqlite database file")
	fs.String("db-log-level", "warn", "gorm log level: silent, error, warn or info")
	return fs
}

// Load merges, in increasing priority: built-in defaults, the YAML file named by
// --config, TRIVIA_* environment variables and explicitly set flags.
func Load(fs *pflag.FlagSet, args []string) (*Config, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path, _ := fs.GetString("config"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	flags := posflag.ProviderWithValue(fs, ".", k, func(key, value string) (string, interface{}) {
		if key == "config" {
			return "", nil
		}
		return flagKey(key), value
	})
	if err := k.Load(flags, nil); err != nil {
		return nil, fmt.Errorf("load flags: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad is Load over the process arguments.
func MustLoad() *Config {
	cfg, err := Load(Flags(os.Args[0]), os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// TRIVIA_DB_LOG_LEVEL -> db.log_level
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, rest, ok := strings.Cut(s, "_")
	if !ok {
		return s
	}
	return section + "." + rest
}

// db-log-level -> db.log_level
func flagKey(s string) string {
	section, rest, ok := strings.Cut(s, "-")
	if !ok {
		return s
	}
	return section + "." + strings.ReplaceAll(rest, "-", "_")
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported db driver %q", c.DB.Driver)
	}
	if c.Auth.TTL <= 0 {
		return fmt.Errorf("auth.ttl must be positive, got %s", c.Auth.TTL)
	}
	return nil
}
