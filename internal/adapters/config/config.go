package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/Badsnus/golf-stats/internal/domain/common/errorz"
)

type Config struct {
	Settings Settings `mapstructure:"settings"`
	Service  Service  `mapstructure:"service"`
	Handicap Handicap `mapstructure:"handicap"`
	Web      Web      `mapstructure:"web"`
}

type Settings struct {
	Debug     bool   `mapstructure:"debug"`
	Timezone  string `mapstructure:"timezone"`
	LogToFile bool   `mapstructure:"log-to-file"`
	LogsDir   string `mapstructure:"logs-dir"`
}

type Service struct {
	Database Database `mapstructure:"database"`
	Redis    Redis    `mapstructure:"redis"`
}

type Database struct {
	Driver   string `mapstructure:"driver"`
	Path     string `mapstructure:"path"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type Redis struct {
	Enabled  bool          `mapstructure:"enabled"`
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type Handicap struct {
	Window       int     `mapstructure:"window"`
	Best         int     `mapstructure:"best"`
	Factor       float64 `mapstructure:"factor"`
	Proportional bool    `mapstructure:"proportional"`
}

type Web struct {
	Addr   string `mapstructure:"addr"`
	Locale string `mapstructure:"locale"`
}

// Load reads the configuration. Precedence: environment (GOLFSTATS_ prefix) > file > defaults.
// With an empty path config.yaml is looked up in ./config and the working directory, and a
// missing file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("settings.debug", false)
	v.SetDefault("settings.timezone", "UTC")
	v.SetDefault("settings.log-to-file", false)
	v.SetDefault("settings.logs-dir", "logs")

	v.SetDefault("service.database.driver", "sqlite")
	v.SetDefault("service.database.path", "golf.db")
	v.SetDefault("service.database.host", "localhost")
	v.SetDefault("service.database.port", 5432)
	v.SetDefault("service.database.user", "postgres")
	v.SetDefault("service.database.password", "")
	v.SetDefault("service.database.name", "golf")
	v.SetDefault("service.database.sslmode", "disable")

	v.SetDefault("service.redis.enabled", false)
	v.SetDefault("service.redis.host", "localhost")
	v.SetDefault("service.redis.port", 6379)
	v.SetDefault("service.redis.password", "")
	v.SetDefault("service.redis.db", 0)
	v.SetDefault("service.redis.ttl", "10m")

	v.SetDefault("handicap.window", 20)
	v.SetDefault("handicap.best", 8)
	v.SetDefault("handicap.factor", 1.0)
	v.SetDefault("handicap.proportional", false)

	v.SetDefault("web.addr", ":8080")
	v.SetDefault("web.locale", "en")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("GOLFSTATS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: failed to read config: %v", errorz.ErrConfiguration, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", errorz.ErrConfiguration, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the values Load cannot default.
func (c *Config) Validate() error {
	if _, err := time.LoadLocation(c.Settings.Timezone); err != nil {
		return invalid("settings.timezone %q is unknown", c.Settings.Timezone)
	}

	db := c.Service.Database
	switch db.Driver {
	case "sqlite":
		if db.Path == "" {
			return invalid("service.database.path is required for sqlite")
		}
	case "postgres":
		if db.Host == "" || db.Name == "" {
			return invalid("service.database.host and service.database.name are required for postgres")
		}
		if db.Port <= 0 || db.Port > 65535 {
			return invalid("service.database.port must be between 1 and 65535")
		}
	default:
		return invalid("service.database.driver must be sqlite or postgres, got %q", db.Driver)
	}

	if c.Service.Redis.Enabled {
		if c.Service.Redis.Port <= 0 || c.Service.Redis.Port > 65535 {
			return invalid("service.redis.port must be between 1 and 65535")
		}
		if c.Service.Redis.TTL < 0 {
			return invalid("service.redis.ttl must not be negative")
		}
	}

	h := c.Handicap
	if h.Window <= 0 || h.Best <= 0 {
		return invalid("handicap.window and handicap.best must be positive")
	}
	if h.Best > h.Window {
		return invalid("handicap.best (%d) must not exceed handicap.window (%d)", h.Best, h.Window)
	}
	if h.Factor <= 0 {
		return invalid("handicap.factor must be positive")
	}

	if c.Web.Addr == "" {
		return invalid("web.addr is required")
	}
	if _, err := language.Parse(c.Web.Locale); err != nil {
		return invalid("web.locale %q is not a language tag", c.Web.Locale)
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", errorz.ErrConfiguration, fmt.Sprintf(format, args...))
}
