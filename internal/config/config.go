package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Auth       AuthConfig       `mapstructure:"auth"`
	Log        LogConfig        `mapstructure:"log"`
	Tracing    TracingConfig    `mapstructure:"tracing"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Models     []ModelConfig    `mapstructure:"models" validate:"dive"`
	Embeddings EmbeddingsConfig `mapstructure:"embeddings"`
	Pools      PoolsConfig      `mapstructure:"pools"`
}

type ServerConfig struct {
	Host           string        `mapstructure:"host" validate:"required"`
	Port           int           `mapstructure:"port" validate:"min=1,max=65535"`
	Env            string        `mapstructure:"env" validate:"oneof=development production test"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gt=0"`
	EnableCORS     bool          `mapstructure:"enable_cors"`
	EnableLogging  bool          `mapstructure:"enable_logging"`
}

type AuthConfig struct {
	APIKey string `mapstructure:"api_key" validate:"required,startswith=sk-"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=json console"`
}

type TracingConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	ServiceName string `mapstructure:"service_name" validate:"required_if=Enabled true"`
}

type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

type ModelConfig struct {
	ID      string `mapstructure:"id" validate:"required"`
	OwnedBy string `mapstructure:"owned_by" validate:"required"`
	Created int64  `mapstructure:"created"`
}

type EmbeddingsConfig struct {
	FallbackDimensions int            `mapstructure:"fallback_dimensions" validate:"min=1,max=3072"`
	Dimensions         map[string]int `mapstructure:"dimensions" validate:"dive,min=1,max=3072"`
}

type PoolsConfig struct {
	Completion []string `mapstructure:"completion" validate:"min=1,dive,required"`
	Chat       []string `mapstructure:"chat" validate:"min=1,dive,required"`
}

// BindAddress is the host:port the HTTP listener binds to.
func (c *Config) BindAddress() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// BaseURL is the address clients should use. A wildcard host is reported as
// localhost.
func (c *Config) BaseURL() string {
	host := c.Server.Host
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(c.Server.Port))
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s failed on '%s'", fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// flagKeys maps command line flags to their config keys.
var flagKeys = map[string]string{
	"host":            "server.host",
	"port":            "server.port",
	"request-timeout": "server.request_timeout",
	"enable-cors":     "server.enable_cors",
	"enable-logging":  "server.enable_logging",
	"api-key":         "auth.api_key",
	"log-level":       "log.level",
	"log-format":      "log.format",
}

// RegisterFlags adds the server flags to fs. Defaults are left empty so
// unset flags never shadow the config file or the environment.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "path to a config file (yaml)")
	fs.String("host", "", "interface to bind (default 0.0.0.0)")
	fs.Int("port", 0, "port to listen on (default 13673)")
	fs.String("api-key", "", "API key accepted by the mock")
	fs.Duration("request-timeout", 0, "per-request timeout (default 30s)")
	fs.Bool("enable-cors", true, "enable CORS headers")
	fs.Bool("enable-logging", true, "enable request logging")
	fs.String("log-level", "", "debug, info, warn or error")
	fs.String("log-format", "", "json or console")
}

// LoadConfig reads configuration from defaults, an optional .env file, an
// optional config file, environment variables and finally fs (which may be
// nil), in increasing precedence.
func LoadConfig(fs *pflag.FlagSet) (*Config, error) {
	// Load .env file if present
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configFile := v.GetString("config_file")
	if fs != nil {
		if f := fs.Lookup("config"); f != nil && f.Changed {
			configFile = f.Value.String()
		}
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil && f.Changed {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 13673)
	v.SetDefault("server.env", "development")
	v.SetDefault("server.request_timeout", 30*time.Second)
	v.SetDefault("server.enable_cors", true)
	v.SetDefault("server.enable_logging", true)

	v.SetDefault("auth.api_key", "sk-mock-openai-api-key-12345")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "openai-mock")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.namespace", "openai_mock")

	v.SetDefault("models", DefaultModels())

	v.SetDefault("embeddings.fallback_dimensions", 1536)
	v.SetDefault("embeddings.dimensions", map[string]any{
		"text-embedding-ada-002": 1536,
		"text-embedding-3-small": 1536,
		"text-embedding-3-large": 3072,
	})

	v.SetDefault("pools.completion", DefaultCompletionPool)
	v.SetDefault("pools.chat", DefaultChatPool)
}
