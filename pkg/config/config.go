package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix prefixes every environment override, e.g. BRIDGE_API_LISTEN_ADDRESS.
const EnvPrefix = "BRIDGE"

// Config holds all configuration for the bridge node and its clients
type Config struct {
	Node    NodeConfig    `mapstructure:"node"`
	Storage StorageConfig `mapstructure:"storage"`
	API     APIConfig     `mapstructure:"api"`
	Logging LoggingConfig `mapstructure:"logging"`
	Client  ClientConfig  `mapstructure:"client"`
}

// NodeConfig locates the node home and its genesis file
type NodeConfig struct {
	Home        string `mapstructure:"home"`
	GenesisFile string `mapstructure:"genesis_file"`
}

// StorageConfig selects the state backend
type StorageConfig struct {
	Path     string `mapstructure:"path"`
	InMemory bool   `mapstructure:"in_memory"`
}

// APIConfig holds the HTTP API settings
type APIConfig struct {
	ListenAddress string        `mapstructure:"listen_address"`
	ReadTimeout   time.Duration `mapstructure:"read_timeout"`
	WriteTimeout  time.Duration `mapstructure:"write_timeout"`
	// Number of outbound transfers kept for GET /transfers
	FeedHistorySize int `mapstructure:"feed_history_size"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// ClientConfig is used by the tx and query commands
type ClientConfig struct {
	NodeURL          string        `mapstructure:"node_url"`
	KeyFile          string        `mapstructure:"key_file"`
	RetryAttempts    uint64        `mapstructure:"retry_attempts"`
	RetryMaxInterval time.Duration `mapstructure:"retry_max_interval"`
	Timeout          time.Duration `mapstructure:"timeout"`
}

// LoadConfig loads configuration from file, .env and environment variables.
// An empty configPath searches the default locations.
func LoadConfig(configPath string) (*Config, error) {
	return load(viper.New(), configPath)
}

func load(v *viper.Viper, configPath string) (*Config, error) {
	// .env is optional
	if err := gotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.quorum-bridge")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	config.Node.Home = os.ExpandEnv(config.Node.Home)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("node.home", "$HOME/.quorum-bridge")
	v.SetDefault("node.genesis_file", "genesis.yaml")

	v.SetDefault("storage.path", "data")
	v.SetDefault("storage.in_memory", false)

	v.SetDefault("api.listen_address", "127.0.0.1:1317")
	v.SetDefault("api.read_timeout", "10s")
	v.SetDefault("api.write_timeout", "10s")
	v.SetDefault("api.feed_history_size", 1024)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output_path", "stdout")

	v.SetDefault("client.node_url", "http://127.0.0.1:1317")
	v.SetDefault("client.key_file", "")
	v.SetDefault("client.retry_attempts", 3)
	v.SetDefault("client.retry_max_interval", "5s")
	v.SetDefault("client.timeout", "30s")
}

func validateConfig(config *Config) error {
	if !config.Storage.InMemory && config.Storage.Path == "" {
		return fmt.Errorf("storage.path is required unless storage.in_memory is set")
	}
	if config.API.ListenAddress == "" {
		return fmt.Errorf("api.listen_address is required")
	}
	if config.API.FeedHistorySize <= 0 {
		return fmt.Errorf("api.feed_history_size must be positive")
	}
	if _, err := zapcore.ParseLevel(config.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch config.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", config.Logging.Format)
	}
	if config.Client.NodeURL == "" {
		return fmt.Errorf("client.node_url is required")
	}
	return nil
}

// NewLogger builds a zap logger from the logging section.
func (c LoggingConfig) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	zc := zap.NewProductionConfig()
	if c.Format == "console" {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	if c.OutputPath != "" {
		zc.OutputPaths = []string{c.OutputPath}
	}
	return zc.Build()
}
