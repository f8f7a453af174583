package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration.
type Config struct {
	LogLevel     string `yaml:"log_level" mapstructure:"log_level"`
	LogFormat    string `yaml:"log_format" mapstructure:"log_format"`
	OutputFormat string `yaml:"output_format" mapstructure:"output_format"`
}

// ConfigManager handles configuration loading and management.
type ConfigManager struct {
	config *Config
	viper  *viper.Viper
	logger *Logger
}

// NewConfigManager creates a new configuration manager.
func NewConfigManager() *ConfigManager {
	return &ConfigManager{
		config: &Config{},
		viper:  viper.New(),
		logger: NewDefaultLogger(),
	}
}

// LoadConfig loads configuration from defaults, an optional YAML file and
// ELFDEPS_* environment variables, in that precedence order.
func (c *ConfigManager) LoadConfig(configFile string) error {
	c.setDefaults()

	c.viper.SetConfigType("yaml")
	c.viper.SetEnvPrefix("ELFDEPS")
	c.viper.AutomaticEnv()
	c.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configFile != "" {
		c.viper.SetConfigFile(configFile)
		if err := c.viper.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return fmt.Errorf("failed to read config file: %w", err)
			}
			c.logger.WithComponent("config").Warnf("Config file not found: %s", configFile)
		} else {
			c.logger.WithComponent("config").Debugf("Loaded config from: %s", c.viper.ConfigFileUsed())
		}
	} else {
		// Look for config in standard locations.
		c.viper.SetConfigName("config")
		c.viper.AddConfigPath(".")
		c.viper.AddConfigPath("$HOME/.elfdeps")
		c.viper.AddConfigPath("/etc/elfdeps")

		if err := c.viper.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("failed to read config file: %w", err)
			}
		} else {
			c.logger.WithComponent("config").Debugf("Loaded config from: %s", c.viper.ConfigFileUsed())
		}
	}

	if err := c.viper.Unmarshal(c.config); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := c.validateConfig(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func (c *ConfigManager) setDefaults() {
	c.viper.SetDefault("log_level", "info")
	c.viper.SetDefault("log_format", "text")
	c.viper.SetDefault("output_format", "text")
}

func (c *ConfigManager) validateConfig() error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if c.config.LogLevel != "" && !contains(validLogLevels, strings.ToLower(c.config.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.config.LogLevel, validLogLevels)
	}

	validLogFormats := []string{"text", "json"}
	if c.config.LogFormat != "" && !contains(validLogFormats, strings.ToLower(c.config.LogFormat)) {
		return fmt.Errorf("invalid log format: %s (valid: %v)", c.config.LogFormat, validLogFormats)
	}

	validOutputFormats := []string{"text", "json"}
	if c.config.OutputFormat != "" && !contains(validOutputFormats, strings.ToLower(c.config.OutputFormat)) {
		return fmt.Errorf("invalid output format: %s (valid: %v)", c.config.OutputFormat, validOutputFormats)
	}
	return nil
}

// GetConfig returns the loaded configuration.
func (c *ConfigManager) GetConfig() *Config {
	return c.config
}

// SetLogger sets the logger for the config manager.
func (c *ConfigManager) SetLogger(logger *Logger) {
	c.logger = logger
}

// contains checks if a slice contains a string.
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

// LoadDefaultConfig loads a default configuration.
func LoadDefaultConfig() (*Config, error) {
	manager := NewConfigManager()
	if err := manager.LoadConfig(""); err != nil {
		return nil, err
	}
	return manager.GetConfig(), nil
}

// LoadConfigFromFile loads configuration from a specific file.
func LoadConfigFromFile(filename string) (*Config, error) {
	manager := NewConfigManager()
	if err := manager.LoadConfig(filename); err != nil {
		return nil, err
	}
	return manager.GetConfig(), nil
}
