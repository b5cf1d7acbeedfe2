package config

import (
	"fmt"
	"os"

	"trade-journal/src/models"

	"gopkg.in/yaml.v3"
)

// -----------------------------------------------------------------------------

// Config wraps models.MConfig and provides business logic methods
type Config struct {
	*models.MConfig
}

// -----------------------------------------------------------------------------

// NewConfig creates a new MConfig instance from YAML file
func NewConfig(configPath string) (*Config, error) {
	// 1. Read the YAML file content
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", configPath, err)
	}

	// 2. Unmarshal data into the models struct
	var modelConfig models.MConfig
	if err := yaml.Unmarshal(data, &modelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config from YAML: %w", err)
	}

	config := &Config{MConfig: &modelConfig}
	config.applyDefaults()

	// 3. Validate the loaded configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// -----------------------------------------------------------------------------

// applyDefaults fills the journal knobs the YAML may omit.
func (c *Config) applyDefaults() {
	if c.Journal.Directory == "" {
		c.Journal.Directory = "Logs"
	}
	if c.Journal.RetentionDays == 0 {
		c.Journal.RetentionDays = 30
	}
	if c.Journal.OpenRetries == 0 {
		c.Journal.OpenRetries = 3
	}
	if c.Journal.OpenRetryDelayMs == 0 {
		c.Journal.OpenRetryDelayMs = 200
	}
	if c.Journal.PersistIntervalSeconds == 0 {
		c.Journal.PersistIntervalSeconds = 60
	}
	if c.Journal.HistoryCapacity == 0 {
		c.Journal.HistoryCapacity = 2000
	}
	if c.Terminal.Priority == "" {
		c.Terminal.Priority = models.KindInfo.FullName()
	}
	if c.Push.Priority == "" {
		c.Push.Priority = models.KindError.FullName()
	}
}

// -----------------------------------------------------------------------------

// Validate performs basic configuration validation
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("application name cannot be empty")
	}

	// Server configuration (Flattened)
	if c.Host == "" {
		return fmt.Errorf("server host cannot be empty")
	}
	if c.Port <= 1024 || c.Port > 65535 {
		return fmt.Errorf("invalid server port number: %d (must be between 1025 and 65535)", c.Port)
	}

	// Journal configuration
	if c.Journal.RetentionDays <= 0 {
		return fmt.Errorf("retention days must be greater than 0")
	}
	if c.Journal.OpenRetries <= 0 {
		return fmt.Errorf("open retries must be greater than 0")
	}
	if c.Journal.PersistIntervalSeconds <= 0 {
		return fmt.Errorf("persist interval must be greater than 0")
	}

	// Sink priorities must resolve to a known kind
	if _, ok := models.KindFromName(c.Terminal.Priority); !ok {
		return fmt.Errorf("unknown terminal priority: %s", c.Terminal.Priority)
	}
	if _, ok := models.KindFromName(c.Push.Priority); !ok {
		return fmt.Errorf("unknown push priority: %s", c.Push.Priority)
	}

	// Webhooks need both a name and a URL
	for i, wh := range c.Push.Webhooks {
		if wh.Name == "" {
			return fmt.Errorf("webhook %d must have a name", i)
		}
		if wh.URL == "" {
			return fmt.Errorf("webhook '%s' must have a url", wh.Name)
		}
	}

	// Network configuration
	if c.Network.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be greater than 0")
	}
	if c.Network.MaxRetries < 0 {
		return fmt.Errorf("max retries cannot be negative")
	}

	// Aggregation windows
	for i, window := range c.WindowsAgg {
		if window == "" {
			return fmt.Errorf("window aggregation %d cannot be empty", i)
		}
	}

	return nil
}

// -----------------------------------------------------------------------------

// TerminalPriority resolves the configured terminal threshold.
func (c *Config) TerminalPriority() models.MessageKind {
	k, _ := models.KindFromName(c.Terminal.Priority)
	return k
}

// PushPriority resolves the configured push threshold.
func (c *Config) PushPriority() models.MessageKind {
	k, _ := models.KindFromName(c.Push.Priority)
	return k
}

// -----------------------------------------------------------------------------

// Save persists the current configuration to the specified YAML file path
func (c *Config) Save(configPath string) error {
	// 1. Marshal the struct to YAML
	data, err := yaml.Marshal(c.MConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// 2. Write to file (0644 permissions)
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config to file '%s': %w", configPath, err)
	}

	return nil
}
