package models

// MConfig Structure
type MConfig struct {
	Name     string         `yaml:"name"`
	Host     string         `yaml:"host"`
	Port     int            `yaml:"port"`
	LogLevel string         `yaml:"log_level"`
	Journal  MJournalConfig `yaml:"journal"`
	Terminal MSinkConfig    `yaml:"terminal"`
	Push     MPushConfig    `yaml:"push"`
	Network  MNetworkConfig `yaml:"network"`
	// Aggregation windows for the message-rate statistics, e.g. "1m", "5m".
	WindowsAgg []string `yaml:"windows_aggregation"`
	// MIC codes of the markets whose sessions drive the prune schedule.
	Markets []string `yaml:"markets"`
}

type MJournalConfig struct {
	Directory              string `yaml:"directory"`
	RetentionDays          int    `yaml:"retention_days"`
	PersistIntervalSeconds int    `yaml:"persist_interval_seconds"`
	OpenRetries            int    `yaml:"open_retries"`
	OpenRetryDelayMs       int    `yaml:"open_retry_delay_ms"`
	HistoryCapacity        int    `yaml:"history_capacity"`
}

type MSinkConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Priority string `yaml:"priority"` // symbolic kind name, e.g. MESSAGE_ERROR
}

type MPushConfig struct {
	Enabled  bool             `yaml:"enabled"`
	Priority string           `yaml:"priority"`
	Webhooks []MWebhookConfig `yaml:"webhooks"`
}

type MWebhookConfig struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type MNetworkConfig struct {
	RequestTimeout int    `yaml:"timeout"`
	MaxRetries     int    `yaml:"retries"`
	UserAgent      string `yaml:"user_agent"`
}
