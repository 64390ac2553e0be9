package config

import "time"

// Config is the complete localport configuration.
type Config struct {
	Database      DatabaseConfig      `mapstructure:"database" toml:"database" json:"database"`
	Logging       LoggingConfig       `mapstructure:"logging" toml:"logging" json:"logging"`
	Omnibox       OmniboxConfig       `mapstructure:"omnibox" toml:"omnibox" json:"omnibox"`
	Notifications NotificationsConfig `mapstructure:"notifications" toml:"notifications" json:"notifications"`
	Browser       BrowserConfig       `mapstructure:"browser" toml:"browser" json:"browser"`
	Appearance    AppearanceConfig    `mapstructure:"appearance" toml:"appearance" json:"appearance"`
}

// DatabaseConfig locates the SQLite file holding the port history.
type DatabaseConfig struct {
	// Path defaults to $XDG_DATA_HOME/localport/localport.sqlite when empty.
	Path string `mapstructure:"path" toml:"path" json:"path" jsonschema:"description=SQLite database file"`
}

// LoggingConfig controls zerolog output.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format        string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=text,enum=console,enum=json"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAge        int    `mapstructure:"max_age" toml:"max_age" json:"max_age" jsonschema:"minimum=0,description=Days to keep rotated logs"`
}

// OmniboxConfig controls how typed ports become URLs and suggestions.
type OmniboxConfig struct {
	Scheme         string `mapstructure:"scheme" toml:"scheme" json:"scheme" jsonschema:"enum=https,enum=http"`
	Host           string `mapstructure:"host" toml:"host" json:"host"`
	MaxSuggestions int    `mapstructure:"max_suggestions" toml:"max_suggestions" json:"max_suggestions" jsonschema:"minimum=1,maximum=20"`
}

// NotificationsConfig controls how invalid input is reported.
type NotificationsConfig struct {
	Enabled bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	// Desktop uses notify-send / osascript; otherwise notifications are printed.
	Desktop bool   `mapstructure:"desktop" toml:"desktop" json:"desktop"`
	Icon    string `mapstructure:"icon" toml:"icon" json:"icon"`
}

// BrowserBackend selects the tab host.
type BrowserBackend string

const (
	BrowserBackendCDP    BrowserBackend = "cdp"
	BrowserBackendSystem BrowserBackend = "system"
	BrowserBackendMemory BrowserBackend = "memory"
)

// BrowserConfig selects and configures the tab host.
type BrowserConfig struct {
	Backend BrowserBackend `mapstructure:"backend" toml:"backend" json:"backend" jsonschema:"enum=cdp,enum=system,enum=memory"`
	// CDPURL is the DevTools endpoint of a running Chromium, e.g. http://127.0.0.1:9222.
	CDPURL         string `mapstructure:"cdp_url" toml:"cdp_url" json:"cdp_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" toml:"timeout_seconds" json:"timeout_seconds" jsonschema:"minimum=1"`
}

// Timeout returns TimeoutSeconds as a duration.
func (c BrowserConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Palette holds the TUI colors.
type Palette struct {
	Accent string `mapstructure:"accent" toml:"accent" json:"accent"`
	Text   string `mapstructure:"text" toml:"text" json:"text"`
	Muted  string `mapstructure:"muted" toml:"muted" json:"muted"`
	Match  string `mapstructure:"match" toml:"match" json:"match"`
	Error  string `mapstructure:"error" toml:"error" json:"error"`
	Border string `mapstructure:"border" toml:"border" json:"border"`
}

// AppearanceConfig controls the interactive omnibox look.
type AppearanceConfig struct {
	Palette Palette `mapstructure:"palette" toml:"palette" json:"palette"`
}
