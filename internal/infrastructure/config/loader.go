package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager reading
// $XDG_CONFIG_HOME/localport/config.toml and LOCALPORT_* variables.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// LOCALPORT_OMNIBOX_HOST, LOCALPORT_BROWSER_CDP_URL, ...
	v.SetEnvPrefix("LOCALPORT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "LOCALPORT_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind LOCALPORT_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "LOCALPORT_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind LOCALPORT_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load reads the config file, writing a default one on first run.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	config.Omnibox.Scheme = strings.ToLower(strings.TrimSpace(config.Omnibox.Scheme))
	config.Omnibox.Host = strings.TrimSpace(config.Omnibox.Host)

	switch BrowserBackend(strings.ToLower(string(config.Browser.Backend))) {
	case BrowserBackendCDP, "":
		config.Browser.Backend = BrowserBackendCDP
	case BrowserBackendSystem:
		config.Browser.Backend = BrowserBackendSystem
	case BrowserBackendMemory:
		config.Browser.Backend = BrowserBackendMemory
	}
	config.Browser.CDPURL = strings.TrimSpace(config.Browser.CDPURL)
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	configFile := m.viper.ConfigFileUsed()
	if configFile == "" {
		var err error
		if configFile, err = GetConfigFile(); err != nil {
			return err
		}
	}
	if err := WriteConfigOrdered(cfg, configFile); err != nil {
		return err
	}

	// With Watch active the fsnotify callback reloads for us.
	if !m.watching {
		return m.reload()
	}
	return nil
}

// GetConfigFile returns the path of the config file in use.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	defaults := DefaultConfig()
	// Written empty so the XDG default keeps following the environment.
	defaults.Database.Path = ""
	if err := WriteConfigOrdered(defaults, configFile); err != nil {
		return err
	}

	if err := GenerateSchemaFile(filepath.Dir(configFile)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to write config schema: %v\n", err)
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s\n", configFile)
	return nil
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("database.path", "")

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)

	m.viper.SetDefault("omnibox.scheme", defaults.Omnibox.Scheme)
	m.viper.SetDefault("omnibox.host", defaults.Omnibox.Host)
	m.viper.SetDefault("omnibox.max_suggestions", defaults.Omnibox.MaxSuggestions)

	m.viper.SetDefault("notifications.enabled", defaults.Notifications.Enabled)
	m.viper.SetDefault("notifications.desktop", defaults.Notifications.Desktop)
	m.viper.SetDefault("notifications.icon", defaults.Notifications.Icon)

	m.viper.SetDefault("browser.backend", string(defaults.Browser.Backend))
	m.viper.SetDefault("browser.cdp_url", defaults.Browser.CDPURL)
	m.viper.SetDefault("browser.timeout_seconds", defaults.Browser.TimeoutSeconds)

	m.viper.SetDefault("appearance.palette.accent", defaults.Appearance.Palette.Accent)
	m.viper.SetDefault("appearance.palette.text", defaults.Appearance.Palette.Text)
	m.viper.SetDefault("appearance.palette.muted", defaults.Appearance.Palette.Muted)
	m.viper.SetDefault("appearance.palette.match", defaults.Appearance.Palette.Match)
	m.viper.SetDefault("appearance.palette.error", defaults.Appearance.Palette.Error)
	m.viper.SetDefault("appearance.palette.border", defaults.Appearance.Palette.Border)
}
