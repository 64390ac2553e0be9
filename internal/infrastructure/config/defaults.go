package config

import "github.com/bnema/localport/internal/domain/entity"

const (
	defaultMaxSuggestions = 3
	defaultBrowserTimeout = 10 // seconds
	defaultCDPURL         = "http://127.0.0.1:9222"

	defaultMaxLogSizeMB  = 10
	defaultMaxLogBackups = 3
	defaultMaxLogAgeDays = 7
)

func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			// Path is resolved in Load()
		},
		Logging: LoggingConfig{
			Level:         "info",
			Format:        "text",
			EnableFileLog: false,
			LogDir:        getDefaultLogDir(),
			MaxSizeMB:     defaultMaxLogSizeMB,
			MaxBackups:    defaultMaxLogBackups,
			MaxAge:        defaultMaxLogAgeDays,
		},
		Omnibox: OmniboxConfig{
			Scheme:         entity.DefaultScheme,
			Host:           entity.DefaultHost,
			MaxSuggestions: defaultMaxSuggestions,
		},
		Notifications: NotificationsConfig{
			Enabled: true,
			Desktop: true,
			Icon:    entity.DefaultNotificationIcon,
		},
		Browser: BrowserConfig{
			Backend: BrowserBackendCDP,
			CDPURL:  defaultCDPURL,
			TimeoutSeconds: defaultBrowserTimeout,
		},
		Appearance: AppearanceConfig{
			Palette: Palette{
				Accent: "#7aa2f7",
				Text:   "#c0caf5",
				Muted:  "#565f89",
				Match:  "#e0af68",
				Error:  "#f7768e",
				Border: "#3b4261",
			},
		},
	}
}
