package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/bnema/localport/internal/domain/validation"
)

const maxSuggestionsLimit = 20

func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateOmnibox(config)...)
	validationErrors = append(validationErrors, validateBrowser(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "text", "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be text, console or json (got %q)", config.Logging.Format))
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	if config.Logging.MaxAge < 0 {
		validationErrors = append(validationErrors, "logging.max_age must be non-negative")
	}
	return validationErrors
}

func validateOmnibox(config *Config) []string {
	var validationErrors []string
	switch config.Omnibox.Scheme {
	case "http", "https":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("omnibox.scheme must be http or https (got %q)", config.Omnibox.Scheme))
	}
	if config.Omnibox.Host == "" {
		validationErrors = append(validationErrors, "omnibox.host cannot be empty")
	} else if strings.ContainsAny(config.Omnibox.Host, "/:?# ") {
		validationErrors = append(validationErrors, "omnibox.host must be a bare host name without port or path")
	}
	if config.Omnibox.MaxSuggestions < 1 || config.Omnibox.MaxSuggestions > maxSuggestionsLimit {
		validationErrors = append(validationErrors,
			fmt.Sprintf("omnibox.max_suggestions must be between 1 and %d", maxSuggestionsLimit))
	}
	return validationErrors
}

func validateBrowser(config *Config) []string {
	var validationErrors []string
	switch config.Browser.Backend {
	case BrowserBackendCDP:
		u, err := url.Parse(config.Browser.CDPURL)
		if err != nil || u.Host == "" {
			validationErrors = append(validationErrors,
				fmt.Sprintf("browser.cdp_url must be an absolute URL like http://127.0.0.1:9222 (got %q)", config.Browser.CDPURL))
		}
	case BrowserBackendSystem, BrowserBackendMemory:
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("browser.backend must be cdp, system or memory (got %q)", config.Browser.Backend))
	}
	if config.Browser.TimeoutSeconds < 1 {
		validationErrors = append(validationErrors, "browser.timeout_seconds must be at least 1")
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	p := config.Appearance.Palette
	return validation.ValidatePaletteHex("appearance.palette", map[string]string{
		"accent": p.Accent,
		"text":   p.Text,
		"muted":  p.Muted,
		"match":  p.Match,
		"error":  p.Error,
		"border": p.Border,
	})
}
