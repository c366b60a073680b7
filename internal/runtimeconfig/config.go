package runtimeconfig

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ErrGatewayBaseURLRequired indicates the backend base URL is missing.
var ErrGatewayBaseURLRequired = errors.New("admin config: gateway base URL is required")

// ErrGatewayBaseURLInvalid indicates the backend base URL does not parse.
var ErrGatewayBaseURLInvalid = errors.New("admin config: gateway base URL is invalid")

// ErrPageSizeInvalid ensures the default page size is positive and offered.
var ErrPageSizeInvalid = errors.New("admin config: list page size must be a positive offered option")

// ErrPageSizeOptionInvalid flags a non-positive page size option.
var ErrPageSizeOptionInvalid = errors.New("admin config: list page size options must be positive")

// ErrStateProviderUnknown flags an unsupported app-state store.
var ErrStateProviderUnknown = errors.New("admin config: state provider is invalid")

var ErrLoggingProviderRequired = errors.New("admin config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("admin config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("admin config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("admin config: logging format is invalid")

// Config aggregates adapter bindings for the admin engine. Fields intentionally
// use simple types so host applications can extend them later.
type Config struct {
	Enabled  bool
	Gateway  GatewayConfig
	Cache    CacheConfig
	State    StateConfig
	List     ListConfig
	Logging  LoggingConfig
	Features Features
}

// GatewayConfig locates the REST backend.
type GatewayConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CacheConfig captures cache behaviour toggles for paged summaries and the
// optional repository read cache.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// StateConfig selects where client-local UI settings persist.
type StateConfig struct {
	Provider string
}

// ListConfig captures list view defaults.
type ListConfig struct {
	PageSize        int
	PageSizeOptions []int
}

// Features toggles module functionality.
type Features struct {
	Logger bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
}

// DefaultConfig returns opinionated defaults for an embedded admin engine.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Gateway: GatewayConfig{
			Timeout: 30 * time.Second,
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: 5 * time.Minute,
		},
		State: StateConfig{
			Provider: "memory",
		},
		List: ListConfig{
			PageSize:        10,
			PageSizeOptions: []int{10, 20, 50},
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
		Features: Features{},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if cfg.Enabled {
		base := strings.TrimSpace(cfg.Gateway.BaseURL)
		if base == "" {
			return ErrGatewayBaseURLRequired
		}
		parsed, err := url.Parse(base)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("%w: %s", ErrGatewayBaseURLInvalid, base)
		}
	}
	for _, option := range cfg.List.PageSizeOptions {
		if option <= 0 {
			return fmt.Errorf("%w: %d", ErrPageSizeOptionInvalid, option)
		}
	}
	if cfg.List.PageSize <= 0 || !containsOption(cfg.List.PageSizeOptions, cfg.List.PageSize) {
		return fmt.Errorf("%w: %d", ErrPageSizeInvalid, cfg.List.PageSize)
	}
	if provider := normalizeProvider(cfg.State.Provider); provider != "memory" && provider != "bun" {
		return fmt.Errorf("%w: %s", ErrStateProviderUnknown, cfg.State.Provider)
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func containsOption(options []int, size int) bool {
	for _, option := range options {
		if option == size {
			return true
		}
	}
	return false
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
