package admin

import "github.com/prakan/go-content-admin/internal/runtimeconfig"

// Config is the runtime configuration for the admin module.
type Config = runtimeconfig.Config

// GatewayConfig controls the REST gateway client.
type GatewayConfig = runtimeconfig.GatewayConfig

// CacheConfig controls list page caching.
type CacheConfig = runtimeconfig.CacheConfig

// StateConfig selects the persistence backing for client-local state.
type StateConfig = runtimeconfig.StateConfig

// ListConfig controls list view paging defaults.
type ListConfig = runtimeconfig.ListConfig

// LoggingConfig controls structured logging output.
type LoggingConfig = runtimeconfig.LoggingConfig

// Features toggles optional subsystems.
type Features = runtimeconfig.Features

// Configuration validation errors.
var (
	ErrGatewayBaseURLRequired  = runtimeconfig.ErrGatewayBaseURLRequired
	ErrGatewayBaseURLInvalid   = runtimeconfig.ErrGatewayBaseURLInvalid
	ErrPageSizeInvalid         = runtimeconfig.ErrPageSizeInvalid
	ErrPageSizeOptionInvalid   = runtimeconfig.ErrPageSizeOptionInvalid
	ErrStateProviderUnknown    = runtimeconfig.ErrStateProviderUnknown
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

// DefaultConfig returns a working configuration with sensible defaults.
// Callers must still set Gateway.BaseURL before use.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
