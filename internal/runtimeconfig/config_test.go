package runtimeconfig_test

import (
	"errors"
	"testing"

	"github.com/prakan/go-content-admin/internal/runtimeconfig"
)

func validConfig() runtimeconfig.Config {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Gateway.BaseURL = "https://api.example.com/admin"
	return cfg
}

func TestConfigValidate_AcceptsDefaultsWithBaseURL(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_RequiresBaseURLWhenEnabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Gateway.BaseURL = " "

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrGatewayBaseURLRequired) {
		t.Fatalf("expected ErrGatewayBaseURLRequired, got %v", err)
	}
}

func TestConfigValidate_AllowsMissingBaseURLWhenDisabled(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Enabled = false
	cfg.Gateway.BaseURL = ""

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_RejectsMalformedBaseURL(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Gateway.BaseURL = "not-a-url"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrGatewayBaseURLInvalid) {
		t.Fatalf("expected ErrGatewayBaseURLInvalid, got %v", err)
	}
}

func TestConfigValidate_PageSizeMustBeOffered(t *testing.T) {
	cfg := validConfig()
	cfg.List.PageSize = 15

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrPageSizeInvalid) {
		t.Fatalf("expected ErrPageSizeInvalid, got %v", err)
	}
}

func TestConfigValidate_RejectsNonPositivePageSizeOption(t *testing.T) {
	cfg := validConfig()
	cfg.List.PageSizeOptions = []int{10, 0}

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrPageSizeOptionInvalid) {
		t.Fatalf("expected ErrPageSizeOptionInvalid, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownStateProvider(t *testing.T) {
	cfg := validConfig()
	cfg.State.Provider = "cookie"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrStateProviderUnknown) {
		t.Fatalf("expected ErrStateProviderUnknown, got %v", err)
	}
}

func TestConfigValidate_RequiresLoggingProviderWhenFeatureEnabled(t *testing.T) {
	cfg := validConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = ""

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownLoggingProvider(t *testing.T) {
	cfg := validConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "syslog"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Features.Logger = true
	cfg.Logging.Level = "verbose"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
}
