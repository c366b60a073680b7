package logging

import (
	"context"

	"github.com/prakan/go-content-admin/pkg/interfaces"
)

const (
	rootModule    = "admin"
	contentModule = "admin.content"
	formModule    = "admin.form"
	listModule    = "admin.list"
	gatewayModule = "admin.gateway"
	stateModule   = "admin.state"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The module identifier rides
// along as a structured field so entries can be filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ContentLogger returns the namespace reserved for content schema concerns.
func ContentLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, contentModule)
}

// FormLogger returns the namespace reserved for form controllers.
func FormLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, formModule)
}

// ListLogger returns the namespace reserved for the list view-model.
func ListLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, listModule)
}

// GatewayLogger returns the namespace reserved for the REST gateway.
func GatewayLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, gatewayModule)
}

// StateLogger returns the namespace reserved for persisted app state.
func StateLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, stateModule)
}

// NoOp returns a logger that drops every entry. It satisfies the Logger
// contract so services operate safely when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
