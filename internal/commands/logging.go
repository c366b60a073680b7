package commands

import (
	"strings"

	"github.com/prakan/go-content-admin/internal/logging"
	"github.com/prakan/go-content-admin/pkg/interfaces"
)

const commandModuleRoot = "admin.commands"

// CommandLogger returns a module-scoped logger for command handlers, enriching it with
// consistent structured fields so command executions stay correlated in the log stream.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	logger := logging.ModuleLogger(provider, commandModuleRoot+"."+name)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}
