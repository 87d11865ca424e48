package commands

import (
	"log/slog"

	"github.com/leapstack-labs/credsift/internal/cli/config"
	"github.com/leapstack-labs/credsift/pkg/compile"
	"github.com/leapstack-labs/credsift/pkg/query"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Compiler *compile.Compiler
}

// currentConfig and currentLogger are set by the root command's
// PersistentPreRunE before any subcommand runs.
var (
	currentConfig *config.Config
	currentLogger *slog.Logger
)

// SetCurrent installs the loaded config and logger for subcommands.
func SetCurrent(cfg *config.Config, logger *slog.Logger) {
	currentConfig = cfg
	currentLogger = logger
}

// NewCommandContext assembles the per-command dependencies.
func NewCommandContext() *CommandContext {
	cfg := currentConfig
	if cfg == nil {
		cfg = &config.Config{
			Dialect:      config.DefaultDialect,
			DefaultField: config.DefaultDefaultField,
			Table:        config.DefaultTable,
			EntityColumn: config.DefaultEntityColumn,
			Format:       config.DefaultFormat,
		}
	}
	logger := currentLogger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Compiler: compile.New(cfg.DialectOrDefault()),
	}
}

// defaultField resolves the configured routing for bare terms. Config
// validation already rejected unknown values; fall back to identity for
// the zero config.
func (c *CommandContext) defaultField() query.FieldKind {
	kind, err := c.Cfg.DefaultFieldKind()
	if err != nil {
		return query.FieldIdentity
	}
	return kind
}
