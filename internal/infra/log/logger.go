// Package logs builds the process-wide slog logger from the env section of the config.
package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"marketplace/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
	// Output defaults to stdout.
	Output io.Writer `optional:"true"`
}

// New returns a JSON logger, or a text logger when env.log.pretty is set.
// Every record carries the service name and the deployment env.
func New(params Params) (*slog.Logger, error) {
	env := params.Config.Env

	level, err := parseLogLevel(env.Log.Level)
	if err != nil {
		return nil, err
	}

	out := params.Output
	if out == nil {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler = slog.NewJSONHandler(out, opts)
	if env.Log.Pretty {
		handler = slog.NewTextHandler(out, opts)
	}

	var attrs []slog.Attr
	if env.ServiceName != "" {
		attrs = append(attrs, slog.String("service", env.ServiceName))
	}
	if env.Env != "" {
		attrs = append(attrs, slog.String("env", env.Env))
	}

	return slog.New(handler.WithAttrs(attrs)), nil
}

// parseLogLevel converts string log level to slog.Level. An empty level means info.
func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}
}
