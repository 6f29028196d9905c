// Package strict attaches type-conformance guards to callables.
//
// Wrap guards a typed Go func and returns a func of the same type:
//
//	add := strict.MustWrap(func(a, b int) int { return a + b },
//	    signature.WithParamNames("a", "b"),
//	)
//
// Guard covers dynamic callables that take positional and keyword arguments,
// typically described by YAML declarations (see signature.LoadYAML):
//
//	g, err := strict.New(sig, func(ctx context.Context, args *signature.Arguments) (any, error) {
//	    r, _ := args.Get("r")
//	    return r, nil
//	})
//	out, err := g.Call(ctx, []any{"x"}, nil)
//
// Guards can be switched off process-wide with SetEnabled or through
// configuration (see Configure); disabled guards call straight through.
package strict

import (
	"log/slog"

	"github.com/amp-labs/strict-hint/config"
	"github.com/amp-labs/strict-hint/logger"
	"go.uber.org/atomic"
)

var (
	enabled       = atomic.NewBool(true) //nolint:gochecknoglobals
	logRejections = atomic.NewBool(true) //nolint:gochecknoglobals
)

// SetEnabled turns conformance checking on or off for every guard.
func SetEnabled(on bool) {
	enabled.Store(on)
}

// Enabled reports whether guards currently check conformance.
func Enabled() bool {
	return enabled.Load()
}

// SetLogRejections controls whether rejected calls are logged.
func SetLogRejections(on bool) {
	logRejections.Store(on)
}

// Configure applies cfg to the guards and configures process logging from
// it. It returns the configured default logger. Without an environment to
// read, Configure(config.Default()) restores the initial settings.
func Configure(cfg config.Config) *slog.Logger {
	SetEnabled(cfg.Enabled)
	SetLogRejections(cfg.LogRejections)

	return logger.ConfigureLoggingWithOptions(cfg.LoggingOptions())
}
