// Package logging builds the process logger: slog in front, zap behind it outside dev.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	slogzap "github.com/samber/slog-zap/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures New.
type Options struct {
	Env     string
	Service string
	Level   slog.Level
	// Output defaults to stdout.
	Output io.Writer
}

// New returns a logger tagged with service and env. Dev gets human-readable
// text; every other env gets zap JSON lines.
func New(opts Options) *slog.Logger {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Service == "" {
		opts.Service = "vidchat"
	}
	env := strings.ToLower(strings.TrimSpace(opts.Env))
	if env == "" {
		env = "dev"
	}

	var h slog.Handler
	if env == "dev" {
		h = slog.NewTextHandler(opts.Output, &slog.HandlerOptions{Level: opts.Level})
	} else {
		h = newZapHandler(opts.Output, opts.Level)
	}

	return slog.New(h).With(
		slog.String("service", opts.Service),
		slog.String("env", env),
	)
}

func newZapHandler(w io.Writer, lvl slog.Level) slog.Handler {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(w), toZapLevel(lvl))
	z := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	return slogzap.Option{Level: lvl, Logger: z}.NewZapHandler()
}

func toZapLevel(lvl slog.Level) zapcore.Level {
	switch {
	case lvl <= slog.LevelDebug:
		return zapcore.DebugLevel
	case lvl <= slog.LevelInfo:
		return zapcore.InfoLevel
	case lvl <= slog.LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
