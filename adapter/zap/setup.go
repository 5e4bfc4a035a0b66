package zapadapter

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/hostlog"
	"github.com/trickstertwo/hostlog/adapter/host"
)

// Config is an explicit, code-first configuration for a zap-emulated host.
// No envs, no hidden init, one call to Use.
type Config struct {
	Writer        io.Writer             // default: os.Stderr
	JSON          bool                  // JSON lines instead of console output
	EncoderConfig zapcore.EncoderConfig // if zero, a sensible default is used
	HostOptions   []host.Option
}

// NewLogger builds the zap logger that stands in for the host's output.
func NewLogger(cfg Config) *zap.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	encCfg := cfg.EncoderConfig
	if encCfg.MessageKey == "" && encCfg.LevelKey == "" && encCfg.TimeKey == "" {
		encCfg = zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			MessageKey:     "message",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		}
	}

	var enc zapcore.Encoder
	if cfg.JSON {
		enc = zapcore.NewJSONEncoder(encCfg)
	} else {
		enc = zapcore.NewConsoleEncoder(encCfg)
	}

	// hostlog filters before dispatch; the host side accepts everything it is handed.
	core := zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core)
}

// Use builds a zap-emulated host adapter from Config and registers it as the
// process logger. It returns false if a logger was already registered.
func Use(cfg Config) bool {
	zl := NewLogger(cfg)
	return hostlog.Register(host.New(Table(zl), cfg.HostOptions...))
}
