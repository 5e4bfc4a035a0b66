package zapadapter

import (
	"io"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/hostlog"
	"github.com/trickstertwo/hostlog/adapter/host"
)

func newBenchZap(level zapcore.Level) *zap.Logger {
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		LevelKey:    "level",
		MessageKey:  "message",
		EncodeLevel: zapcore.LowercaseLevelEncoder,
	})
	core := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), level)
	return zap.New(core)
}

func BenchmarkZapHost_Info(b *testing.B) {
	a := host.New(Table(newBenchZap(zapcore.InfoLevel)))
	rec := hostlog.Record{Level: hostlog.LevelInfo, Message: "bench"}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Log(rec)
	}
}

func BenchmarkZapHost_DebugDisabledOnHost(b *testing.B) {
	a := host.New(Table(newBenchZap(zapcore.InfoLevel)))
	rec := hostlog.Record{Level: hostlog.LevelDebug, Format: "scanned %d", Args: []any{42}}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.Log(rec)
	}
}
