package hostlog

import (
	"sync"
	"testing"
	"time"

	"github.com/trickstertwo/xclock"
)

// stubAdapter is a minimal Adapter for tests. It records every record it
// receives.
type stubAdapter struct {
	mu   sync.Mutex
	recs []Record
}

func (a *stubAdapter) Log(rec Record) {
	a.mu.Lock()
	defer a.mu.Unlock()
	rec.Args = append([]any(nil), rec.Args...)
	a.recs = append(a.recs, rec)
}

func (a *stubAdapter) records() []Record {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]Record(nil), a.recs...)
}

func newStubLogger(t *testing.T, min Level) (*Logger, *stubAdapter) {
	t.Helper()
	adapter := &stubAdapter{}
	logger, err := NewBuilder().WithAdapter(adapter).WithMinLevel(min).Build()
	if err != nil {
		t.Fatalf("build logger: %v", err)
	}
	return logger, adapter
}

func TestBuilder_RequiresAdapter(t *testing.T) {
	t.Parallel()

	if _, err := NewBuilder().Build(); err != ErrNoAdapter {
		t.Fatalf("expected ErrNoAdapter, got %v", err)
	}
}

func TestBuilder_DefaultThreshold(t *testing.T) {
	t.Parallel()

	logger, err := NewBuilder().WithAdapter(&stubAdapter{}).Build()
	if err != nil {
		t.Fatalf("build logger: %v", err)
	}
	if logger.Threshold() != LevelDebug {
		t.Fatalf("default threshold: got %s", logger.Threshold())
	}
}

func TestLogger_StampsTimestamp(t *testing.T) {
	// Freeze time for determinism
	old := xclock.Default()
	defer xclock.SetDefault(old)
	ft := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	xclock.SetDefault(xclock.NewFrozen(ft))

	logger, adapter := newStubLogger(t, LevelDebug)
	logger.Info().Msg("state changed")

	explicit := time.Date(2030, 2, 2, 3, 4, 5, 0, time.UTC)
	logger.Log(Record{Level: LevelWarn, At: explicit, Message: "kept"})

	recs := adapter.records()
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if !recs[0].At.Equal(ft) {
		t.Fatalf("timestamp mismatch: got %s want %s", recs[0].At, ft)
	}
	if !recs[1].At.Equal(explicit) {
		t.Fatalf("explicit timestamp overwritten: got %s", recs[1].At)
	}
}

func TestLogger_MsgAndMsgf(t *testing.T) {
	t.Parallel()

	logger, adapter := newStubLogger(t, LevelDebug)
	logger.Debug().Msg("50% done")
	logger.Error().Msgf("%d of %d", 1, 2)
	logger.Warn().Msgf("")

	recs := adapter.records()
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	if r := recs[0]; r.Level != LevelDebug || r.Formatted() || r.Message != "50% done" {
		t.Fatalf("Msg record mismatch: %+v", r)
	}
	if r := recs[1]; r.Level != LevelError || !r.Formatted() || r.Format != "%d of %d" || len(r.Args) != 2 {
		t.Fatalf("Msgf record mismatch: %+v", r)
	}
	if r := recs[2]; r.Formatted() || r.Message != "" {
		t.Fatalf("empty Msgf record mismatch: %+v", r)
	}
}

func TestLogger_ThresholdFilter(t *testing.T) {
	t.Parallel()

	logger, adapter := newStubLogger(t, LevelWarn)
	logger.Info().Msg("not emitted")
	logger.Debug().Msgf("not %s", "emitted")
	logger.Warn().Msg("emitted")

	recs := adapter.records()
	if len(recs) != 1 || recs[0].Message != "emitted" {
		t.Fatalf("unexpected records: %+v", recs)
	}
	if logger.Info().Enabled() || !logger.Error().Enabled() {
		t.Fatal("Event.Enabled disagrees with threshold")
	}
}

func TestLogger_DebugFloor(t *testing.T) {
	t.Parallel()

	logger, _ := newStubLogger(t, DefaultThreshold)
	for _, level := range []Level{LevelError, LevelWarn, LevelInfo, LevelDebug} {
		if !logger.Enabled(level) {
			t.Fatalf("%s should be enabled under the Debug floor", level)
		}
	}
	if logger.Enabled(LevelTrace) {
		t.Fatal("trace should be disabled under the Debug floor")
	}
}
