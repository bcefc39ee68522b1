package enginelog

import (
	"errors"
	"testing"
)

func TestCreateHandleLogsThroughCallback(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	h := CreateHandle(rec.log)
	defer DestroyHandle(h)

	l := h.Logger()
	if l == nil {
		t.Fatalf("live handle must expose a logger")
	}
	l.Logf("opened %s", "db")

	got := rec.snapshot()
	if len(got) != 1 || got[0] != "opened db" {
		t.Fatalf("expected [opened db], got %q", got)
	}
}

func TestCreateDestroyWithoutLogging(t *testing.T) {
	t.Parallel()

	calls := 0
	h := CreateHandle(func(string) { calls++ })
	DestroyHandle(h)

	if h.Logger() != nil {
		t.Fatalf("destroyed handle must not expose its adapter")
	}
	if calls != 0 {
		t.Fatalf("create/destroy must not log, got %d calls", calls)
	}
}

func TestDestroyHandleNil(t *testing.T) {
	t.Parallel()

	DestroyHandle(nil)
	var h *Handle
	if err := h.Close(); err != nil {
		t.Fatalf("Close on nil handle: %v", err)
	}
}

func TestCreateHandleNilPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrNoCallback) {
			t.Fatalf("expected ErrNoCallback panic, got %v", r)
		}
	}()
	CreateHandle(nil)
}

func TestBuilder(t *testing.T) {
	t.Parallel()

	if _, err := NewBuilder().Build(); !errors.Is(err, ErrNoCallback) {
		t.Fatalf("expected ErrNoCallback, got %v", err)
	}

	rec := &recorder{}
	fr := &fatalRecorder{}
	h, err := NewBuilder().WithCallback(rec.log).WithFatalHandler(fr.handle).Build()
	if err != nil {
		t.Fatalf("build handle: %v", err)
	}
	defer h.Close()

	n := 0
	h.Logger().Logf("pending=%v", growing{n: &n, step: 3})
	h.Logger().Logf("after %d", 1)

	if len(fr.errs) != 0 {
		t.Fatalf("expected no fatal errors, got %v", fr.errs)
	}
	if got := rec.snapshot(); len(got) != 2 || got[0] != "pending=xxxxxx" || got[1] != "after 1" {
		t.Fatalf("expected [pending=xxxxxx after 1], got %q", got)
	}
}

func TestBuilderFatalHandler(t *testing.T) {
	// swaps package state; not parallel
	old := measureSink
	defer func() { measureSink = old }()
	measureSink = failingWriter{}

	fr := &fatalRecorder{}
	h, err := NewBuilder().WithCallback(func(string) {}).WithFatalHandler(fr.handle).Build()
	if err != nil {
		t.Fatalf("build handle: %v", err)
	}
	defer h.Close()

	h.Logger().Logf("value=%d", 42)
	if len(fr.errs) != 1 || !errors.Is(fr.errs[0], ErrRender) {
		t.Fatalf("expected the builder's fatal handler to get ErrRender, got %v", fr.errs)
	}
}

func TestScopedDestroysOnError(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	sentinel := errors.New("engine open failed")
	var kept *Handle

	err := Scoped(rec.log, func(h *Handle) error {
		kept = h
		h.Logger().Logf("opening %s", "/tmp/db")
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected body error, got %v", err)
	}
	if kept.Logger() != nil {
		t.Fatalf("handle must be destroyed when Scoped returns")
	}
	if got := rec.snapshot(); len(got) != 1 || got[0] != "opening /tmp/db" {
		t.Fatalf("expected one line, got %q", got)
	}
}

func TestScopedDestroysOnPanic(t *testing.T) {
	t.Parallel()

	var kept *Handle
	func() {
		defer func() { _ = recover() }()
		_ = Scoped(func(string) {}, func(h *Handle) error {
			kept = h
			panic("boom")
		})
	}()
	if kept == nil || kept.Logger() != nil {
		t.Fatalf("handle must be destroyed after a panic")
	}
}
