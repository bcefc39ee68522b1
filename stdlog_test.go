package enginelog

import (
	"log"
	"strings"
	"testing"
)

func TestNewStdLogger(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	std := NewStdLogger(NewDelegate(rec.log))
	std.Printf("flushed %d memtables", 2)
	std.Println("closing")

	got := rec.snapshot()
	if len(got) != 2 || got[0] != "flushed 2 memtables" || got[1] != "closing" {
		t.Fatalf("unexpected lines %q", got)
	}
}

func TestNewStdLoggerNil(t *testing.T) {
	t.Parallel()

	NewStdLogger(nil).Printf("dropped")
}

func TestNewStdLoggerUnwrapsStdLogger(t *testing.T) {
	t.Parallel()

	var out strings.Builder
	std := log.New(&out, "engine: ", 0)

	l := FromStdLogger(std)
	if got := NewStdLogger(l); got != std {
		t.Fatalf("expected the wrapped *log.Logger back, got %p want %p", got, std)
	}

	l.Logf("opened %d tables", 3)
	if out.String() != "engine: opened 3 tables\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestFromStdLoggerNil(t *testing.T) {
	t.Parallel()

	l := FromStdLogger(nil)
	if _, ok := l.(Nop); !ok {
		t.Fatalf("nil *log.Logger must map to Nop, got %T", l)
	}
	l.Logf("dropped %d", 1)
}
