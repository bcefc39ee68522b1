package enginelog

// Logger is the logging capability a storage engine is handed.
// Logf renders format and args into one line; implementations decide where it goes.
type Logger interface {
	Logf(format string, args ...any)
}

// LogFunc receives one finished log line. The string is owned by the callee.
// It may be called concurrently when the engine logs from several goroutines.
type LogFunc func(msg string)

// LoggerFunc bridges any Printf-style function to Logger.
//
//	h := enginelog.LoggerFunc(log.Printf)
type LoggerFunc func(format string, args ...any)

func (f LoggerFunc) Logf(format string, args ...any) { f(format, args...) }

// Nop discards every line.
type Nop struct{}

func (Nop) Logf(string, ...any) {}

// Delegate adapts a LogFunc to Logger (Adapter pattern).
//
// Every Logf call renders one complete line and hands it to the callback exactly once.
// The engine only ever sees Logger; the callback only ever sees finished strings.
//
// Optimizations:
//   - Measure-then-render: the line size is known before any buffer is chosen, so long
//     lines are never truncated.
//   - Lines up to ScratchSize bytes are rendered on the stack; the delivered string is
//     the only allocation.
//   - Longer lines use a single heap buffer of exactly the measured size, which is
//     delivered without a copy.
//
// Concurrency:
//
//	Immutable after construction and free of locks. Concurrent Logf calls never share a
//	buffer, but they may enter the callback concurrently, so the callback must be safe
//	for that when the engine logs from several goroutines.
type Delegate struct {
	fn    LogFunc
	fatal FatalHandler
}

// Option configures a Delegate.
type Option func(*Delegate)

// WithFatalHandler replaces the handler invoked when a line cannot be rendered.
// A nil handler keeps the default, which terminates the process.
func WithFatalHandler(h FatalHandler) Option {
	return func(d *Delegate) {
		if h != nil {
			d.fatal = h
		}
	}
}

// NewDelegate wraps fn. No formatting happens here and fn is not validated;
// calling Logf on a Delegate built from a nil fn panics.
func NewDelegate(fn LogFunc, opts ...Option) *Delegate {
	d := &Delegate{fn: fn, fatal: defaultFatal}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Logf renders the line and invokes the callback exactly once. If the formatting pass
// fails, the fatal handler runs instead and the callback is skipped.
func (d *Delegate) Logf(format string, args ...any) {
	msg, err := render(format, args)
	if err != nil {
		d.fatal(err)
		return
	}
	d.fn(msg)
}

var (
	_ Logger = (*Delegate)(nil)
	_ Logger = Nop{}
	_ Logger = LoggerFunc(nil)
)
