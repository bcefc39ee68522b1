package enginelog

// Config for constructing a Handle (Factory data structure).
type Config struct {
	Callback LogFunc
	OnFatal  FatalHandler // optional; defaults to report-and-exit
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg Config
}

// NewBuilder starts an empty configuration; a callback is required before Build.
func NewBuilder() *Builder {
	return &Builder{}
}

// WithCallback sets the function every rendered line is delivered to.
func (b *Builder) WithCallback(fn LogFunc) *Builder {
	b.cfg.Callback = fn
	return b
}

// WithFatalHandler overrides the report-and-exit default; nil keeps the default.
func (b *Builder) WithFatalHandler(h FatalHandler) *Builder {
	b.cfg.OnFatal = h
	return b
}

// Build constructs the Handle and the Delegate it owns.
func (b *Builder) Build() (*Handle, error) {
	if b.cfg.Callback == nil {
		return nil, ErrNoCallback
	}
	return newHandle(NewDelegate(b.cfg.Callback, WithFatalHandler(b.cfg.OnFatal))), nil
}
