package enginelog

// Handle is an opaque, single-owner reference to a logging adapter.
// Pass Logger() to the engine's configuration; call Close (or DestroyHandle)
// once the engine has stopped logging through it.
//
// A Handle must be fully built before the engine sees it and must not be destroyed
// while the engine may still log through it; there is no reference counting.
type Handle struct {
	rep *Delegate
}

func newHandle(d *Delegate) *Handle {
	return &Handle{rep: d}
}

// CreateHandle returns a handle whose adapter forwards every line to fn.
// A nil fn is a programming error and panics, surfacing misconfiguration at startup.
func CreateHandle(fn LogFunc) *Handle {
	h, err := NewBuilder().WithCallback(fn).Build()
	if err != nil {
		panic(err)
	}
	return h
}

// DestroyHandle releases the adapter owned by h, then h itself.
// A nil h is tolerated and does nothing. Using h afterwards is a caller error:
// Logger returns nil from then on.
func DestroyHandle(h *Handle) {
	if h == nil {
		return
	}
	h.rep = nil
}

// Logger returns the capability the engine logs through.
func (h *Handle) Logger() Logger {
	if h.rep == nil {
		return nil
	}
	return h.rep
}

// Close implements io.Closer. It never fails.
func (h *Handle) Close() error {
	DestroyHandle(h)
	return nil
}

// Scoped creates a handle for fn, runs body with it and destroys the handle on every
// exit path, panics included. body's error is returned unchanged.
func Scoped(fn LogFunc, body func(h *Handle) error) error {
	h := CreateHandle(fn)
	defer DestroyHandle(h)
	return body(h)
}
