package badgeradapter

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/trickstertwo/enginelog"
)

// Options returns badger.DefaultOptions(dir) logging through h.
// A nil or destroyed handle disables badger's logging altogether.
func Options(dir string, h *enginelog.Handle) badger.Options {
	return bind(badger.DefaultOptions(dir), h)
}

// InMemoryOptions is Options for a database that lives only in RAM.
func InMemoryOptions(h *enginelog.Handle) badger.Options {
	return bind(badger.DefaultOptions("").WithInMemory(true), h)
}

func bind(opts badger.Options, h *enginelog.Handle) badger.Options {
	if h == nil || h.Logger() == nil {
		return opts.WithLogger(nil)
	}
	return opts.WithLogger(New(h.Logger()))
}

// Set stores val under key in its own transaction.
func Set(db *badger.DB, key, val []byte) error {
	err := db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, val)
	})
	if err != nil {
		return fmt.Errorf("badger set %q: %w", key, err)
	}
	return nil
}

// Get copies the value stored under key into a pooled buffer.
// The caller owns the buffer and must hand it back with enginelog.ReleaseBuffer.
// A missing key wraps badger.ErrKeyNotFound.
func Get(db *badger.DB, key []byte) (*enginelog.Buffer, error) {
	var out *enginelog.Buffer
	err := db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		buf := enginelog.AcquireBuffer(int(item.ValueSize()))
		v, err := item.ValueCopy(buf.Bytes())
		if err != nil {
			enginelog.ReleaseBuffer(buf)
			return err
		}
		buf.SetBytes(v)
		out = buf
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("badger get %q: %w", key, err)
	}
	return out, nil
}
