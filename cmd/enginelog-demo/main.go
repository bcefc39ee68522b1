package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/spf13/cobra"
	"github.com/trickstertwo/xclock"
	"go.uber.org/multierr"

	"github.com/trickstertwo/enginelog"
	"github.com/trickstertwo/enginelog/adapter/badgeradapter"
)

var (
	// Version is set during build
	Version = "dev"
)

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:   "enginelog-demo",
		Short: "Route an embedded storage engine's log lines through a single callback",
		Long: `enginelog-demo opens a badger database whose only logging facility is an
enginelog handle. The handle's callback decodes the level tag and writes each
line to zerolog, zap or slog.

Examples:
  enginelog-demo run --in-memory
  enginelog-demo run --backend zap --level debug --keys 1000`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Write and read back keys while printing engine logs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cfg, out)
		},
	}
	registerFlags(runCmd.Flags())
	root.AddCommand(runCmd)
	return root
}

// run wires sink -> handle -> badger, exercises the engine and tears everything down
// in reverse order: database, then handle, then sink.
func run(cfg *Config, out io.Writer) (err error) {
	minSev, err := parseSeverity(cfg.Level)
	if err != nil {
		return err
	}
	sink, flush, err := newSink(Backend(cfg.Backend), out, minSev)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, flush()) }()

	return enginelog.Scoped(sink, func(h *enginelog.Handle) (err error) {
		opts := badgeradapter.Options(cfg.Dir, h)
		if cfg.InMemory {
			opts = badgeradapter.InMemoryOptions(h)
		}
		db, err := badger.Open(opts)
		if err != nil {
			return fmt.Errorf("open badger: %w", err)
		}
		defer func() { err = multierr.Append(err, db.Close()) }()

		start := xclock.Now()
		if err := exercise(db, cfg.Keys, cfg.ValueSize); err != nil {
			return err
		}
		h.Logger().Logf("INFO: wrote and read back %d keys of %d bytes in %s",
			cfg.Keys, cfg.ValueSize, xclock.Now().Sub(start))
		return nil
	})
}

func exercise(db *badger.DB, keys, size int) error {
	val := bytes.Repeat([]byte{'v'}, size)
	for i := 0; i < keys; i++ {
		if err := badgeradapter.Set(db, key(i), val); err != nil {
			return err
		}
	}
	for i := 0; i < keys; i++ {
		buf, err := badgeradapter.Get(db, key(i))
		if err != nil {
			return err
		}
		ok := bytes.Equal(buf.Bytes(), val)
		enginelog.ReleaseBuffer(buf)
		if !ok {
			return fmt.Errorf("key %s: value mismatch", key(i))
		}
	}
	return nil
}

func key(i int) []byte { return []byte(fmt.Sprintf("key-%08d", i)) }

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
