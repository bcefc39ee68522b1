package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInMemory(t *testing.T) {
	freezeClock(t)

	for _, b := range []Backend{BackendZerolog, BackendZap, BackendSlog} {
		t.Run(string(b), func(t *testing.T) {
			var out bytes.Buffer
			cfg := &Config{InMemory: true, Backend: string(b), Level: "info", Keys: 20, ValueSize: 300}

			require.NoError(t, run(cfg, &out))
			assert.Contains(t, out.String(), "wrote and read back 20 keys of 300 bytes")
			for _, line := range decodeLines(t, out.String()) {
				assert.Equal(t, "badger", line["engine"])
			}
		})
	}
}

func TestRunOnDisk(t *testing.T) {
	var out bytes.Buffer
	cfg := &Config{Dir: t.TempDir(), Backend: "zerolog", Level: "debug", Keys: 5, ValueSize: 16}

	require.NoError(t, run(cfg, &out))
	assert.True(t, strings.Contains(out.String(), `"level":"info"`))
}

func TestRootCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"run", "--in-memory", "--keys", "2", "--backend", "zap"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "wrote and read back 2 keys")
}
