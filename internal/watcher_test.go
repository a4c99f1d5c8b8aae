package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher([]string{dir}, 150*time.Millisecond)
	require.NoError(t, err)

	var calls atomic.Int32
	done := make(chan struct{})
	go func() {
		w.Run(func() { calls.Add(1) })
		close(done)
	}()

	// A burst of writes closer together than the debounce interval must
	// coalesce into a single callback, delivered only after the burst
	// goes quiet.
	for i := 0; i < 4; i++ {
		path := filepath.Join(dir, fmt.Sprintf("log%d.jsonl", i))
		require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))
		time.Sleep(20 * time.Millisecond)
	}
	assert.Equal(t, int32(0), calls.Load())

	assert.Eventually(t, func() bool {
		return calls.Load() == 1
	}, 2*time.Second, 20*time.Millisecond)

	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	require.NoError(t, w.Close())
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop after Close")
	}
}

func TestWatcherSkipsMissingRoots(t *testing.T) {
	w, err := NewWatcher([]string{"", filepath.Join(t.TempDir(), "absent")}, time.Second)
	require.NoError(t, err)
	require.NoError(t, w.Close())
}
