package devregistry_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/edgectl/edgectl/pkg/devregistry"
	"github.com/stretchr/testify/require"
)

func TestWatcher_SignalsOnRegistryChange(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	watcher, err := devregistry.NewWatcher(dir, 50*time.Millisecond)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, watcher.Stop())
	})

	changes, err := watcher.Start()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "worker.json"), []byte(`{}`), 0o600))

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("expected a change signal after writing a registry entry")
	}
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	watcher, err := devregistry.NewWatcher(dir, 300*time.Millisecond)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, watcher.Stop())
	})

	changes, err := watcher.Start()
	require.NoError(t, err)

	// A burst of registry churn must coalesce: no signal may arrive before
	// the debounce window has elapsed after the last write.
	for i := range 3 {
		require.NoError(t, os.WriteFile(
			filepath.Join(dir, "worker.json"), []byte(`{}`), 0o600))

		if i < 2 {
			time.Sleep(50 * time.Millisecond)
		}
	}

	select {
	case <-changes:
		t.Fatal("received a change signal inside the debounce window")
	case <-time.After(100 * time.Millisecond):
	}

	select {
	case <-changes:
	case <-time.After(5 * time.Second):
		t.Fatal("expected a coalesced change signal after the debounce window")
	}
}

func TestWatcher_MissingDirectoryFailsToStart(t *testing.T) {
	t.Parallel()

	watcher, err := devregistry.NewWatcher(filepath.Join(t.TempDir(), "missing"), 0)
	require.NoError(t, err)

	_, err = watcher.Start()

	require.Error(t, err)
}
