package devregistry

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/edgectl/edgectl/pkg/envvar"
)

// registryDirEnv is the canonical environment variable naming the registry
// directory; registryDirEnvDeprecated is its pre-rename alias.
const (
	registryDirEnv           = "EDGECTL_REGISTRY_DIR"
	registryDirEnvDeprecated = "EDGE_REGISTRY_PATH"
)

// Reader loads a point-in-time snapshot of the local development registry.
type Reader interface {
	Read() (Snapshot, error)
}

// DirReader reads a registry snapshot from a directory containing one JSON
// file per running worker, named after the worker.
type DirReader struct {
	dir string
}

// NewDirReader creates a DirReader for the given registry directory.
func NewDirReader(dir string) *DirReader {
	return &DirReader{dir: dir}
}

// Dir returns the directory the reader loads snapshots from.
func (r *DirReader) Dir() string {
	return r.dir
}

// DefaultDir resolves the registry directory from the environment, falling
// back to ~/.edgectl/registry.
func DefaultDir() string {
	return envvar.Resolve(registryDirEnv, registryDirEnvDeprecated, func() string {
		home, err := os.UserHomeDir()
		if err != nil {
			return filepath.Join(".edgectl", "registry")
		}

		return filepath.Join(home, ".edgectl", "registry")
	})
}

// Read loads the current snapshot. A missing directory yields an empty
// snapshot: the registry is enabled but no worker has registered. Files that
// cannot be read or parsed are skipped; dev sessions may remove or rewrite
// their entries at any moment.
func (r *DirReader) Read() (Snapshot, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, nil
		}

		return nil, fmt.Errorf("read registry directory %s: %w", r.dir, err)
	}

	snapshot := make(Snapshot, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		name, definition, ok := r.readEntry(entry.Name())
		if !ok {
			continue
		}

		snapshot[name] = definition
	}

	return snapshot, nil
}

// readEntry loads a single worker definition file. The worker name is the
// file name, with a .json extension stripped when present.
func (r *DirReader) readEntry(fileName string) (string, Definition, bool) {
	data, err := os.ReadFile(filepath.Join(r.dir, fileName))
	if err != nil {
		slog.Warn("skipping unreadable registry entry", "file", fileName, "error", err)

		return "", Definition{}, false
	}

	var definition Definition

	err = json.Unmarshal(data, &definition)
	if err != nil {
		slog.Warn("skipping malformed registry entry", "file", fileName, "error", err)

		return "", Definition{}, false
	}

	return strings.TrimSuffix(fileName, ".json"), definition, true
}
