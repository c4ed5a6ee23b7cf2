package envvar

import (
	"io"
	"os"
	"sync"

	"github.com/edgectl/edgectl/pkg/ui/notify"
)

// Resolver looks up environment variables by canonical name, falling back to a
// deprecated alias and finally to a computed default. When the deprecated
// alias is the value source, a deprecation notice is emitted once per alias
// for the lifetime of the resolver.
type Resolver struct {
	mu      sync.Mutex
	noticed map[string]bool
	writer  io.Writer
}

// NewResolver creates a Resolver that writes deprecation notices to writer.
// A nil writer defaults to os.Stderr.
func NewResolver(writer io.Writer) *Resolver {
	if writer == nil {
		writer = os.Stderr
	}

	return &Resolver{
		noticed: make(map[string]bool),
		writer:  writer,
	}
}

// defaultResolver backs the package-level Resolve function.
//
//nolint:gochecknoglobals // Deprecation notices are once-per-process state.
var defaultResolver = NewResolver(os.Stderr)

// Resolve looks up name using the process-wide default resolver.
func Resolve(name, deprecatedName string, fallback func() string) string {
	return defaultResolver.Resolve(name, deprecatedName, fallback)
}

// Resolve returns the value of the environment variable name if set, else the
// value of deprecatedName if set (emitting a one-time deprecation notice),
// else the result of fallback. A nil fallback yields an empty string.
func (r *Resolver) Resolve(name, deprecatedName string, fallback func() string) string {
	if value, ok := os.LookupEnv(name); ok {
		return value
	}

	if deprecatedName != "" {
		if value, ok := os.LookupEnv(deprecatedName); ok {
			r.notice(deprecatedName, name)

			return value
		}
	}

	if fallback == nil {
		return ""
	}

	return fallback()
}

// notice warns about a deprecated alias, at most once per alias.
func (r *Resolver) notice(deprecatedName, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.noticed[deprecatedName] {
		return
	}

	r.noticed[deprecatedName] = true

	notify.Warningf(r.writer, "%s is deprecated, use %s instead", deprecatedName, name)
}
