package di

import (
	"fmt"

	"github.com/edgectl/edgectl/pkg/devregistry"
	"github.com/samber/do/v2"
)

// NewRuntime constructs the shared runtime container used by the root command
// and tests, registering default implementations.
func NewRuntime() *Runtime {
	return New(
		provideRegistryReader,
	)
}

// provideRegistryReader registers the local dev registry reader.
func provideRegistryReader(i Injector) error {
	do.Provide(i, func(Injector) (devregistry.Reader, error) {
		return devregistry.NewDirReader(devregistry.DefaultDir()), nil
	})

	return nil
}

// ResolveRegistryReader retrieves the registry reader dependency from the
// injector with consistent error handling.
func ResolveRegistryReader(injector Injector) (devregistry.Reader, error) {
	reader, err := do.Invoke[devregistry.Reader](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve registry reader dependency: %w", err)
	}

	return reader, nil
}
