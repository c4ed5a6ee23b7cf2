// Package di wires shared dependencies into command handlers through a
// samber/do injector, so tests can substitute fakes by registering their own
// providers.
package di

import (
	"fmt"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// Injector is the dependency injector handed to providers and handlers.
type Injector = do.Injector

// Module registers one or more providers with the injector.
type Module func(Injector) error

// Runtime owns the injector shared by the command tree for one process.
type Runtime struct {
	injector Injector
	modules  []Module
	loaded   bool
}

// New constructs a Runtime from the given modules. Modules run lazily on
// first Invoke, so construction never fails.
func New(modules ...Module) *Runtime {
	return &Runtime{
		injector: do.New(),
		modules:  modules,
	}
}

// Invoke runs fn with the runtime's injector, loading modules first if
// needed.
func (r *Runtime) Invoke(fn func(Injector) error) error {
	if !r.loaded {
		for _, module := range r.modules {
			err := module(r.injector)
			if err != nil {
				return fmt.Errorf("load runtime module: %w", err)
			}
		}

		r.loaded = true
	}

	return fn(r.injector)
}

// RunEWithRuntime adapts a handler needing the injector into a cobra RunE.
func RunEWithRuntime(
	runtime *Runtime,
	handler func(cmd *cobra.Command, injector Injector) error,
) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		return runtime.Invoke(func(injector Injector) error {
			return handler(cmd, injector)
		})
	}
}
