// Package registry implements the `edgectl registry` command group for
// inspecting the local dev registry.
package registry

import (
	"fmt"
	"io"
	"sort"

	"github.com/edgectl/edgectl/pkg/devregistry"
	"github.com/edgectl/edgectl/pkg/di"
	"github.com/edgectl/edgectl/pkg/ui/notify"
	"github.com/spf13/cobra"
)

// NewRegistryCmd creates the registry command group.
func NewRegistryCmd(runtime *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "registry",
		Short:        "Inspect the local dev registry",
		SilenceUsage: true,
	}

	cmd.AddCommand(newListCmd(runtime))

	return cmd
}

// newListCmd creates the `registry list` command.
func newListCmd(runtime *di.Runtime) *cobra.Command {
	return &cobra.Command{
		Use:          "list",
		Short:        "List the workers currently registered by local dev sessions",
		RunE:         di.RunEWithRuntime(runtime, handleListRunE),
		SilenceUsage: true,
	}
}

// handleListRunE reads a registry snapshot and prints each registered worker
// with the capabilities it advertises.
func handleListRunE(cmd *cobra.Command, injector di.Injector) error {
	reader, err := di.ResolveRegistryReader(injector)
	if err != nil {
		return err
	}

	snapshot, err := reader.Read()
	if err != nil {
		return fmt.Errorf("read local dev registry: %w", err)
	}

	writer := cmd.OutOrStdout()

	if len(snapshot) == 0 {
		notify.Infof(writer, "no workers registered in the local dev registry")

		return nil
	}

	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		writeDefinition(writer, name, snapshot[name])
	}

	return nil
}

// writeDefinition prints one worker's advertised capabilities.
func writeDefinition(writer io.Writer, name string, def devregistry.Definition) {
	_, _ = fmt.Fprintf(writer, "- %s\n", name)

	for _, durableObject := range def.DurableObjects {
		_, _ = fmt.Fprintf(writer, "    Durable Object: %s\n", durableObject.ClassName)
	}

	entrypoints := make([]string, 0, len(def.EntrypointAddresses))
	for entrypoint := range def.EntrypointAddresses {
		entrypoints = append(entrypoints, entrypoint)
	}

	sort.Strings(entrypoints)

	for _, entrypoint := range entrypoints {
		address := def.EntrypointAddresses[entrypoint]
		_, _ = fmt.Fprintf(writer, "    Entrypoint: %s (%s:%d)\n", entrypoint, address.Host, address.Port)
	}
}
