// Package cmd assembles the edgectl command tree.
package cmd

import (
	"fmt"

	bindingscmd "github.com/edgectl/edgectl/pkg/cli/cmd/bindings"
	registrycmd "github.com/edgectl/edgectl/pkg/cli/cmd/registry"
	"github.com/edgectl/edgectl/pkg/di"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command with version info and
// subcommands.
func NewRootCmd(version, commit, date string) *cobra.Command {
	runtime := di.NewRuntime()

	cmd := &cobra.Command{
		Use:          "edgectl",
		Short:        "edgectl is a CLI tool for developing and inspecting edge workers locally",
		Long:         "edgectl is a CLI tool for developing and inspecting edge workers locally",
		RunE:         handleRootRunE,
		SilenceUsage: true,
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	cmd.AddCommand(bindingscmd.NewBindingsCmd(runtime))
	cmd.AddCommand(registrycmd.NewRegistryCmd(runtime))

	return cmd
}

// Execute runs the provided root command and handles errors.
func Execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// handleRootRunE handles the bare root command.
func handleRootRunE(cmd *cobra.Command, _ []string) error {
	// The err can safely be ignored, as it can never fail at runtime.
	_ = cmd.Help()

	return nil
}
