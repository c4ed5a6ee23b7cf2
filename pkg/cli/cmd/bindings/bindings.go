// Package bindings implements the `edgectl bindings` command: it renders the
// worker's binding inventory and, under local dev, the connectivity status of
// bindings that reference other locally-running workers.
package bindings

import (
	"fmt"

	bindingspkg "github.com/edgectl/edgectl/pkg/bindings"
	"github.com/edgectl/edgectl/pkg/devregistry"
	"github.com/edgectl/edgectl/pkg/di"
	"github.com/edgectl/edgectl/pkg/ui/notify"
	"github.com/edgectl/edgectl/pkg/workerconfig"
	"github.com/spf13/cobra"
)

// bindingsFlags holds the flag values of one command invocation.
type bindingsFlags struct {
	configPath   string
	local        bool
	provision    bool
	multiWorker  bool
	remoteImages bool
	registry     bool
	watch        bool
}

// NewBindingsCmd creates the bindings command.
func NewBindingsCmd(runtime *di.Runtime) *cobra.Command {
	flags := &bindingsFlags{}

	cmd := &cobra.Command{
		Use:   "bindings",
		Short: "Show the worker's binding inventory",
		Long: "Show the worker's binding inventory. Under local dev, bindings that " +
			"reference other locally-running workers are checked against the local " +
			"dev registry and annotated with their connection status.",
		RunE: di.RunEWithRuntime(runtime, func(cmd *cobra.Command, injector di.Injector) error {
			return handleBindingsRunE(cmd, injector, flags)
		}),
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "",
		"Path to the worker configuration file (defaults to ./worker.{yaml,json,toml})")
	cmd.Flags().BoolVar(&flags.local, "local", true,
		"Render for the local development simulator")
	cmd.Flags().BoolVar(&flags.provision, "provision", false,
		"Render the inventory as a provisioning plan")
	cmd.Flags().BoolVar(&flags.multiWorker, "multi-worker", false,
		"Name the worker in the title, for multi-worker displays")
	cmd.Flags().BoolVar(&flags.remoteImages, "remote-images", false,
		"Treat the images binding as connected to the remote service")
	cmd.Flags().BoolVar(&flags.registry, "registry", true,
		"Consult the local dev registry for connection status")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false,
		"Re-render whenever the local dev registry changes")

	return cmd
}

// handleBindingsRunE loads the worker configuration, classifies its bindings,
// and renders the inventory, optionally re-rendering on registry changes.
func handleBindingsRunE(cmd *cobra.Command, injector di.Injector, flags *bindingsFlags) error {
	config, err := workerconfig.NewLoader(flags.configPath).Load()
	if err != nil {
		return fmt.Errorf("load worker configuration: %w", err)
	}

	reader, err := di.ResolveRegistryReader(injector)
	if err != nil {
		return err
	}

	ctx := renderContext(config, flags, cmd.Flags().Changed("remote-images"))

	render := func() error {
		snapshot, err := readSnapshot(reader, flags)
		if err != nil {
			return err
		}

		inventory := bindingspkg.Classify(&config.Bindings, config.TailConsumers, ctx, snapshot)
		renderInventory(cmd.OutOrStdout(), inventory, ctx)

		return nil
	}

	err = render()
	if err != nil || !flags.watch {
		return err
	}

	return watchAndRender(cmd, registryDir(reader), render)
}

// registryDir picks the directory to watch: the injected reader's directory
// when it is file-backed, the default location otherwise.
func registryDir(reader devregistry.Reader) string {
	if dirReader, ok := reader.(*devregistry.DirReader); ok {
		return dirReader.Dir()
	}

	return devregistry.DefaultDir()
}

// renderContext builds the per-render context from config and flags.
func renderContext(
	config *workerconfig.Config,
	flags *bindingsFlags,
	remoteImagesSet bool,
) bindingspkg.RenderContext {
	ctx := bindingspkg.RenderContext{
		LocalDev:     flags.local,
		Provisioning: flags.provision,
		MultiWorker:  flags.multiWorker,
		WorkerName:   config.Name,
	}

	if remoteImagesSet {
		imagesLocal := !flags.remoteImages
		ctx.ImagesLocalMode = &imagesLocal
	}

	return ctx
}

// readSnapshot loads a fresh registry snapshot, or nil when the registry is
// disabled or irrelevant outside local dev.
func readSnapshot(reader devregistry.Reader, flags *bindingsFlags) (devregistry.Snapshot, error) {
	if !flags.registry || !flags.local {
		return nil, nil
	}

	snapshot, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read local dev registry: %w", err)
	}

	return snapshot, nil
}

// watchAndRender re-renders the inventory whenever the registry directory
// changes, until the command context is cancelled.
func watchAndRender(cmd *cobra.Command, dir string, render func() error) error {
	watcher, err := devregistry.NewWatcher(dir, 0)
	if err != nil {
		return fmt.Errorf("watch local dev registry: %w", err)
	}

	changes, err := watcher.Start()
	if err != nil {
		return fmt.Errorf("watch local dev registry: %w", err)
	}

	defer func() {
		closeErr := watcher.Stop()
		if closeErr != nil {
			notify.Warningf(cmd.ErrOrStderr(), "stop registry watcher: %v", closeErr)
		}
	}()

	notify.Activityf(cmd.OutOrStdout(), "watching the local dev registry for changes...")

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case <-changes:
			err = render()
			if err != nil {
				return err
			}
		}
	}
}
