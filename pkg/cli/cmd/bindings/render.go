package bindings

import (
	"fmt"
	"io"
	"strings"

	bindingspkg "github.com/edgectl/edgectl/pkg/bindings"
	"github.com/edgectl/edgectl/pkg/ui/notify"
	"github.com/mitchellh/go-wordwrap"
)

// footnoteWidth is the wrap width for the connectivity footnote.
const footnoteWidth = 80

// connectionFootnote explains the connectivity markers, once per process.
//
//nolint:gochecknoglobals // The footnote is deliberately once-per-process.
var connectionFootnote notify.OnceNotifier

// renderInventory writes the classified inventory as grouped display lines.
func renderInventory(writer io.Writer, inventory bindingspkg.Inventory, ctx bindingspkg.RenderContext) {
	notify.Titlef(writer, "🔗", "%s", inventoryTitle(ctx))

	if len(inventory.Groups) == 0 && len(inventory.TailConsumers) == 0 {
		notify.Infof(writer, "no bindings declared")

		return
	}

	for _, group := range inventory.Groups {
		_, _ = fmt.Fprintf(writer, "- %s:\n", group.Name)

		for _, entry := range group.Entries {
			writeEntry(writer, entry)
		}
	}

	if len(inventory.TailConsumers) > 0 {
		_, _ = fmt.Fprintln(writer, "- Tail Consumers:")

		for _, line := range inventory.TailConsumers {
			_, _ = fmt.Fprintf(writer, "  - %s\n", line)
		}
	}

	if inventory.HasConnectionStatus {
		connectionFootnote.Infof(writer, "%s", wordwrap.WrapString(
			"Connection status is resolved against the local dev registry on every render: "+
				"a worker shows as connected when another local dev session is running it "+
				"and exposes the required class or entrypoint.",
			footnoteWidth,
		))
	}
}

// inventoryTitle frames the inventory per render mode.
func inventoryTitle(ctx bindingspkg.RenderContext) string {
	if ctx.Provisioning {
		return "The following bindings will be provisioned:"
	}

	if ctx.MultiWorker && ctx.WorkerName != "" {
		return fmt.Sprintf("%s has access to the following bindings:", ctx.WorkerName)
	}

	return "Your worker has access to the following bindings:"
}

// writeEntry writes one display entry. Value-less entries render as the bare
// key; multi-line values are indented under their key.
func writeEntry(writer io.Writer, entry bindingspkg.Entry) {
	if entry.Value == "" {
		_, _ = fmt.Fprintf(writer, "  - %s\n", entry.Key)

		return
	}

	if strings.Contains(entry.Value, "\n") {
		indented := strings.ReplaceAll(entry.Value, "\n", "\n      ")
		_, _ = fmt.Fprintf(writer, "  - %s:\n      %s\n", entry.Key, indented)

		return
	}

	_, _ = fmt.Fprintf(writer, "  - %s: %s\n", entry.Key, entry.Value)
}
