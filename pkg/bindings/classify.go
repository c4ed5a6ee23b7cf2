package bindings

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/edgectl/edgectl/pkg/devregistry"
	"sigs.k8s.io/yaml"
)

// Group name constants, one per binding kind.
const (
	GroupDurableObjects     = "Durable Objects"
	GroupKVNamespaces       = "KV Namespaces"
	GroupQueues             = "Queues"
	GroupD1Databases        = "D1 Databases"
	GroupVectorizeIndexes   = "Vectorize Indexes"
	GroupHyperdriveConfigs  = "Hyperdrive Configs"
	GroupR2Buckets          = "R2 Buckets"
	GroupServices           = "Services"
	GroupDispatchNamespaces = "Dispatch Namespaces"
	GroupMTLSCertificates   = "mTLS Certificates"
	GroupBrowser            = "Browser Rendering"
	GroupImages             = "Images"
	GroupAI                 = "AI"
	GroupVersionMetadata    = "Version Metadata"
	GroupUnsafe             = "Unsafe"
	GroupUnsafeMetadata     = "Unsafe Metadata"
	GroupVars               = "Vars"
	GroupTextBlobs          = "Text Blobs"
	GroupDataBlobs          = "Data Blobs"
)

// Display budget for map-kind values. Values at or over the budget are cut to
// truncatedLength characters plus an ellipsis marker.
const (
	maxValueLength  = 40
	truncatedLength = 37
	ellipsisMarker  = "..."
)

// localSentinel is the literal resource identifier meaning "resolved to the
// local simulator"; preview identifiers are not shown alongside it.
const localSentinel = "local"

// bufferPlaceholder stands in for non-string blob payloads.
const bufferPlaceholder = "<Buffer>"

// Entry is one key/value display line within a group. Value may be empty;
// value-less entries render without a trailing descriptor.
type Entry struct {
	Key   string
	Value string
}

// Group is the rendered inventory of one binding kind.
type Group struct {
	Name    string
	Entries []Entry
}

// Inventory is the classified, display-ready view of a worker's bindings.
type Inventory struct {
	// Groups holds one group per populated binding kind, in fixed priority
	// order. Kinds with no entries are absent, never empty.
	Groups []Group
	// TailConsumers lists tail consumer display lines; parallel to Groups,
	// not one of them. Empty when no tail consumers are declared.
	TailConsumers []string
	// HasConnectionStatus reports whether registry resolution was invoked at
	// least once, so the caller can print a one-time explanatory footnote.
	HasConnectionStatus bool
}

// GroupOrder returns the fixed priority order in which binding-kind groups
// are emitted. The order is independent of input, so inventories are
// deterministic across runs.
func GroupOrder() []string {
	return []string{
		GroupDurableObjects,
		GroupKVNamespaces,
		GroupQueues,
		GroupD1Databases,
		GroupVectorizeIndexes,
		GroupHyperdriveConfigs,
		GroupR2Buckets,
		GroupServices,
		GroupDispatchNamespaces,
		GroupMTLSCertificates,
		GroupBrowser,
		GroupImages,
		GroupAI,
		GroupVersionMetadata,
		GroupUnsafe,
		GroupUnsafeMetadata,
		GroupVars,
		GroupTextBlobs,
		GroupDataBlobs,
	}
}

// Classify renders the binding configuration into display groups, resolving
// peer-worker connectivity against the registry snapshot when running under
// local dev. It is a pure function: no I/O, no mutation of its inputs, and
// verdicts computed fresh for this render only.
func Classify(
	cfg *Config,
	tailConsumers []TailConsumer,
	ctx RenderContext,
	registry devregistry.Snapshot,
) Inventory {
	classifier := &classifier{cfg: cfg, ctx: ctx, registry: registry}

	return classifier.run(tailConsumers)
}

// classifier accumulates groups and the connection-status flag for one render.
type classifier struct {
	cfg      *Config
	ctx      RenderContext
	registry devregistry.Snapshot

	groups              []Group
	hasConnectionStatus bool
}

func (c *classifier) run(tailConsumers []TailConsumer) Inventory {
	// Emission order matches GroupOrder.
	c.emit(GroupDurableObjects, c.durableObjectEntries())
	c.emit(GroupKVNamespaces, c.kvNamespaceEntries())
	c.emit(GroupQueues, c.queueEntries())
	c.emit(GroupD1Databases, c.d1DatabaseEntries())
	c.emit(GroupVectorizeIndexes, c.vectorizeEntries())
	c.emit(GroupHyperdriveConfigs, c.hyperdriveEntries())
	c.emit(GroupR2Buckets, c.r2BucketEntries())
	c.emit(GroupServices, c.serviceEntries())
	c.emit(GroupDispatchNamespaces, c.dispatchNamespaceEntries())
	c.emit(GroupMTLSCertificates, c.mtlsCertificateEntries())
	c.emit(GroupBrowser, c.browserEntries())
	c.emit(GroupImages, c.imagesEntries())
	c.emit(GroupAI, c.aiEntries())
	c.emit(GroupVersionMetadata, c.versionMetadataEntries())
	c.emit(GroupUnsafe, c.unsafeEntries())
	c.emit(GroupUnsafeMetadata, c.unsafeMetadataEntries())
	c.emit(GroupVars, c.varEntries())
	c.emit(GroupTextBlobs, c.textBlobEntries())
	c.emit(GroupDataBlobs, c.dataBlobEntries())

	return Inventory{
		Groups:              c.groups,
		TailConsumers:       c.tailConsumerLines(tailConsumers),
		HasConnectionStatus: c.hasConnectionStatus,
	}
}

// emit appends a group unless it has no entries; empty kinds produce no
// group at all.
func (c *classifier) emit(name string, entries []Entry) {
	if len(entries) == 0 {
		return
	}

	c.groups = append(c.groups, Group{Name: name, Entries: entries})
}

// resolvePeer decides the verdict for a peer-worker reference and records
// that resolution happened. Resolution only runs under local dev with an
// available registry. Without a registry the verdict is Unknown, which keeps
// the resource-identity suffixes off peer entries; outside local dev no
// verdict is rendered at all.
func (c *classifier) resolvePeer(service, className, entrypoint string) *Verdict {
	if !c.ctx.LocalDev {
		return nil
	}

	if c.registry == nil {
		verdict := VerdictUnknown

		return &verdict
	}

	c.hasConnectionStatus = true
	verdict := Resolve(service, c.registry, className, entrypoint)

	return &verdict
}

func (c *classifier) durableObjectEntries() []Entry {
	entries := make([]Entry, 0, len(c.cfg.DurableObjects))

	for _, binding := range c.cfg.DurableObjects {
		value := binding.ClassName

		switch {
		case binding.ScriptName == "":
			// Implemented by this worker; nothing to resolve.
			value = Decorate(value, nil, !binding.Remote, c.ctx)
		case binding.Remote:
			value = fmt.Sprintf("%s (defined in %s)", binding.ClassName, binding.ScriptName)
			value = Decorate(value, nil, false, c.ctx)
		default:
			value = fmt.Sprintf("%s (defined in %s)", binding.ClassName, binding.ScriptName)
			verdict := c.resolvePeer(binding.ScriptName, binding.ClassName, "")
			value = Decorate(value, verdict, false, c.ctx)
		}

		entries = append(entries, Entry{Key: binding.Name, Value: value})
	}

	return entries
}

func (c *classifier) kvNamespaceEntries() []Entry {
	entries := make([]Entry, 0, len(c.cfg.KVNamespaces))

	for _, binding := range c.cfg.KVNamespaces {
		value := binding.ID
		if binding.PreviewID != "" && binding.ID != localSentinel {
			value = fmt.Sprintf("%s, Preview: (%s)", binding.ID, binding.PreviewID)
		}

		value = Decorate(value, nil, !binding.Remote, c.ctx)
		entries = append(entries, Entry{Key: binding.Binding, Value: value})
	}

	return entries
}

func (c *classifier) queueEntries() []Entry {
	entries := make([]Entry, 0, len(c.cfg.Queues))

	for _, binding := range c.cfg.Queues {
		value := Decorate(binding.Queue, nil, !binding.Remote, c.ctx)
		entries = append(entries, Entry{Key: binding.Binding, Value: value})
	}

	return entries
}

func (c *classifier) d1DatabaseEntries() []Entry {
	entries := make([]Entry, 0, len(c.cfg.D1Databases))

	for _, binding := range c.cfg.D1Databases {
		value := binding.DatabaseID
		if binding.DatabaseName != "" {
			value = fmt.Sprintf("%s (%s)", binding.DatabaseName, binding.DatabaseID)
		}

		if binding.PreviewDatabaseID != "" && binding.DatabaseID != localSentinel {
			value = fmt.Sprintf("%s, Preview: (%s)", value, binding.PreviewDatabaseID)
		}

		value = Decorate(value, nil, !binding.Remote, c.ctx)
		entries = append(entries, Entry{Key: binding.Binding, Value: value})
	}

	return entries
}

func (c *classifier) vectorizeEntries() []Entry {
	entries := make([]Entry, 0, len(c.cfg.VectorizeIndexes))

	for _, binding := range c.cfg.VectorizeIndexes {
		value := Decorate(binding.IndexName, nil, !binding.Remote, c.ctx)
		entries = append(entries, Entry{Key: binding.Binding, Value: value})
	}

	return entries
}

func (c *classifier) hyperdriveEntries() []Entry {
	entries := make([]Entry, 0, len(c.cfg.HyperdriveConfigs))

	for _, binding := range c.cfg.HyperdriveConfigs {
		// Hyperdrive always proxies a real origin database.
		value := Decorate(binding.ID, nil, false, c.ctx)
		entries = append(entries, Entry{Key: binding.Binding, Value: value})
	}

	return entries
}

func (c *classifier) r2BucketEntries() []Entry {
	entries := make([]Entry, 0, len(c.cfg.R2Buckets))

	for _, binding := range c.cfg.R2Buckets {
		value := binding.BucketName
		if binding.Jurisdiction != "" {
			value = fmt.Sprintf("%s (%s)", binding.BucketName, binding.Jurisdiction)
		}

		if binding.PreviewBucketName != "" && binding.BucketName != localSentinel {
			value = fmt.Sprintf("%s, Preview: (%s)", value, binding.PreviewBucketName)
		}

		value = Decorate(value, nil, !binding.Remote, c.ctx)
		entries = append(entries, Entry{Key: binding.Binding, Value: value})
	}

	return entries
}

func (c *classifier) serviceEntries() []Entry {
	entries := make([]Entry, 0, len(c.cfg.Services))

	for _, binding := range c.cfg.Services {
		value := binding.Service
		if binding.Entrypoint != "" {
			value = fmt.Sprintf("%s#%s", binding.Service, binding.Entrypoint)
		}

		if binding.Remote {
			value = Decorate(value, nil, false, c.ctx)
		} else {
			verdict := c.resolvePeer(binding.Service, "", binding.Entrypoint)
			value = Decorate(value, verdict, false, c.ctx)
		}

		entries = append(entries, Entry{Key: binding.Binding, Value: value})
	}

	return entries
}

func (c *classifier) dispatchNamespaceEntries() []Entry {
	entries := make([]Entry, 0, len(c.cfg.DispatchNamespaces))

	for _, binding := range c.cfg.DispatchNamespaces {
		value := binding.Namespace

		if binding.Outbound != nil {
			value = fmt.Sprintf("%s (outbound: %s)", binding.Namespace, binding.Outbound.Service)
			verdict := c.resolvePeer(binding.Outbound.Service, "", binding.Outbound.Entrypoint)
			value = Decorate(value, verdict, false, c.ctx)
		}

		entries = append(entries, Entry{Key: binding.Binding, Value: value})
	}

	return entries
}

func (c *classifier) mtlsCertificateEntries() []Entry {
	entries := make([]Entry, 0, len(c.cfg.MTLSCertificates))

	for _, binding := range c.cfg.MTLSCertificates {
		// Client certificates always identify a real remote certificate.
		value := Decorate(binding.CertificateID, nil, false, c.ctx)
		entries = append(entries, Entry{Key: binding.Binding, Value: value})
	}

	return entries
}

func (c *classifier) browserEntries() []Entry {
	if c.cfg.Browser == nil {
		return nil
	}

	value := Decorate(c.cfg.Browser.Binding, nil, !c.cfg.Browser.Remote, c.ctx)

	return []Entry{{Key: "Name", Value: value}}
}

func (c *classifier) imagesEntries() []Entry {
	if c.cfg.Images == nil {
		return nil
	}

	simulated := true
	if c.ctx.ImagesLocalMode != nil {
		simulated = *c.ctx.ImagesLocalMode
	}

	value := Decorate(c.cfg.Images.Binding, nil, simulated, c.ctx)

	return []Entry{{Key: "Name", Value: value}}
}

func (c *classifier) aiEntries() []Entry {
	if c.cfg.AI == nil {
		return nil
	}

	value := Decorate(c.cfg.AI.Binding, nil, !c.cfg.AI.Remote, c.ctx)

	return []Entry{{Key: "Name", Value: value}}
}

func (c *classifier) versionMetadataEntries() []Entry {
	if c.cfg.VersionMetadata == nil {
		return nil
	}

	return []Entry{{Key: "Name", Value: c.cfg.VersionMetadata.Binding}}
}

func (c *classifier) unsafeEntries() []Entry {
	if c.cfg.Unsafe == nil {
		return nil
	}

	entries := make([]Entry, 0, len(c.cfg.Unsafe.Bindings))

	for _, binding := range c.cfg.Unsafe.Bindings {
		entries = append(entries, Entry{Key: binding.Name, Value: binding.Type})
	}

	return entries
}

func (c *classifier) unsafeMetadataEntries() []Entry {
	if c.cfg.Unsafe == nil || len(c.cfg.Unsafe.Metadata) == 0 {
		return nil
	}

	entries := make([]Entry, 0, len(c.cfg.Unsafe.Metadata))

	for _, key := range sortedKeys(c.cfg.Unsafe.Metadata) {
		// Metadata records are small structured objects; dump untruncated.
		entries = append(entries, Entry{Key: key, Value: structuralDump(c.cfg.Unsafe.Metadata[key])})
	}

	return entries
}

func (c *classifier) varEntries() []Entry {
	if len(c.cfg.Vars) == 0 {
		return nil
	}

	entries := make([]Entry, 0, len(c.cfg.Vars))

	for _, key := range sortedKeys(c.cfg.Vars) {
		entries = append(entries, Entry{Key: key, Value: varValue(c.cfg.Vars[key])})
	}

	return entries
}

func (c *classifier) textBlobEntries() []Entry {
	if len(c.cfg.TextBlobs) == 0 {
		return nil
	}

	entries := make([]Entry, 0, len(c.cfg.TextBlobs))

	for _, key := range sortedKeys(c.cfg.TextBlobs) {
		entries = append(entries, Entry{Key: key, Value: truncate(c.cfg.TextBlobs[key])})
	}

	return entries
}

func (c *classifier) dataBlobEntries() []Entry {
	if len(c.cfg.DataBlobs) == 0 {
		return nil
	}

	entries := make([]Entry, 0, len(c.cfg.DataBlobs))

	for _, key := range sortedKeys(c.cfg.DataBlobs) {
		value := bufferPlaceholder
		if s, ok := c.cfg.DataBlobs[key].(string); ok {
			value = truncate(s)
		}

		entries = append(entries, Entry{Key: key, Value: value})
	}

	return entries
}

// tailConsumerLines renders the tail consumer list with the same peer-worker
// connectivity rule as service bindings.
func (c *classifier) tailConsumerLines(tailConsumers []TailConsumer) []string {
	if len(tailConsumers) == 0 {
		return nil
	}

	lines := make([]string, 0, len(tailConsumers))

	for _, consumer := range tailConsumers {
		verdict := c.resolvePeer(consumer.Service, "", "")
		lines = append(lines, Decorate(consumer.Service, verdict, false, c.ctx))
	}

	return lines
}

// varValue renders one inline variable. Strings are quoted and truncated;
// anything else is a structural dump, multi-line for composite values.
func varValue(value any) string {
	if s, ok := value.(string); ok {
		return truncate(strconv.Quote(s))
	}

	return structuralDump(value)
}

// structuralDump renders a value as YAML with the trailing newline removed.
func structuralDump(value any) string {
	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}

	return strings.TrimRight(string(data), "\n")
}

// truncate enforces the display budget: values of maxValueLength or more
// characters are cut to truncatedLength characters plus the ellipsis marker.
// The budget counts runes, not bytes, so multi-byte values are never split
// mid-character.
func truncate(value string) string {
	runes := []rune(value)
	if len(runes) >= maxValueLength {
		return string(runes[:truncatedLength]) + ellipsisMarker
	}

	return value
}

// sortedKeys returns map keys in a stable order so inventories are
// deterministic across runs.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
