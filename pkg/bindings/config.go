package bindings

// Config declares the external resources a worker depends on. Each field is
// one binding kind with its own shape: lists of structured records, maps of
// inline values, or at-most-one singleton records. Binding names are unique
// within a kind but not across kinds.
//
// Config is produced by configuration loading, which owns shape validation;
// classification assumes well-typed input.
type Config struct {
	DurableObjects     []DurableObjectBinding     `mapstructure:"durable_objects" json:"durable_objects,omitempty"`
	KVNamespaces       []KVNamespaceBinding       `mapstructure:"kv_namespaces" json:"kv_namespaces,omitempty"`
	Queues             []QueueBinding             `mapstructure:"queues" json:"queues,omitempty"`
	D1Databases        []D1DatabaseBinding        `mapstructure:"d1_databases" json:"d1_databases,omitempty"`
	VectorizeIndexes   []VectorizeBinding         `mapstructure:"vectorize" json:"vectorize,omitempty"`
	HyperdriveConfigs  []HyperdriveBinding        `mapstructure:"hyperdrive" json:"hyperdrive,omitempty"`
	R2Buckets          []R2BucketBinding          `mapstructure:"r2_buckets" json:"r2_buckets,omitempty"`
	Services           []ServiceBinding           `mapstructure:"services" json:"services,omitempty"`
	DispatchNamespaces []DispatchNamespaceBinding `mapstructure:"dispatch_namespaces" json:"dispatch_namespaces,omitempty"`
	MTLSCertificates   []MTLSCertificateBinding   `mapstructure:"mtls_certificates" json:"mtls_certificates,omitempty"`
	Browser            *BrowserBinding            `mapstructure:"browser" json:"browser,omitempty"`
	Images             *ImagesBinding             `mapstructure:"images" json:"images,omitempty"`
	AI                 *AIBinding                 `mapstructure:"ai" json:"ai,omitempty"`
	VersionMetadata    *VersionMetadataBinding    `mapstructure:"version_metadata" json:"version_metadata,omitempty"`
	Unsafe             *UnsafeBindings            `mapstructure:"unsafe" json:"unsafe,omitempty"`
	Vars               map[string]any             `mapstructure:"vars" json:"vars,omitempty"`
	TextBlobs          map[string]string          `mapstructure:"text_blobs" json:"text_blobs,omitempty"`
	DataBlobs          map[string]any             `mapstructure:"data_blobs" json:"data_blobs,omitempty"`
}

// DurableObjectBinding binds a Durable Object class, either implemented by
// this worker or by another locally-running worker named by ScriptName.
type DurableObjectBinding struct {
	Name       string `mapstructure:"name" json:"name"`
	ClassName  string `mapstructure:"class_name" json:"class_name"`
	ScriptName string `mapstructure:"script_name" json:"script_name,omitempty"`
	Remote     bool   `mapstructure:"remote" json:"remote,omitempty"`
}

// KVNamespaceBinding binds a key-value namespace.
type KVNamespaceBinding struct {
	Binding   string `mapstructure:"binding" json:"binding"`
	ID        string `mapstructure:"id" json:"id"`
	PreviewID string `mapstructure:"preview_id" json:"preview_id,omitempty"`
	Remote    bool   `mapstructure:"remote" json:"remote,omitempty"`
}

// QueueBinding binds a queue producer.
type QueueBinding struct {
	Binding string `mapstructure:"binding" json:"binding"`
	Queue   string `mapstructure:"queue" json:"queue"`
	Remote  bool   `mapstructure:"remote" json:"remote,omitempty"`
}

// D1DatabaseBinding binds a D1 database.
type D1DatabaseBinding struct {
	Binding           string `mapstructure:"binding" json:"binding"`
	DatabaseName      string `mapstructure:"database_name" json:"database_name,omitempty"`
	DatabaseID        string `mapstructure:"database_id" json:"database_id"`
	PreviewDatabaseID string `mapstructure:"preview_database_id" json:"preview_database_id,omitempty"`
	Remote            bool   `mapstructure:"remote" json:"remote,omitempty"`
}

// VectorizeBinding binds a vector index.
type VectorizeBinding struct {
	Binding   string `mapstructure:"binding" json:"binding"`
	IndexName string `mapstructure:"index_name" json:"index_name"`
	Remote    bool   `mapstructure:"remote" json:"remote,omitempty"`
}

// HyperdriveBinding binds a Hyperdrive connection config.
type HyperdriveBinding struct {
	Binding string `mapstructure:"binding" json:"binding"`
	ID      string `mapstructure:"id" json:"id"`
}

// R2BucketBinding binds an R2 object storage bucket.
type R2BucketBinding struct {
	Binding           string `mapstructure:"binding" json:"binding"`
	BucketName        string `mapstructure:"bucket_name" json:"bucket_name"`
	PreviewBucketName string `mapstructure:"preview_bucket_name" json:"preview_bucket_name,omitempty"`
	Jurisdiction      string `mapstructure:"jurisdiction" json:"jurisdiction,omitempty"`
	Remote            bool   `mapstructure:"remote" json:"remote,omitempty"`
}

// ServiceBinding binds another worker, optionally at a named entrypoint.
type ServiceBinding struct {
	Binding    string `mapstructure:"binding" json:"binding"`
	Service    string `mapstructure:"service" json:"service"`
	Entrypoint string `mapstructure:"entrypoint" json:"entrypoint,omitempty"`
	Remote     bool   `mapstructure:"remote" json:"remote,omitempty"`
}

// DispatchNamespaceBinding binds a dispatch namespace for cross-worker
// dispatch, optionally with an outbound worker handling egress.
type DispatchNamespaceBinding struct {
	Binding   string            `mapstructure:"binding" json:"binding"`
	Namespace string            `mapstructure:"namespace" json:"namespace"`
	Outbound  *DispatchOutbound `mapstructure:"outbound" json:"outbound,omitempty"`
}

// DispatchOutbound names the worker that handles outbound requests of a
// dispatch namespace.
type DispatchOutbound struct {
	Service    string `mapstructure:"service" json:"service"`
	Entrypoint string `mapstructure:"entrypoint" json:"entrypoint,omitempty"`
}

// MTLSCertificateBinding binds a client certificate for mTLS fetches.
type MTLSCertificateBinding struct {
	Binding       string `mapstructure:"binding" json:"binding"`
	CertificateID string `mapstructure:"certificate_id" json:"certificate_id"`
}

// BrowserBinding binds the browser rendering capability.
type BrowserBinding struct {
	Binding string `mapstructure:"binding" json:"binding"`
	Remote  bool   `mapstructure:"remote" json:"remote,omitempty"`
}

// ImagesBinding binds the image transformation capability.
type ImagesBinding struct {
	Binding string `mapstructure:"binding" json:"binding"`
}

// AIBinding binds the AI inference capability.
type AIBinding struct {
	Binding string `mapstructure:"binding" json:"binding"`
	Remote  bool   `mapstructure:"remote" json:"remote,omitempty"`
}

// VersionMetadataBinding binds the worker's own version metadata.
type VersionMetadataBinding struct {
	Binding string `mapstructure:"binding" json:"binding"`
}

// UnsafeBindings carries raw bindings passed through without interpretation,
// plus an arbitrary metadata record.
type UnsafeBindings struct {
	Bindings []UnsafeBinding `mapstructure:"bindings" json:"bindings,omitempty"`
	Metadata map[string]any  `mapstructure:"metadata" json:"metadata,omitempty"`
}

// UnsafeBinding is a single raw binding declaration.
type UnsafeBinding struct {
	Name string `mapstructure:"name" json:"name"`
	Type string `mapstructure:"type" json:"type"`
}

// TailConsumer names a worker that receives this worker's tail events.
type TailConsumer struct {
	Service string `mapstructure:"service" json:"service"`
}

// RenderContext carries the per-render flags that shape the inventory.
// It is immutable for the duration of one Classify call.
type RenderContext struct {
	// LocalDev is true when running under the local development simulator.
	LocalDev bool
	// Provisioning is true when rendering bindings about to be provisioned;
	// local/remote suffixes are suppressed in that mode.
	Provisioning bool
	// MultiWorker is true when several workers' inventories are displayed
	// together and each render should name its worker.
	MultiWorker bool
	// WorkerName is the display name of the worker, when known.
	WorkerName string
	// ImagesLocalMode overrides whether the images binding is simulated
	// locally. When nil it defaults to true under local dev.
	ImagesLocalMode *bool
}
