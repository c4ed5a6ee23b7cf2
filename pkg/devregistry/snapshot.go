package devregistry

// Address is the host/port a worker entrypoint is served on.
type Address struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// DurableObject describes a Durable Object class exposed by a running worker.
type DurableObject struct {
	ClassName string `json:"className"`
}

// Definition describes the capabilities a locally-running worker advertises.
type Definition struct {
	// DurableObjects lists the Durable Object classes the worker implements.
	DurableObjects []DurableObject `json:"durableObjects"`
	// EntrypointAddresses maps named entrypoints to their local addresses.
	EntrypointAddresses map[string]Address `json:"entrypointAddresses"`
}

// Snapshot maps worker names to their advertised definitions. A nil Snapshot
// means the registry is disabled; an empty one means no worker is running.
type Snapshot map[string]Definition

// Lookup returns the definition for a worker name, reporting whether the
// worker is present in the snapshot. Lookups on a nil snapshot miss.
func (s Snapshot) Lookup(name string) (Definition, bool) {
	def, ok := s[name]

	return def, ok
}
