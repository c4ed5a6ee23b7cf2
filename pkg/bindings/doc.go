// Package bindings renders a worker's declared bindings as a normalized,
// grouped inventory and, during local development, resolves whether bindings
// that reference other locally-running workers are actually connected.
//
// [Classify] is a pure function over the binding configuration, an optional
// [devregistry.Snapshot], and per-render context flags. [Resolve] answers the
// connectivity question for a single peer-worker reference. Neither performs
// I/O: the registry snapshot is materialized by the caller, and verdicts are
// computed fresh on every render since the registry can change between
// renders of a long-lived dev session.
package bindings
