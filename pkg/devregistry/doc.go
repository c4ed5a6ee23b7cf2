// Package devregistry reads the local development registry: a directory where
// each locally-running worker dev session advertises itself by writing a JSON
// file describing the capabilities it exposes (Durable Object classes and
// named entrypoints).
//
// The registry is a point-in-time, read-only view. A [Snapshot] is loaded per
// render and never mutated; a nil Snapshot means the registry is disabled,
// while an empty Snapshot means the registry is enabled but no worker is
// currently running. [Watcher] signals snapshot staleness for long-lived
// watch sessions.
package devregistry
