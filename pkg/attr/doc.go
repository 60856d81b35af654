// Package attr defines the typed attribute data model shared across the
// module: the TypeDescriptor variants describing what an attribute stores,
// the per-key UI Metadata the host surfaces next to a value, and the
// Container capability interface adapters implement for each concrete host
// datablock kind.
package attr
