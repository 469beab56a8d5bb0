// Package memory provides in-memory implementations of driven port interfaces.
// Nothing is persisted; stores are used by tests and ephemeral runs.
package memory
