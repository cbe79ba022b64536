// Package memstore provides in-memory implementations of the store
// interfaces. It backs the "memory" database driver used for local runs
// and for service and API tests that do not need PostgreSQL.
package memstore
