// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package.
// It handles query construction, row mapping between domain entities and
// database records, error translation, and the embedded schema migrations.
package postgres
