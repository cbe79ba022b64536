// Package testutils provides shared helpers for tests: integration test
// gating, a migrated PostgreSQL connection with per-test transactions,
// domain fixtures, and an in-memory slog handler for asserting log output.
package testutils
