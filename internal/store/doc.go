// Package store defines the persistence contracts for users and tasks.
// Implementations live under internal/platform; services depend only on
// these interfaces and the sentinel errors declared here.
package store
