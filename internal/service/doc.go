// Package service contains the application use cases: resolving a bearer
// credential to a live account, registering and logging in accounts, and the
// task operations that sit behind the ownership guard.
//
// Services depend on the persistence interfaces in internal/store and never
// on a concrete backend. Every task read and write takes the resolved owner
// as an explicit argument; there is no code path that reaches a single task
// without passing through the guard, and listings are always scoped with
// domain.TaskQuery.ScopedTo before they reach the store.
package service
