// Package api adapts HTTP requests to the account and task services.
//
// Handlers decode and validate input through the validation package, call a
// service with the identity the auth middleware resolved, and render results
// or normalized errors. Nothing in this package talks to a store directly.
package api
