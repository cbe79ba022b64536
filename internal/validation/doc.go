// Package validation turns untrusted request input into validated domain
// values.
//
// Request bodies are decoded into fixed shapes made of Field values, so
// unknown JSON members (owner IDs, roles, anything else) are dropped at the
// boundary and never reach a domain type. Fields are checked in declaration
// order and the first violation is returned as a *domain.ValidationError
// whose text is safe to send to clients.
package validation
