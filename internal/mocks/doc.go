// Package mocks provides centralized test doubles.
//
// Store mocks are built on testify/mock and are meant for failure paths that
// the in-memory stores cannot produce. Service doubles are small fakes with
// exported knobs:
//
//	tokens := &mocks.StaticJWTService{Claims: &auth.Claims{Subject: id.String()}}
package mocks
