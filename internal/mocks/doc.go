// Package mocks provides centralized mock implementations for testing.
//
// Each mock implements one of the application's interfaces with function
// fields for customizable behavior plus a simple in-memory default, so test
// packages can share the same fakes instead of redefining them inline.
package mocks
