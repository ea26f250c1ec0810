// Package mocks provides centralized mock implementations for testing.
//
// This package contains mock implementations of interfaces used throughout
// the application, facilitating consistent and DRY testing across the
// codebase. Instead of defining inline mocks in individual test files,
// these standardized mock implementations can be reused.
//
// Each mock supports three levels of control: function fields for fully
// custom behavior, error fields for simple failure injection, and an
// in-memory default implementation for happy-path tests. Call counters
// allow verification of interaction order and absence.
package mocks
