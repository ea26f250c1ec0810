// Package config loads and validates application settings from
// FITTRACK_-prefixed environment variables and an optional config
// file, giving the rest of the application type-safe access to server,
// database, and auth configuration.
package config
