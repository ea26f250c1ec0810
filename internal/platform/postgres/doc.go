// Package postgres implements the store interfaces for PostgreSQL.
// It holds the account and workout store implementations, the goose
// migrations, and the mapping from PostgreSQL error codes to the
// store's sentinel errors.
package postgres
