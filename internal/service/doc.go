// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// Two services make up this layer: AccountService owns the account
// lifecycle (creation, partial updates, unit-scoped field changes, soft
// deletion) and WorkoutService owns the workout lifecycle (creation,
// partial updates, hard deletion, listing by owner). Both receive their
// stores, and AccountService its password hasher, through constructor
// injection; neither reaches for globals.
//
// Error handling: services return sentinel errors from internal/domain and
// internal/store for expected conditions (validation failures, uniqueness
// conflicts, missing entities) so callers can classify them with errors.Is;
// unexpected errors are wrapped with operation context. The API layer maps
// these kinds to HTTP status codes.
package service
