// Package store defines the persistence interfaces for accounts and
// workouts, along with the sentinel errors they return and the
// transaction runner that groups writes. Keeping these as interfaces
// lets the services stay independent of the concrete database.
package store
