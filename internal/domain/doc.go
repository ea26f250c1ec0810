// Package domain contains the core business entities and rules of the
// fitness tracker: accounts with their body measurements, workouts with
// their closed type set, and the validation logic both carry. It is
// independent of any specific infrastructure or delivery mechanism.
package domain
