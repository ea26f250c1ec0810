package service

import (
	"context"
	"time"

	"github.com/fitlog/fittrack-api/internal/domain"
	"github.com/shopspring/decimal"
)

// AccountPatch is a partial update to an account. A nil field was not
// supplied and is left untouched. A supplied field is applied only when it
// passes its per-field check; supplied-but-invalid fields (empty strings,
// zero or negative numbers) are silently skipped rather than rejected, so
// one bad field never blocks the rest of the patch. This is documented
// behavior, in contrast to the guard-clause operations (ChangeWeight,
// ChangeHeight) which reject invalid values outright.
type AccountPatch struct {
	Email        *string
	Age          *int
	Username     *string
	Height       *decimal.Decimal
	Weight       *decimal.Decimal
	Password     *string
	MetricSystem *bool
}

// WorkoutPatch is a partial update to a workout, with the same
// present-and-valid merge semantics as AccountPatch. Notes distinguishes
// "not supplied" (nil) from "clear the notes" (pointer to empty string).
type WorkoutPatch struct {
	Name            *string
	Date            *time.Time
	DurationMinutes *int
	CaloriesBurned  *int
	Notes           *string
	Type            *domain.WorkoutType
}

// applyUpdate is the shared read-mutate-save step behind every partial
// update and flag flip: load the entity, run the whole merge against the
// snapshot, then persist once. A failed load or merge leaves the store
// untouched. Callers supply get and save bound to a transaction-scoped
// store, giving the sequence per-operation atomicity.
func applyUpdate[E any](
	ctx context.Context,
	get func(context.Context) (*E, error),
	save func(context.Context, *E) error,
	mutate func(*E) error,
) error {
	entity, err := get(ctx)
	if err != nil {
		return err
	}
	if err := mutate(entity); err != nil {
		return err
	}
	return save(ctx, entity)
}
