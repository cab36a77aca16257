package ports

import "context"

// OrderNumberSequence hands out the next per-year order number sequence
// value. Next is an atomic increment-and-fetch: two concurrent calls for the
// same year never observe the same value, and values are strictly increasing
// with no gaps under sequential creation.
type OrderNumberSequence interface {
	Next(ctx context.Context, year int) (int, error)
}
