package orderrepo

import (
	"context"

	"gorm.io/gorm"
)

// OrderNumberSequenceDTO is the per-year counter row behind order number
// assignment.
type OrderNumberSequenceDTO struct {
	Year    int `gorm:"primaryKey"`
	Counter int
}

// TableName overrides GORM's default naming to use "order_number_sequences".
func (OrderNumberSequenceDTO) TableName() string {
	return "order_number_sequences"
}

// GormOrderNumberSequence hands out per-year order numbers with an atomic
// upsert-and-increment, so concurrent creations never observe the same value.
type GormOrderNumberSequence struct {
	db *gorm.DB
}

// NewGormOrderNumberSequence creates a sequence backed by the given
// connection. Run it on the transaction of the creating unit of work so the
// claimed number rolls back with a failed creation.
func NewGormOrderNumberSequence(db *gorm.DB) *GormOrderNumberSequence {
	return &GormOrderNumberSequence{db: db}
}

// Next claims and returns the next sequence value for the year.
func (s *GormOrderNumberSequence) Next(ctx context.Context, year int) (int, error) {
	var counter int
	err := s.db.WithContext(ctx).Raw(`
		INSERT INTO order_number_sequences (year, counter)
		VALUES (?, 1)
		ON CONFLICT (year)
		DO UPDATE SET counter = order_number_sequences.counter + 1
		RETURNING counter
	`, year).Scan(&counter).Error
	if err != nil {
		return 0, err
	}

	return counter, nil
}
