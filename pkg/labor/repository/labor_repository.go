package repository

import (
	"context"

	"github.com/navya9866/Smart-agriculture/entities"
)

// LaborRepository has no HTTP create; rows come from seeding or imports.
type LaborRepository interface {
	List(ctx context.Context) ([]entities.LaborAvailability, error)
	Create(ctx context.Context, l *entities.LaborAvailability) error
}
