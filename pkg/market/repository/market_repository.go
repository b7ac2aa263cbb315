package repository

import (
	"context"

	"github.com/navya9866/Smart-agriculture/entities"
)

type MarketRepository interface {
	List(ctx context.Context, cropID *int) ([]entities.MarketTrend, error)
	Create(ctx context.Context, t *entities.MarketTrend) error
	// CreateBatch inserts all rows or none.
	CreateBatch(ctx context.Context, ts []entities.MarketTrend) error
}
