package service

import (
	"context"

	"github.com/navya9866/Smart-agriculture/entities"
	"github.com/navya9866/Smart-agriculture/pkg/market/importer"
)

type MarketService interface {
	List(ctx context.Context, cropID *int) ([]entities.MarketTrend, error)
	// Import stores scraped price rows for one crop. Rows without a market
	// name get defaultMarket.
	Import(ctx context.Context, cropID int, defaultMarket string, rows []importer.Row) ([]entities.MarketTrend, error)
}
