package serviceImp

import (
	"context"
	"fmt"
	"log"

	"github.com/navya9866/Smart-agriculture/entities"
	"github.com/navya9866/Smart-agriculture/pkg/market/importer"
	repo "github.com/navya9866/Smart-agriculture/pkg/market/repository"
	"github.com/navya9866/Smart-agriculture/pkg/market/service"
	"github.com/navya9866/Smart-agriculture/pkg/schema"
)

// DefaultMarketName labels imported rows when neither the page nor the
// caller names a market.
const DefaultMarketName = "Imported"

// Recorder counts imported rows. A nil Recorder is allowed.
type Recorder interface {
	RecordPricesImported(n int)
}

type marketSvc struct {
	r   repo.MarketRepository
	rec Recorder
}

func NewMarketService(r repo.MarketRepository, rec Recorder) service.MarketService {
	return &marketSvc{r: r, rec: rec}
}

func (s *marketSvc) List(ctx context.Context, cropID *int) ([]entities.MarketTrend, error) {
	return s.r.List(ctx, cropID)
}

func (s *marketSvc) Import(ctx context.Context, cropID int, defaultMarket string, rows []importer.Row) ([]entities.MarketTrend, error) {
	if defaultMarket == "" {
		defaultMarket = DefaultMarketName
	}
	trends := make([]entities.MarketTrend, 0, len(rows))
	for i, row := range rows {
		in := entities.InsertMarketTrend{
			CropID:      cropID,
			Date:        row.Date,
			PricePerTon: row.PricePerTon,
			MarketName:  row.MarketName,
		}
		if in.MarketName == "" {
			in.MarketName = defaultMarket
		}
		if fe := schema.Validate(in); fe != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, fe)
		}
		trends = append(trends, in.MarketTrend())
	}
	if err := s.r.CreateBatch(ctx, trends); err != nil {
		return nil, err
	}
	if s.rec != nil {
		s.rec.RecordPricesImported(len(trends))
	}
	log.Printf("[market] imported %d rows for crop %d", len(trends), cropID)
	return trends, nil
}
