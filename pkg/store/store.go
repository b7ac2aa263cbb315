// Package store wires the gorm repositories of every domain to one db.
package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/navya9866/Smart-agriculture/database"
	cropRepo "github.com/navya9866/Smart-agriculture/pkg/crop/repositoryImp"
	envRepo "github.com/navya9866/Smart-agriculture/pkg/environment/repositoryImp"
	laborRepo "github.com/navya9866/Smart-agriculture/pkg/labor/repositoryImp"
	marketRepo "github.com/navya9866/Smart-agriculture/pkg/market/repositoryImp"
	resourceRepo "github.com/navya9866/Smart-agriculture/pkg/resource/repositoryImp"
	"github.com/navya9866/Smart-agriculture/pkg/report"
)

func New(db *gorm.DB) database.Stores {
	return database.Stores{
		Crops:       cropRepo.New(db),
		Resources:   resourceRepo.New(db),
		Markets:     marketRepo.New(db),
		Environment: envRepo.New(db),
		Labor:       laborRepo.New(db),
	}
}

// Snapshot reads every table for export.
func Snapshot(ctx context.Context, s database.Stores) (report.Dataset, error) {
	var d report.Dataset
	var err error
	if d.Crops, err = s.Crops.List(ctx); err != nil {
		return d, err
	}
	if d.Resources, err = s.Resources.List(ctx, nil); err != nil {
		return d, err
	}
	if d.MarketTrends, err = s.Markets.List(ctx, nil); err != nil {
		return d, err
	}
	if d.EnvironmentalLogs, err = s.Environment.List(ctx, nil); err != nil {
		return d, err
	}
	if d.Labor, err = s.Labor.List(ctx); err != nil {
		return d, err
	}
	return d, nil
}
