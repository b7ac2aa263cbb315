package repositoryImp

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/navya9866/Smart-agriculture/entities"
	"github.com/navya9866/Smart-agriculture/pkg/market/repository"
)

type marketRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.MarketRepository { return &marketRepo{db} }

func (r *marketRepo) List(ctx context.Context, cropID *int) ([]entities.MarketTrend, error) {
	out := []entities.MarketTrend{}
	q := r.db.WithContext(ctx).Order("id ASC")
	if cropID != nil {
		q = q.Where("crop_id = ?", *cropID)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list market trends: %w", err)
	}
	return out, nil
}

func (r *marketRepo) Create(ctx context.Context, t *entities.MarketTrend) error {
	t.ID = 0
	if err := r.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("create market trend: %w", err)
	}
	return nil
}

func (r *marketRepo) CreateBatch(ctx context.Context, ts []entities.MarketTrend) error {
	if len(ts) == 0 {
		return nil
	}
	for i := range ts {
		ts[i].ID = 0
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&ts).Error
	})
	if err != nil {
		return fmt.Errorf("create %d market trends: %w", len(ts), err)
	}
	return nil
}
