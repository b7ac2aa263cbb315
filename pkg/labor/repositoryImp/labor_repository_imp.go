package repositoryImp

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/navya9866/Smart-agriculture/entities"
	"github.com/navya9866/Smart-agriculture/pkg/labor/repository"
)

type laborRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.LaborRepository { return &laborRepo{db} }

func (r *laborRepo) List(ctx context.Context) ([]entities.LaborAvailability, error) {
	out := []entities.LaborAvailability{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list labor availability: %w", err)
	}
	return out, nil
}

func (r *laborRepo) Create(ctx context.Context, l *entities.LaborAvailability) error {
	l.ID = 0
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		return fmt.Errorf("create labor availability: %w", err)
	}
	return nil
}
