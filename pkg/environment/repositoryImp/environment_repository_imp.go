package repositoryImp

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/navya9866/Smart-agriculture/entities"
	"github.com/navya9866/Smart-agriculture/pkg/environment/repository"
)

type envRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.EnvironmentRepository { return &envRepo{db} }

func (r *envRepo) List(ctx context.Context, cropID *int) ([]entities.EnvironmentalLog, error) {
	out := []entities.EnvironmentalLog{}
	q := r.db.WithContext(ctx).Order("id ASC")
	if cropID != nil {
		q = q.Where("crop_id = ?", *cropID)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list environmental logs: %w", err)
	}
	return out, nil
}

func (r *envRepo) Create(ctx context.Context, l *entities.EnvironmentalLog) error {
	l.ID = 0
	if err := r.db.WithContext(ctx).Create(l).Error; err != nil {
		return fmt.Errorf("create environmental log: %w", err)
	}
	return nil
}
