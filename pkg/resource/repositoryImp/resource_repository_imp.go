package repositoryImp

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/navya9866/Smart-agriculture/entities"
	"github.com/navya9866/Smart-agriculture/pkg/resource/repository"
)

type resourceRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ResourceRepository { return &resourceRepo{db} }

func (r *resourceRepo) List(ctx context.Context, cropID *int) ([]entities.CropResource, error) {
	out := []entities.CropResource{}
	q := r.db.WithContext(ctx).Order("id ASC")
	if cropID != nil {
		q = q.Where("crop_id = ?", *cropID)
	}
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list crop resources: %w", err)
	}
	return out, nil
}

func (r *resourceRepo) Create(ctx context.Context, res *entities.CropResource) error {
	res.ID = 0
	if err := r.db.WithContext(ctx).Create(res).Error; err != nil {
		return fmt.Errorf("create crop resource: %w", err)
	}
	return nil
}
