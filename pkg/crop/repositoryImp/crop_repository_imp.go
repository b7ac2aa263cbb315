package repositoryImp

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/navya9866/Smart-agriculture/entities"
	"github.com/navya9866/Smart-agriculture/pkg/crop/repository"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) List(ctx context.Context) ([]entities.Crop, error) {
	out := []entities.Crop{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list crops: %w", err)
	}
	return out, nil
}

func (r *cropRepo) FindByID(ctx context.Context, id int) (*entities.Crop, error) {
	var c entities.Crop
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find crop %d: %w", id, err)
	}
	return &c, nil
}

// Create ignores any id already set on c; the store assigns a fresh one.
func (r *cropRepo) Create(ctx context.Context, c *entities.Crop) error {
	c.ID = 0
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return fmt.Errorf("create crop: %w", err)
	}
	return nil
}

func (r *cropRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&entities.Crop{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count crops: %w", err)
	}
	return n, nil
}
