package repository

import (
	"context"
	"errors"

	"github.com/navya9866/Smart-agriculture/entities"
)

// ErrNotFound is returned by FindByID when no crop has the id.
var ErrNotFound = errors.New("crop not found")

type CropRepository interface {
	List(ctx context.Context) ([]entities.Crop, error)
	FindByID(ctx context.Context, id int) (*entities.Crop, error)
	Create(ctx context.Context, c *entities.Crop) error
	Count(ctx context.Context) (int64, error)
}
