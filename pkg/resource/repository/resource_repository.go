package repository

import (
	"context"

	"github.com/navya9866/Smart-agriculture/entities"
)

type ResourceRepository interface {
	// List returns every resource when cropID is nil, otherwise those of one crop.
	List(ctx context.Context, cropID *int) ([]entities.CropResource, error)
	Create(ctx context.Context, r *entities.CropResource) error
}
