package service

import (
	"context"

	"github.com/navya9866/Smart-agriculture/entities"
)

type CropService interface {
	List(ctx context.Context) ([]entities.Crop, error)
	Get(ctx context.Context, id int) (*entities.Crop, error)
	Create(ctx context.Context, in entities.InsertCrop) (*entities.Crop, error)
}
