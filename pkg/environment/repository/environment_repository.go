package repository

import (
	"context"

	"github.com/navya9866/Smart-agriculture/entities"
)

type EnvironmentRepository interface {
	List(ctx context.Context, cropID *int) ([]entities.EnvironmentalLog, error)
	Create(ctx context.Context, l *entities.EnvironmentalLog) error
}
