package serviceImp

import (
	"context"
	"log"

	"github.com/navya9866/Smart-agriculture/entities"
	repo "github.com/navya9866/Smart-agriculture/pkg/crop/repository"
	"github.com/navya9866/Smart-agriculture/pkg/crop/service"
)

// Recorder is notified after each successful create. Optional.
type Recorder interface {
	RecordCropCreated()
}

type cropSvc struct {
	r   repo.CropRepository
	rec Recorder
}

func NewCropService(r repo.CropRepository, rec Recorder) service.CropService {
	return &cropSvc{r: r, rec: rec}
}

func (s *cropSvc) List(ctx context.Context) ([]entities.Crop, error) { return s.r.List(ctx) }

func (s *cropSvc) Get(ctx context.Context, id int) (*entities.Crop, error) {
	return s.r.FindByID(ctx, id)
}

func (s *cropSvc) Create(ctx context.Context, in entities.InsertCrop) (*entities.Crop, error) {
	c := in.Crop()
	if err := s.r.Create(ctx, &c); err != nil {
		return nil, err
	}
	if s.rec != nil {
		s.rec.RecordCropCreated()
	}
	log.Printf("[crop] created id=%d name=%q", c.ID, c.Name)
	return &c, nil
}
