package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/navya9866/Smart-agriculture/pkg/cropfilter"
	"github.com/navya9866/Smart-agriculture/pkg/resource/controller"
	repo "github.com/navya9866/Smart-agriculture/pkg/resource/repository"
)

type ResourceCtrl struct{ repo repo.ResourceRepository }

var _ controller.ResourceController = (*ResourceCtrl)(nil)

func New(r repo.ResourceRepository) *ResourceCtrl { return &ResourceCtrl{r} }

func (h *ResourceCtrl) List(c echo.Context) error {
	out, err := h.repo.List(c.Request().Context(), cropfilter.Parse(c.QueryParam("cropId")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}
