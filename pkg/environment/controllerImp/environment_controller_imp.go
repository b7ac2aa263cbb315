package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/navya9866/Smart-agriculture/pkg/cropfilter"
	"github.com/navya9866/Smart-agriculture/pkg/environment/controller"
	repo "github.com/navya9866/Smart-agriculture/pkg/environment/repository"
)

type EnvironmentCtrl struct{ repo repo.EnvironmentRepository }

var _ controller.EnvironmentController = (*EnvironmentCtrl)(nil)

func New(r repo.EnvironmentRepository) *EnvironmentCtrl { return &EnvironmentCtrl{r} }

func (h *EnvironmentCtrl) List(c echo.Context) error {
	out, err := h.repo.List(c.Request().Context(), cropfilter.Parse(c.QueryParam("cropId")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}
