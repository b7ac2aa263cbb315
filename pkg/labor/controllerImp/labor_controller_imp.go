package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/navya9866/Smart-agriculture/pkg/labor/controller"
	repo "github.com/navya9866/Smart-agriculture/pkg/labor/repository"
)

type LaborCtrl struct{ repo repo.LaborRepository }

var _ controller.LaborController = (*LaborCtrl)(nil)

func New(r repo.LaborRepository) *LaborCtrl { return &LaborCtrl{r} }

func (h *LaborCtrl) List(c echo.Context) error {
	out, err := h.repo.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}
