package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/navya9866/Smart-agriculture/pkg/cropfilter"
	"github.com/navya9866/Smart-agriculture/pkg/market/controller"
	"github.com/navya9866/Smart-agriculture/pkg/market/service"
)

type MarketCtrl struct{ svc service.MarketService }

var _ controller.MarketController = (*MarketCtrl)(nil)

func New(svc service.MarketService) *MarketCtrl { return &MarketCtrl{svc} }

func (h *MarketCtrl) List(c echo.Context) error {
	out, err := h.svc.List(c.Request().Context(), cropfilter.Parse(c.QueryParam("cropId")))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}
