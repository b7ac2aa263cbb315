package controllerImp

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/navya9866/Smart-agriculture/entities"
	"github.com/navya9866/Smart-agriculture/pkg/apierr"
	"github.com/navya9866/Smart-agriculture/pkg/crop/controller"
	"github.com/navya9866/Smart-agriculture/pkg/crop/repository"
	"github.com/navya9866/Smart-agriculture/pkg/crop/service"
	"github.com/navya9866/Smart-agriculture/pkg/schema"
)

const msgNotFound = "Crop not found"

type CropCtrl struct{ svc service.CropService }

var _ controller.CropController = (*CropCtrl)(nil)

func New(svc service.CropService) *CropCtrl { return &CropCtrl{svc} }

func (h *CropCtrl) List(c echo.Context) error {
	out, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, out)
}

// Get treats an id that is not an integer like an id that does not exist.
func (h *CropCtrl) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return apierr.NotFound(c, msgNotFound)
	}
	crop, err := h.svc.Get(c.Request().Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		return apierr.NotFound(c, msgNotFound)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, crop)
}

func (h *CropCtrl) Create(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return apierr.Validation(c, &schema.FieldError{Message: "Invalid request body"})
	}
	var in entities.InsertCrop
	if fe := schema.Decode(schema.InsertCropShape, body, &in); fe != nil {
		return apierr.Validation(c, fe)
	}
	crop, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, crop)
}
