package controllerImp

import (
	"bytes"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/navya9866/Smart-agriculture/database"
	"github.com/navya9866/Smart-agriculture/pkg/report"
	"github.com/navya9866/Smart-agriculture/pkg/report/controller"
	"github.com/navya9866/Smart-agriculture/pkg/store"
)

// Recorder is notified after each served export. Optional.
type Recorder interface {
	RecordExportCreated()
}

type ExportCtrl struct {
	stores database.Stores
	rec    Recorder
}

var _ controller.ExportController = (*ExportCtrl)(nil)

func New(stores database.Stores, rec Recorder) *ExportCtrl { return &ExportCtrl{stores: stores, rec: rec} }

// Export streams every table as one xlsx workbook.
func (h *ExportCtrl) Export(c echo.Context) error {
	d, err := store.Snapshot(c.Request().Context(), h.stores)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := report.WriteWorkbook(&buf, d); err != nil {
		return err
	}
	if h.rec != nil {
		h.rec.RecordExportCreated()
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="agri-export.xlsx"`)
	return c.Blob(http.StatusOK, report.ContentType, buf.Bytes())
}
