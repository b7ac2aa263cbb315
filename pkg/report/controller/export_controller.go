package controller

import "github.com/labstack/echo/v4"

type ExportController interface {
	Export(c echo.Context) error
}
