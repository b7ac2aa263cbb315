package controller

import "github.com/labstack/echo/v4"

type LaborController interface {
	List(c echo.Context) error
}
