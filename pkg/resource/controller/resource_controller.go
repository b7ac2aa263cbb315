package controller

import "github.com/labstack/echo/v4"

type ResourceController interface {
	List(c echo.Context) error
}
