package controller

import "github.com/labstack/echo/v4"

type EnvironmentController interface {
	List(c echo.Context) error
}
