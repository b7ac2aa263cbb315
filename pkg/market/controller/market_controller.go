package controller

import "github.com/labstack/echo/v4"

type MarketController interface {
	List(c echo.Context) error
}
