package handlers

import (
	"github.com/labstack/echo/v4"
	"net/http"
)

type healthResponse struct {
	Status string `json:"status"`
}

func (a *App) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, &healthResponse{Status: "ok"})
}
