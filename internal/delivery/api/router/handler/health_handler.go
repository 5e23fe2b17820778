// Package handler contains the HTTP handlers for the API server.
package handler

import (
	"net/http"

	"checkin/internal/delivery/api/response"
	"checkin/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// Index sends the site root to the establishment login.
func Index(c echo.Context) error {
	return c.Redirect(http.StatusFound, entity.ActorEstablishment.LoginPath())
}
