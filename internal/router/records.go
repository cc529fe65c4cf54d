package router

import (
	"github.com/deppfellow/vbapi/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerRecordRoutes mounts the validate-and-echo endpoints under /api.
func registerRecordRoutes(api *echo.Group, h *handler.Handlers) {
	api.POST("/employee", h.Employee.Post())
	api.POST("/staff", h.Staff.Post())
}
