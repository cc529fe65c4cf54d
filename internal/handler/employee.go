package handler

import (
	"net/http"

	"github.com/deppfellow/vbapi/internal/model"
	"github.com/deppfellow/vbapi/internal/server"
	"github.com/deppfellow/vbapi/internal/validation"
	"github.com/labstack/echo/v4"
)

// EmployeeHandler serves POST /api/employee.
type EmployeeHandler struct {
	Handler
	validator validation.Validator[*model.Employee]
}

func NewEmployeeHandler(s *server.Server, v validation.Validator[*model.Employee]) *EmployeeHandler {
	return &EmployeeHandler{
		Handler:   NewHandler(s),
		validator: v,
	}
}

// Post answers 200 with the record when it is valid, 400 with the
// violation list otherwise.
func (h *EmployeeHandler) Post() echo.HandlerFunc {
	return Handle(h.Handler, h.echoRecord, http.StatusOK, h.validator)
}

func (h *EmployeeHandler) echoRecord(c echo.Context, req *model.Employee) (*model.Employee, error) {
	return req, nil
}
