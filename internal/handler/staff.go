package handler

import (
	"net/http"

	"github.com/deppfellow/vbapi/internal/model"
	"github.com/deppfellow/vbapi/internal/server"
	"github.com/deppfellow/vbapi/internal/validation"
	"github.com/labstack/echo/v4"
)

// StaffHandler serves POST /api/staff.
type StaffHandler struct {
	Handler
	validator validation.Validator[*model.Staff]
}

func NewStaffHandler(s *server.Server, v validation.Validator[*model.Staff]) *StaffHandler {
	return &StaffHandler{
		Handler:   NewHandler(s),
		validator: v,
	}
}

// Post answers 200 with the record when it is valid, 400 with the
// violation list otherwise.
func (h *StaffHandler) Post() echo.HandlerFunc {
	return Handle(h.Handler, h.echoRecord, http.StatusOK, h.validator)
}

func (h *StaffHandler) echoRecord(c echo.Context, req *model.Staff) (*model.Staff, error) {
	return req, nil
}
