package handler

import (
	"github.com/deppfellow/vbapi/internal/server"
	"github.com/deppfellow/vbapi/internal/service"
)

// Handlers groups all HTTP handlers so router setup receives one object.
type Handlers struct {
	Health   *HealthHandler   // Health serves the status endpoint.
	OpenAPI  *OpenAPIHandler  // OpenAPI serves the API documentation UI.
	Employee *EmployeeHandler // Employee validates and echoes Employee records.
	Staff    *StaffHandler    // Staff validates and echoes Staff records.
}

// NewHandlers constructs the handler container, handing each resource its
// validator from services.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
		Employee: NewEmployeeHandler(s, services.Employee),
		Staff:    NewStaffHandler(s, services.Staff),
	}
}
