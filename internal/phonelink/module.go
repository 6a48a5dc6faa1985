// Package phonelink provides the phone rendering bounded context module.
package phonelink

import (
	apphttp "phonelink_backend/internal/http"
	"phonelink_backend/internal/phonelink/handler"
	"phonelink_backend/internal/phonelink/service"
	"phonelink_backend/platform/logger"
	"phonelink_backend/platform/validator"
)

// Module is the phone link bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the phone link module.
func NewModule(settings service.SettingsReader, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(settings, log)
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "phonelink"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts phone link routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/render", m.handler.RenderContent)
	ctx.V1.GET("/phone", m.handler.RenderNumber)

	ctx.Admin.GET("/settings/preview", m.handler.Preview)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
