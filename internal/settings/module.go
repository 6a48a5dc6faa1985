// Package settings provides the admin settings bounded context module.
package settings

import (
	"phonelink_backend/internal/events"
	apphttp "phonelink_backend/internal/http"
	"phonelink_backend/internal/regions"
	"phonelink_backend/internal/settings/handler"
	"phonelink_backend/internal/settings/repository"
	"phonelink_backend/internal/settings/service"
	"phonelink_backend/platform/logger"
	"phonelink_backend/platform/validator"
)

// Module is the settings bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the settings module.
func NewModule(repo repository.Repository, registry *regions.Registry, eventBus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(repo, eventBus, log)
	return &Module{
		handler: handler.New(svc, registry, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "settings"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts settings routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Admin.GET("/settings", m.handler.Get)
	ctx.Admin.PUT("/settings", m.handler.Update)
	ctx.Admin.GET("/regions", m.handler.ListRegions)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
