package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"phonelink_backend/internal/regions"
	"phonelink_backend/internal/settings/service"
	"phonelink_backend/internal/settings/transport"
	"phonelink_backend/platform/httpkit"
	"phonelink_backend/platform/validator"
)

// Handler handles HTTP requests for the admin settings screen.
type Handler struct {
	svc     *service.Service
	regions *regions.Registry
	val     *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// New creates a new settings handler.
func New(svc *service.Service, registry *regions.Registry, val *validator.Validator) *Handler {
	return &Handler{svc: svc, regions: registry, val: val}
}

// Get returns the stored settings.
// GET /api/v1/admin/settings
func (h *Handler) Get(c *gin.Context) {
	settings, err := h.svc.Get(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.NewSettingsResponse(settings))
}

// Update normalizes and stores a JSON or form submission.
// PUT /api/v1/admin/settings
func (h *Handler) Update(c *gin.Context) {
	var req transport.SaveSettingsRequest
	if err := c.ShouldBind(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	identity := httpkit.GetIdentity(c)
	settings, err := h.svc.Save(c.Request.Context(), req, identity.Actor())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.NewSettingsResponse(settings))
}

// ListRegions returns the selectable default regions.
// GET /api/v1/admin/regions
func (h *Handler) ListRegions(c *gin.Context) {
	httpkit.OK(c, h.regions.All())
}
