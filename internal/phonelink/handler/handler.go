package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"phonelink_backend/internal/phonelink/domain"
	"phonelink_backend/internal/phonelink/service"
	"phonelink_backend/internal/phonelink/transport"
	"phonelink_backend/platform/httpkit"
	"phonelink_backend/platform/validator"
)

// Handler handles HTTP requests for phone rendering.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// New creates a new phone link handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RenderContent expands every phone shortcode in a document.
// POST /api/v1/render
func (h *Handler) RenderContent(c *gin.Context) {
	var req transport.RenderContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	httpkit.OK(c, transport.RenderContentResponse{
		Content: h.svc.ExpandContent(c.Request.Context(), req.Content),
	})
}

// RenderNumber renders a single number from shortcode-style query parameters.
// GET /api/v1/phone
func (h *Handler) RenderNumber(c *gin.Context) {
	var req transport.RenderNumberRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	output := h.svc.RenderShortcode(c.Request.Context(), domain.Invocation{
		Number:  req.Number,
		Region:  req.Region,
		Format:  req.Format,
		Linkify: req.Linkify,
	})
	httpkit.OK(c, transport.RenderNumberResponse{Output: output})
}

// Preview renders the example number for a region in every format (admin only).
// GET /api/v1/admin/settings/preview
func (h *Handler) Preview(c *gin.Context) {
	var req transport.PreviewRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	httpkit.OK(c, h.svc.Preview(c.Request.Context(), req.Region))
}
