package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/fastygo/todoapp/api/transport"
	"github.com/fastygo/todoapp/internal/infrastructure/monitor"
	"github.com/fastygo/todoapp/pkg/httpcontext"
)

type HealthHandler struct {
	baseHandler
	monitor *monitor.Monitor
}

func NewHealthHandler(mon *monitor.Monitor, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		monitor:     mon,
	}
}

// Check handles GET /health.
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	status := h.monitor.GetStatus()
	if !status.Storage {
		h.respondJSON(ctx, http.StatusServiceUnavailable, transport.ErrorResponse{Error: "storage unavailable"})
		return
	}
	h.respondJSON(ctx, http.StatusOK, map[string]interface{}{
		"timestamp": time.Now().UTC(),
		"storage":   status,
	})
}
