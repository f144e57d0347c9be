package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"AmbientFM/core/ambient"
	"AmbientFM/core/catalog"
	"AmbientFM/logger"
	"AmbientFM/model"
)

// maxRequestBody bounds POST bodies; requests are a handful of short fields.
const maxRequestBody = 64 << 10

// AmbientHandler 背景音处理器
type AmbientHandler struct {
	orchestrator *ambient.Orchestrator
	pending      func() int
}

// NewAmbientHandler creates the handler. pending reports outstanding auto-stop timers and may be nil.
func NewAmbientHandler(orchestrator *ambient.Orchestrator, pending func() int) *AmbientHandler {
	if pending == nil {
		pending = func() int { return 0 }
	}
	return &AmbientHandler{orchestrator: orchestrator, pending: pending}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("编码响应失败", logger.ErrorField(err))
	}
}

// PlaybackHandler turns the ambient sound on or off.
func (h *AmbientHandler) PlaybackHandler(w http.ResponseWriter, r *http.Request) {
	var req model.Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		logger.Warn("[Ambient] 解析请求体失败", logger.ErrorField(err))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.orchestrator.Run(r.Context(), req)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, resp)
	case errors.Is(err, ambient.ErrInvalidParameter):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, catalog.ErrEmptyCatalog):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		logger.Error("[Ambient] playback request failed", logger.ErrorField(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}

// SoundsHandler 返回可用的背景音列表
func (h *AmbientHandler) SoundsHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"available_sounds": h.orchestrator.Catalog().Names(),
	})
}

// Shutdown stops the player when auto-stop timers are still pending, since they die with the server.
func (h *AmbientHandler) Shutdown(ctx context.Context) {
	if n := h.pending(); n > 0 {
		logger.Info("[Ambient] stopping player with pending auto-stop before exit", logger.Int("pending", n))
		h.orchestrator.Stop(ctx)
	}
}

// HealthHandler reports liveness and the number of pending auto-stop timers.
func (h *AmbientHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":             "ok",
		"pending_auto_stops": h.pending(),
	})
}
