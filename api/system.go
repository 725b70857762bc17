package api

import (
	"context"
	"log/slog"
	"net/http"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type SystemHandler struct {
	store Pinger
}

func NewSystemHandler(store Pinger) *SystemHandler {
	return &SystemHandler{store: store}
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

func (h *SystemHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Ping(r.Context()); err != nil {
		logger.WarnContext(r.Context(), "health check failed", slog.Any("err", err))
		writeJSON(w, healthResponse{Status: "unavailable", Service: "trivia"}, http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, healthResponse{Status: "ok", Service: "trivia"}, http.StatusOK)
}

func (h *SystemHandler) VersionHandler(version, buildTime string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]string{"version": version, "buildTime": buildTime}, http.StatusOK)
	}
}
