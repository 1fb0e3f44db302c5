package http

import (
	"net/http"
	"time"

	"github.com/elparchetipk/go-auth-api/internal/utils"
	"github.com/elparchetipk/go-auth-api/models"
)

const serviceName = "go-auth-api"

// health is a liveness probe. It carries no dependency on the database so a
// storage outage never masks the fact that the process itself is up.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Status:    "ok",
		Service:   serviceName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}
