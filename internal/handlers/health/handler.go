package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"flightapi/config"
	"flightapi/transport/http/response"
)

type Handler struct {
	cfg *config.Config
}

func New(cfg *config.Config) Handler {
	return Handler{cfg: cfg}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

type status struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Health reports liveness. It must not touch the database or the cache.
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	response.WithRaw(w, http.StatusOK, status{
		Status:  "ok",
		Service: handler.cfg.App.Name,
	})
}
