package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/GVarya/MA-homework-service/internal/middleware"
	"github.com/GVarya/MA-homework-service/pkg/logging"
)

func NewRouter(h *HomeworkHandler, logger *logging.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewLoggingMiddleware(logger))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	h.RegisterRoutes(r)
	return r
}
