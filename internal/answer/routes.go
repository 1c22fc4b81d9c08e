package answer

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/studyloop/studyloop-api/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Post("/", h.Submit)
	r.Get("/", h.History)
	return r
}
