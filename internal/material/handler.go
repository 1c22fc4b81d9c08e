package material

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/studyloop/studyloop-api/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, "invalid material id", http.StatusBadRequest)
		return
	}

	m, err := h.service.GetMaterial(r.Context(), id)
	if errors.Is(err, ErrMaterialNotFound) {
		http.Error(w, "material not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.WithError(err).Error("Failed to fetch material")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, m)
}
