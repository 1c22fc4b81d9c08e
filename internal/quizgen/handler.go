package quizgen

import (
	"encoding/json"
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

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto GenerateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body for quiz generation")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Generate(r.Context(), dto)
	switch {
	case errors.Is(err, ErrMissingField), errors.Is(err, ErrInvalidID):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, ErrGatewayUnavailable):
		log.WithError(err).Error("AI gateway unavailable")
		http.Error(w, "quiz generation is unavailable right now, try again later", http.StatusBadGateway)
		return
	case errors.Is(err, ErrContractViolation):
		log.WithError(err).Warn("Generated questions failed validation")
		http.Error(w, "generated questions failed validation, try again", http.StatusUnprocessableEntity)
		return
	case err != nil:
		log.WithError(err).Error("Failed to generate quiz questions")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	status := http.StatusCreated
	if result.AlreadyExists {
		status = http.StatusOK
	}
	config.JSON(w, status, result)
}

func (h *Handler) GetByMaterial(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	materialID, err := uuid.Parse(chi.URLParam(r, "materialID"))
	if err != nil {
		http.Error(w, "invalid material id", http.StatusBadRequest)
		return
	}

	views, err := h.service.QuestionsForMaterial(r.Context(), materialID)
	if errors.Is(err, ErrNoQuestions) {
		// The client orchestrator watches for this to trigger generation.
		http.Error(w, "no questions for this material yet", http.StatusNotFound)
		return
	}
	if err != nil {
		log.WithError(err).Error("Failed to list quiz questions")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, views)
}
