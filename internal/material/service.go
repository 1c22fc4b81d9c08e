package material

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/studyloop/studyloop-api/internal/config"
)

var ErrMaterialNotFound = errors.New("material not found")

type Service interface {
	GetMaterial(ctx context.Context, id uuid.UUID) (*Material, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetMaterial(ctx context.Context, id uuid.UUID) (*Material, error) {
	log := config.WithContext(ctx)

	m, err := s.repo.FindByID(id)
	if err != nil {
		log.WithError(err).Error("Failed to load material")
		return nil, err
	}
	if m == nil {
		return nil, ErrMaterialNotFound
	}
	return m, nil
}
