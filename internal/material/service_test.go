package material_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/studyloop/studyloop-api/internal/material"
)

type fakeRepo struct {
	materials map[uuid.UUID]*material.Material
	err       error
}

func (r *fakeRepo) FindByID(id uuid.UUID) (*material.Material, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.materials[id], nil
}

func TestGetMaterial(t *testing.T) {
	id := uuid.New()
	repo := &fakeRepo{materials: map[uuid.UUID]*material.Material{
		id: {ID: id, Title: "Photosynthesis", Content: "Plants convert light into energy."},
	}}
	service := material.NewService(repo)

	m, err := service.GetMaterial(context.Background(), id)
	if err != nil {
		t.Fatalf("GetMaterial failed: %v", err)
	}
	if m.Title != "Photosynthesis" {
		t.Errorf("unexpected material: %+v", m)
	}
}

func TestGetMaterial_NotFound(t *testing.T) {
	service := material.NewService(&fakeRepo{materials: map[uuid.UUID]*material.Material{}})

	_, err := service.GetMaterial(context.Background(), uuid.New())
	if !errors.Is(err, material.ErrMaterialNotFound) {
		t.Fatalf("expected ErrMaterialNotFound, got %v", err)
	}
}

func TestGetMaterial_RepositoryError(t *testing.T) {
	dbErr := errors.New("connection refused")
	service := material.NewService(&fakeRepo{err: dbErr})

	_, err := service.GetMaterial(context.Background(), uuid.New())
	if !errors.Is(err, dbErr) {
		t.Fatalf("expected repository error to propagate, got %v", err)
	}
}
