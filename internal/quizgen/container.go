package quizgen

import (
	"context"

	"gorm.io/gorm"
)

type Container struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewContainer(ctx context.Context, db *gorm.DB) (*Container, error) {
	provider, err := NewGeminiProvider(ctx)
	if err != nil {
		return nil, err
	}

	repo := NewRepository(db)
	service := NewService(repo, provider)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}, nil
}
