package answer

import (
	"github.com/studyloop/studyloop-api/internal/quizgen"
	"gorm.io/gorm"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(db *gorm.DB, questionRepo quizgen.Repository) *Container {
	repo := NewRepository(db)
	service := NewService(repo, questionRepo)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
