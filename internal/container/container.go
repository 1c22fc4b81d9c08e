package container

import (
	"context"
	"log"
	"os"

	"github.com/studyloop/studyloop-api/internal/answer"
	"github.com/studyloop/studyloop-api/internal/auth"
	"github.com/studyloop/studyloop-api/internal/config"
	"github.com/studyloop/studyloop-api/internal/material"
	"github.com/studyloop/studyloop-api/internal/quizgen"
)

type Container struct {
	MaterialContainer *material.Container
	QuizGenContainer  *quizgen.Container
	AnswerContainer   *answer.Container
}

func New() *Container {
	config.Init()
	auth.Init()

	ctx := context.Background()
	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(ctx, dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(
		&material.Material{},
		&quizgen.QuizQuestion{},
		&quizgen.QuizOption{},
		&answer.AnswerRecord{},
	); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	materialContainer := material.NewContainer(config.DB)
	quizGenContainer, err := quizgen.NewContainer(ctx, config.DB)
	if err != nil {
		log.Fatalf("failed to init quiz generation: %v", err)
	}
	answerContainer := answer.NewContainer(config.DB, quizGenContainer.Repo)

	return &Container{
		MaterialContainer: materialContainer,
		QuizGenContainer:  quizGenContainer,
		AnswerContainer:   answerContainer,
	}
}
