package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/studyloop/studyloop-api/internal/answer"
	"github.com/studyloop/studyloop-api/internal/material"
	"github.com/studyloop/studyloop-api/internal/middlewares"
	"github.com/studyloop/studyloop-api/internal/quizgen"
)

type RouterConfig struct {
	QuizGenHandler  *quizgen.Handler
	MaterialHandler *material.Handler
	AnswerHandler   *answer.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Mount("/quizzes", quizgen.Routes(cfg.QuizGenHandler))
	r.Mount("/materials", material.Routes(cfg.MaterialHandler))
	r.Mount("/answers", answer.Routes(cfg.AnswerHandler))

	return r
}
