package answer

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/studyloop/studyloop-api/internal/config"
	"github.com/studyloop/studyloop-api/internal/quizgen"
)

const XPPerCorrectAnswer = 5

var (
	ErrInvalidID        = errors.New("invalid id format")
	ErrQuestionNotFound = errors.New("question not found")
	ErrOptionNotFound   = errors.New("selected option does not belong to question")
)

type Service interface {
	Submit(ctx context.Context, userID uuid.UUID, dto SubmitAnswerDTO) (*SubmitResult, error)
	History(ctx context.Context, userID uuid.UUID) ([]AnswerRecord, error)
}

type service struct {
	repo         Repository
	questionRepo quizgen.Repository
}

func NewService(repo Repository, questionRepo quizgen.Repository) Service {
	return &service{
		repo:         repo,
		questionRepo: questionRepo,
	}
}

func (s *service) Submit(ctx context.Context, userID uuid.UUID, dto SubmitAnswerDTO) (*SubmitResult, error) {
	log := config.WithContext(ctx)

	questionID, err := uuid.Parse(dto.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("%w: question_id", ErrInvalidID)
	}
	selectedID, err := uuid.Parse(dto.SelectedOptionID)
	if err != nil {
		return nil, fmt.Errorf("%w: selected_option_id", ErrInvalidID)
	}

	options, err := s.questionRepo.FindOptionsByQuestion(questionID)
	if err != nil {
		log.WithError(err).Error("Failed to load question options")
		return nil, err
	}
	if len(options) == 0 {
		return nil, ErrQuestionNotFound
	}

	var selected, correct *quizgen.QuizOption
	for i := range options {
		if options[i].ID == selectedID {
			selected = &options[i]
		}
		if options[i].IsCorrect {
			correct = &options[i]
		}
	}
	if selected == nil {
		return nil, ErrOptionNotFound
	}
	if correct == nil {
		return nil, fmt.Errorf("question %s has no correct option", questionID)
	}

	record := AnswerRecord{
		ID:               uuid.New(),
		UserID:           userID,
		QuestionID:       questionID,
		SelectedOptionID: selectedID,
		IsCorrect:        selected.IsCorrect,
	}
	if err := s.repo.Create(&record); err != nil {
		log.WithError(err).Error("Failed to persist answer record")
		return nil, err
	}

	xp := 0
	if selected.IsCorrect {
		xp = XPPerCorrectAnswer
	}

	return &SubmitResult{
		IsCorrect:       selected.IsCorrect,
		CorrectOptionID: correct.ID,
		XPEarned:        xp,
	}, nil
}

func (s *service) History(ctx context.Context, userID uuid.UUID) ([]AnswerRecord, error) {
	log := config.WithContext(ctx)

	records, err := s.repo.FindAllByUser(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list answer records")
		return nil, err
	}
	return records, nil
}
