package quizgen

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/studyloop/studyloop-api/internal/config"
)

type Service interface {
	Generate(ctx context.Context, dto GenerateDTO) (*GenerateResult, error)
	QuestionsForMaterial(ctx context.Context, materialID uuid.UUID) ([]QuestionView, error)
}

type service struct {
	repo     Repository
	provider Provider
}

func NewService(repo Repository, provider Provider) Service {
	return &service{
		repo:     repo,
		provider: provider,
	}
}

// Generate runs the full pipeline: existence check, prompt, gateway call,
// validation, persistence. The existence check is a cost-saving fast path;
// the unique index on (material_id, question_number) is what actually keeps
// two concurrent first-time calls from double-writing.
func (s *service) Generate(ctx context.Context, dto GenerateDTO) (*GenerateResult, error) {
	log := config.WithContext(ctx)

	materialID, topicID, err := dto.validate()
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByMaterial(materialID)
	if err != nil {
		return nil, fmt.Errorf("%w: existence check: %v", ErrPersistence, err)
	}
	if exists {
		log.Infof("Questions already exist for material %s, skipping generation", materialID)
		questions, err := s.repo.ListByMaterial(materialID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		return &GenerateResult{AlreadyExists: true, Questions: questions}, nil
	}

	log.Infof("Generating questions for material %s", materialID)

	generated, err := s.provider.GenerateQuestions(ctx, systemPrompt, BuildUserPrompt(dto.MaterialTitle, dto.MaterialContent))
	if err != nil {
		return nil, err
	}

	if err := ValidateGeneratedQuestions(generated); err != nil {
		log.WithError(err).Warn("Generated batch rejected by validator, nothing persisted")
		return nil, fmt.Errorf("%w: %s", ErrContractViolation, err)
	}

	created := make([]QuizQuestion, 0, len(generated))
	for i, gq := range generated {
		question := QuizQuestion{
			ID:             uuid.New(),
			MaterialID:     materialID,
			TopicID:        topicID,
			QuestionNumber: i + 1,
			QuestionText:   gq.Question,
		}
		if err := s.repo.CreateQuestion(&question); err != nil {
			log.WithError(err).Errorf("Failed to persist question %d", i+1)
			return nil, fmt.Errorf("%w: question %d: %v", ErrPersistence, i+1, err)
		}

		options := make([]*QuizOption, 0, len(gq.Options))
		for _, gopt := range gq.Options {
			options = append(options, &QuizOption{
				ID:         uuid.New(),
				QuestionID: question.ID,
				Letter:     gopt.Letter,
				OptionText: gopt.Text,
				IsCorrect:  gopt.IsCorrect,
			})
		}
		if err := s.repo.CreateOptions(options); err != nil {
			// Earlier question rows are deliberately left in place; the fetch
			// path only reports a material as ready once questions exist, and
			// a retried generation hits the already-exists path.
			log.WithError(err).Errorf("Failed to persist options for question %d", i+1)
			return nil, fmt.Errorf("%w: options for question %d: %v", ErrPersistence, i+1, err)
		}

		for _, opt := range options {
			question.Options = append(question.Options, *opt)
		}
		created = append(created, question)
	}

	log.Infof("Persisted %d questions for material %s", len(created), materialID)
	return &GenerateResult{Questions: created}, nil
}

// QuestionsForMaterial is the player-facing read path. Absence of questions
// is a first-class signal (ErrNoQuestions), not an infrastructure failure.
func (s *service) QuestionsForMaterial(ctx context.Context, materialID uuid.UUID) ([]QuestionView, error) {
	questions, err := s.repo.ListByMaterial(materialID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	views := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, toQuestionView(q))
	}
	return views, nil
}

func (dto GenerateDTO) validate() (materialID, topicID uuid.UUID, err error) {
	fields := []struct {
		name  string
		value string
	}{
		{"material_id", dto.MaterialID},
		{"topic_id", dto.TopicID},
		{"material_title", dto.MaterialTitle},
		{"material_content", dto.MaterialContent},
	}
	for _, f := range fields {
		if f.value == "" {
			return uuid.Nil, uuid.Nil, fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}

	materialID, err = uuid.Parse(dto.MaterialID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("%w: material_id", ErrInvalidID)
	}
	topicID, err = uuid.Parse(dto.TopicID)
	if err != nil {
		return uuid.Nil, uuid.Nil, fmt.Errorf("%w: topic_id", ErrInvalidID)
	}
	return materialID, topicID, nil
}
