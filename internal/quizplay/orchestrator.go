package quizplay

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/studyloop/studyloop-api/internal/answer"
	"github.com/studyloop/studyloop-api/internal/config"
	"github.com/studyloop/studyloop-api/internal/material"
	"github.com/studyloop/studyloop-api/internal/quizgen"
)

// The orchestrator consumes the platform services through these narrow
// interfaces; the quizgen, material and answer services satisfy them as-is.
type QuestionFetcher interface {
	QuestionsForMaterial(ctx context.Context, materialID uuid.UUID) ([]quizgen.QuestionView, error)
}

type Generator interface {
	Generate(ctx context.Context, dto quizgen.GenerateDTO) (*quizgen.GenerateResult, error)
}

type MaterialSource interface {
	GetMaterial(ctx context.Context, id uuid.UUID) (*material.Material, error)
}

type AnswerSubmitter interface {
	Submit(ctx context.Context, userID uuid.UUID, dto answer.SubmitAnswerDTO) (*answer.SubmitResult, error)
}

var (
	_ QuestionFetcher = (quizgen.Service)(nil)
	_ Generator       = (quizgen.Service)(nil)
	_ MaterialSource  = (material.Service)(nil)
	_ AnswerSubmitter = (answer.Service)(nil)
)

var ErrQuizNotReady = errors.New("quiz is not in a playable state")

type Config struct {
	PollInterval      time.Duration
	MaxPollAttempts   int
	GenerationTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		PollInterval:      2 * time.Second,
		MaxPollAttempts:   5,
		GenerationTimeout: 30 * time.Second,
	}
}

// AnswerEntry is one row of the session-local answer ledger.
type AnswerEntry struct {
	QuestionID       uuid.UUID `json:"question_id"`
	SelectedOptionID uuid.UUID `json:"selected_option_id"`
	IsCorrect        bool      `json:"is_correct"`
	CorrectOptionID  uuid.UUID `json:"correct_option_id"`
}

// State is the full view the presentation layer renders from. Terminal
// failure states always carry a message and a retry affordance.
type State struct {
	Phase     Phase                  `json:"phase"`
	Questions []quizgen.QuestionView `json:"questions,omitempty"`
	Message   string                 `json:"message,omitempty"`
	CanRetry  bool                   `json:"can_retry"`
	Answers   []AnswerEntry          `json:"answers,omitempty"`
	XP        int                    `json:"xp"`
	Completed bool                   `json:"completed"`
}

// Orchestrator drives one learner's quiz session for one material: fetch,
// trigger generation when nothing exists yet, poll while a generation is in
// flight, then collect answers.
type Orchestrator struct {
	fetcher   QuestionFetcher
	generator Generator
	materials MaterialSource
	answers   AnswerSubmitter
	cfg       Config
	userID    uuid.UUID

	mu    sync.Mutex
	state State
}

func NewOrchestrator(fetcher QuestionFetcher, generator Generator, materials MaterialSource, answers AnswerSubmitter, userID uuid.UUID, cfg Config) *Orchestrator {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultConfig().PollInterval
	}
	if cfg.MaxPollAttempts <= 0 {
		cfg.MaxPollAttempts = DefaultConfig().MaxPollAttempts
	}
	if cfg.GenerationTimeout <= 0 {
		cfg.GenerationTimeout = DefaultConfig().GenerationTimeout
	}

	return &Orchestrator{
		fetcher:   fetcher,
		generator: generator,
		materials: materials,
		answers:   answers,
		cfg:       cfg,
		userID:    userID,
		state:     State{Phase: PhaseIdle},
	}
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Load resolves the question set for a material, generating it on demand.
// It always returns a terminal state: READY, FAILED, or TIMED_OUT.
func (o *Orchestrator) Load(ctx context.Context, materialID uuid.UUID) State {
	if o.beginLoad() {
		// Another load on this instance already owns a generation attempt;
		// fall back to watching the store instead of triggering a second one.
		return o.poll(ctx, materialID)
	}

	questions, err := o.fetcher.QuestionsForMaterial(ctx, materialID)
	if err == nil {
		return o.ready(questions)
	}
	if !errors.Is(err, quizgen.ErrNoQuestions) {
		config.WithContext(ctx).WithError(err).Error("Quiz fetch failed")
		return o.fail("could not load the quiz, try again")
	}

	return o.generate(ctx, materialID)
}

// beginLoad claims the load for this call. It reports true when a
// generation attempt is already in flight on this instance.
func (o *Orchestrator) beginLoad() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state.Phase.InFlight() {
		return true
	}
	o.state = State{Phase: PhaseFetching}
	return false
}

func (o *Orchestrator) generate(ctx context.Context, materialID uuid.UUID) State {
	log := config.WithContext(ctx)
	o.setPhase(PhaseGenerating)

	mat, err := o.materials.GetMaterial(ctx, materialID)
	if err != nil {
		log.WithError(err).Error("Could not load material for quiz generation")
		return o.fail("could not load the learning material, try again")
	}

	// The remote call runs on a detached context: hitting the local deadline
	// stops the wait, not the generation. A later fetch may observe rows that
	// were written after this call already gave up.
	genCtx := context.WithoutCancel(ctx)
	resultCh := make(chan error, 1)
	go func() {
		_, genErr := o.generator.Generate(genCtx, quizgen.GenerateDTO{
			MaterialID:      mat.ID.String(),
			TopicID:         mat.TopicID.String(),
			MaterialTitle:   mat.Title,
			MaterialContent: mat.Content,
		})
		resultCh <- genErr
	}()

	timer := time.NewTimer(o.cfg.GenerationTimeout)
	defer timer.Stop()

	select {
	case genErr := <-resultCh:
		if genErr != nil {
			log.WithError(genErr).Error("Quiz generation failed")
			return o.fail("quiz generation failed, try again")
		}
	case <-timer.C:
		log.Warnf("Quiz generation for material %s exceeded the local deadline", materialID)
		return o.timedOut("quiz generation is taking too long, try again in a moment")
	case <-ctx.Done():
		return o.fail("quiz loading was canceled")
	}

	o.setPhase(PhaseFetching)
	questions, err := o.fetcher.QuestionsForMaterial(ctx, materialID)
	if err != nil {
		log.WithError(err).Error("Re-fetch after generation failed")
		return o.fail("questions are not ready yet, try again")
	}
	return o.ready(questions)
}

func (o *Orchestrator) poll(ctx context.Context, materialID uuid.UUID) State {
	o.setPhase(PhasePolling)

	ticker := time.NewTicker(o.cfg.PollInterval)
	defer ticker.Stop()

	for attempt := 1; attempt <= o.cfg.MaxPollAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return o.fail("quiz loading was canceled")
		case <-ticker.C:
		}

		questions, err := o.fetcher.QuestionsForMaterial(ctx, materialID)
		if err == nil {
			return o.ready(questions)
		}
		if !errors.Is(err, quizgen.ErrNoQuestions) {
			config.WithContext(ctx).WithError(err).Error("Quiz poll failed")
			return o.fail("could not load the quiz, try again")
		}
	}

	return o.timedOut("quiz generation is taking too long, try again in a moment")
}

// SubmitAnswer records one answer in the local ledger and accumulates XP.
// The session is completed once every question has been answered.
func (o *Orchestrator) SubmitAnswer(ctx context.Context, questionID, selectedOptionID uuid.UUID) (State, error) {
	o.mu.Lock()
	if o.state.Phase != PhaseReady {
		o.mu.Unlock()
		return o.State(), ErrQuizNotReady
	}
	o.mu.Unlock()

	result, err := o.answers.Submit(ctx, o.userID, answer.SubmitAnswerDTO{
		QuestionID:       questionID.String(),
		SelectedOptionID: selectedOptionID.String(),
	})
	if err != nil {
		return o.State(), err
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.state.Answers = append(o.state.Answers, AnswerEntry{
		QuestionID:       questionID,
		SelectedOptionID: selectedOptionID,
		IsCorrect:        result.IsCorrect,
		CorrectOptionID:  result.CorrectOptionID,
	})
	o.state.XP += result.XPEarned
	if len(o.state.Answers) >= len(o.state.Questions) {
		o.state.Completed = true
	}
	return o.state, nil
}

func (o *Orchestrator) setPhase(p Phase) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state.Phase = p
}

func (o *Orchestrator) ready(questions []quizgen.QuestionView) State {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state.Phase = PhaseReady
	o.state.Questions = questions
	o.state.Message = ""
	o.state.CanRetry = false
	return o.state
}

func (o *Orchestrator) fail(message string) State {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state.Phase = PhaseFailed
	o.state.Message = message
	o.state.CanRetry = true
	return o.state
}

func (o *Orchestrator) timedOut(message string) State {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state.Phase = PhaseTimedOut
	o.state.Message = message
	o.state.CanRetry = true
	return o.state
}
