package quizgen

import "errors"

// Callers react differently to each of these, so they stay distinguishable
// through errors.Is even after wrapping.
var (
	ErrMissingField       = errors.New("missing required field")
	ErrInvalidID          = errors.New("invalid id format")
	ErrGatewayUnavailable = errors.New("ai gateway unavailable")
	ErrContractViolation  = errors.New("ai response violates the question contract")
	ErrPersistence        = errors.New("failed to persist quiz questions")
	ErrNoQuestions        = errors.New("no questions exist for material")
)

// Validator violation reasons.
var (
	ErrWrongQuestionCount = errors.New("wrong question count")
	ErrWrongOptionCount   = errors.New("wrong option count")
	ErrWrongCorrectCount  = errors.New("wrong correct option count")
	ErrEmptyText          = errors.New("empty text field")
)
