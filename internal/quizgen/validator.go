package quizgen

import (
	"fmt"
	"strings"
)

// ValidateGeneratedQuestions enforces the structural contract on a candidate
// batch before anything is written. It is pure: no logging, no side effects.
func ValidateGeneratedQuestions(questions []GeneratedQuestion) error {
	if len(questions) != QuestionsPerMaterial {
		return fmt.Errorf("%w: expected %d questions, got %d", ErrWrongQuestionCount, QuestionsPerMaterial, len(questions))
	}

	for i, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			return fmt.Errorf("%w: question %d has no text", ErrEmptyText, i+1)
		}
		if len(q.Options) != OptionsPerQuestion {
			return fmt.Errorf("%w: question %d has %d options, expected %d", ErrWrongOptionCount, i+1, len(q.Options), OptionsPerQuestion)
		}

		correct := 0
		for _, opt := range q.Options {
			if strings.TrimSpace(opt.Text) == "" {
				return fmt.Errorf("%w: question %d option %q has no text", ErrEmptyText, i+1, opt.Letter)
			}
			if opt.IsCorrect {
				correct++
			}
		}
		if correct != 1 {
			return fmt.Errorf("%w: question %d has %d correct options, expected exactly 1", ErrWrongCorrectCount, i+1, correct)
		}
	}

	return nil
}
