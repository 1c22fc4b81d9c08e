package quizgen_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/studyloop/studyloop-api/internal/quizgen"
)

// validBatch builds a batch that satisfies the full structural contract:
// 3 questions, 4 options each, exactly one correct per question.
func validBatch() []quizgen.GeneratedQuestion {
	difficulties := []string{"easy", "medium", "hard"}
	batch := make([]quizgen.GeneratedQuestion, 0, 3)
	for i := 0; i < 3; i++ {
		q := quizgen.GeneratedQuestion{
			Question:   fmt.Sprintf("What does section %d of the material explain?", i+1),
			Difficulty: difficulties[i],
		}
		for j, letter := range quizgen.OptionLetters {
			q.Options = append(q.Options, quizgen.GeneratedOption{
				Letter:    letter,
				Text:      fmt.Sprintf("Answer %s for question %d", letter, i+1),
				IsCorrect: j == i%4,
			})
		}
		batch = append(batch, q)
	}
	return batch
}

func TestValidateGeneratedQuestions_Valid(t *testing.T) {
	if err := quizgen.ValidateGeneratedQuestions(validBatch()); err != nil {
		t.Fatalf("valid batch rejected: %v", err)
	}
}

func TestValidateGeneratedQuestions_Violations(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(batch []quizgen.GeneratedQuestion) []quizgen.GeneratedQuestion
		wantErr error
	}{
		{
			name: "TwoQuestions",
			mutate: func(batch []quizgen.GeneratedQuestion) []quizgen.GeneratedQuestion {
				return batch[:2]
			},
			wantErr: quizgen.ErrWrongQuestionCount,
		},
		{
			name: "FourQuestions",
			mutate: func(batch []quizgen.GeneratedQuestion) []quizgen.GeneratedQuestion {
				return append(batch, batch[0])
			},
			wantErr: quizgen.ErrWrongQuestionCount,
		},
		{
			name: "ThreeOptions",
			mutate: func(batch []quizgen.GeneratedQuestion) []quizgen.GeneratedQuestion {
				batch[1].Options = batch[1].Options[:3]
				return batch
			},
			wantErr: quizgen.ErrWrongOptionCount,
		},
		{
			name: "NoCorrectOption",
			mutate: func(batch []quizgen.GeneratedQuestion) []quizgen.GeneratedQuestion {
				for i := range batch[2].Options {
					batch[2].Options[i].IsCorrect = false
				}
				return batch
			},
			wantErr: quizgen.ErrWrongCorrectCount,
		},
		{
			name: "TwoCorrectOptions",
			mutate: func(batch []quizgen.GeneratedQuestion) []quizgen.GeneratedQuestion {
				for i := range batch[0].Options {
					batch[0].Options[i].IsCorrect = i < 2
				}
				return batch
			},
			wantErr: quizgen.ErrWrongCorrectCount,
		},
		{
			name: "EmptyQuestionText",
			mutate: func(batch []quizgen.GeneratedQuestion) []quizgen.GeneratedQuestion {
				batch[0].Question = "   "
				return batch
			},
			wantErr: quizgen.ErrEmptyText,
		},
		{
			name: "EmptyOptionText",
			mutate: func(batch []quizgen.GeneratedQuestion) []quizgen.GeneratedQuestion {
				batch[1].Options[2].Text = ""
				return batch
			},
			wantErr: quizgen.ErrEmptyText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := quizgen.ValidateGeneratedQuestions(tt.mutate(validBatch()))
			if err == nil {
				t.Fatal("expected a validation error, got nil")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("wrong violation reason: expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
