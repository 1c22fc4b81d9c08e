package quizplay_test

import (
	"testing"

	"github.com/studyloop/studyloop-api/internal/quizplay"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		correct, total, want int
	}{
		{2, 3, 67},
		{3, 3, 100},
		{0, 3, 0},
		{1, 3, 33},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := quizplay.Percentage(tt.correct, tt.total); got != tt.want {
			t.Errorf("Percentage(%d, %d) = %d, expected %d", tt.correct, tt.total, got, tt.want)
		}
	}
}

func TestPassed(t *testing.T) {
	if !quizplay.Passed(67, quizplay.PassThreshold) {
		t.Error("67%% should pass with threshold 60")
	}
	if quizplay.Passed(40, quizplay.PassThreshold) {
		t.Error("40%% should not pass with threshold 60")
	}
	if !quizplay.Passed(60, quizplay.PassThreshold) {
		t.Error("the threshold itself should pass")
	}
}

func TestXP(t *testing.T) {
	if got := quizplay.XP(2, quizplay.XPPerQuestion); got != 10 {
		t.Errorf("XP(2, 5) = %d, expected 10", got)
	}
	if got := quizplay.XP(0, quizplay.XPPerQuestion); got != 0 {
		t.Errorf("XP(0, 5) = %d, expected 0", got)
	}
}

func TestFeedback(t *testing.T) {
	tests := []struct {
		percentage int
		want       string
	}{
		{100, quizplay.FeedbackPerfect},
		{85, quizplay.FeedbackExcellent},
		{80, quizplay.FeedbackExcellent},
		{67, quizplay.FeedbackGood},
		{60, quizplay.FeedbackGood},
		{45, quizplay.FeedbackFair},
		{40, quizplay.FeedbackFair},
		{33, quizplay.FeedbackNeedsPractice},
		{0, quizplay.FeedbackNeedsPractice},
	}
	for _, tt := range tests {
		if got := quizplay.Feedback(tt.percentage); got != tt.want {
			t.Errorf("Feedback(%d) = %q, expected %q", tt.percentage, got, tt.want)
		}
	}
}
