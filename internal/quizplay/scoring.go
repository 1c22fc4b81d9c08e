package quizplay

import "math"

const (
	PassThreshold = 60
	XPPerQuestion = 5
)

// Feedback bands over the final percentage.
const (
	FeedbackPerfect       = "Perfect score!"
	FeedbackExcellent     = "Excellent work!"
	FeedbackGood          = "Good job, you passed!"
	FeedbackFair          = "Fair effort, keep practicing."
	FeedbackNeedsPractice = "Needs practice. Review the material and try again."
)

func Percentage(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

func Passed(percentage, threshold int) bool {
	return percentage >= threshold
}

func XP(correct, perQuestion int) int {
	return correct * perQuestion
}

func Feedback(percentage int) string {
	switch {
	case percentage == 100:
		return FeedbackPerfect
	case percentage >= 80:
		return FeedbackExcellent
	case percentage >= PassThreshold:
		return FeedbackGood
	case percentage >= 40:
		return FeedbackFair
	default:
		return FeedbackNeedsPractice
	}
}
