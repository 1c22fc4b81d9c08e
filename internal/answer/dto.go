package answer

import "github.com/google/uuid"

type SubmitAnswerDTO struct {
	QuestionID       string `json:"question_id"`
	SelectedOptionID string `json:"selected_option_id"`
}

type SubmitResult struct {
	IsCorrect       bool      `json:"is_correct"`
	CorrectOptionID uuid.UUID `json:"correct_option_id"`
	XPEarned        int       `json:"xp_earned"`
}
