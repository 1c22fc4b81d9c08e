package quizgen

import "github.com/google/uuid"

type GenerateDTO struct {
	MaterialID      string `json:"material_id"`
	TopicID         string `json:"topic_id"`
	MaterialTitle   string `json:"material_title"`
	MaterialContent string `json:"material_content"`
}

type GenerateResult struct {
	AlreadyExists bool           `json:"already_exists"`
	Questions     []QuizQuestion `json:"questions"`
}

// QuestionView is the player-facing shape: option correctness is stripped.
type QuestionView struct {
	ID             uuid.UUID    `json:"id"`
	MaterialID     uuid.UUID    `json:"material_id"`
	QuestionNumber int          `json:"question_number"`
	QuestionText   string       `json:"question_text"`
	Options        []OptionView `json:"options"`
}

type OptionView struct {
	ID     uuid.UUID `json:"id"`
	Letter string    `json:"letter"`
	Text   string    `json:"text"`
}

func toQuestionView(q QuizQuestion) QuestionView {
	view := QuestionView{
		ID:             q.ID,
		MaterialID:     q.MaterialID,
		QuestionNumber: q.QuestionNumber,
		QuestionText:   q.QuestionText,
		Options:        make([]OptionView, 0, len(q.Options)),
	}
	for _, opt := range q.Options {
		view.Options = append(view.Options, OptionView{
			ID:     opt.ID,
			Letter: opt.Letter,
			Text:   opt.OptionText,
		})
	}
	return view
}
