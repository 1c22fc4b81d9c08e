package quizgen

import (
	"time"

	"github.com/google/uuid"
)

const (
	QuestionsPerMaterial = 3
	OptionsPerQuestion   = 4
)

// OptionLetters are the labels the generation contract requires, in order.
var OptionLetters = []string{"A", "B", "C", "D"}

type QuizQuestion struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	MaterialID     uuid.UUID    `gorm:"type:uuid;not null;index;uniqueIndex:idx_material_question_number" json:"material_id"`
	TopicID        uuid.UUID    `gorm:"type:uuid;not null;index" json:"topic_id"`
	QuestionNumber int          `gorm:"not null;uniqueIndex:idx_material_question_number" json:"question_number"`
	QuestionText   string       `gorm:"type:text;not null" json:"question_text"`
	CreatedAt      time.Time    `gorm:"autoCreateTime" json:"created_at"`
	Options        []QuizOption `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
}

type QuizOption struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	Letter     string    `gorm:"type:varchar(1);not null" json:"letter"`
	OptionText string    `gorm:"type:text;not null" json:"option_text"`
	IsCorrect  bool      `gorm:"not null;default:false" json:"is_correct"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// GeneratedQuestion is the shape the gateway is asked to return. It is
// untrusted input until it passes ValidateGeneratedQuestions.
type GeneratedQuestion struct {
	Question   string            `json:"question"`
	Difficulty string            `json:"difficulty"`
	Options    []GeneratedOption `json:"options"`
}

type GeneratedOption struct {
	Letter    string `json:"letter"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
}
