package answer

import (
	"time"

	"github.com/google/uuid"
)

// AnswerRecord is the persisted ledger entry for one submitted answer. It is
// append-only: records are never updated or deleted by this subsystem.
type AnswerRecord struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	QuestionID       uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	SelectedOptionID uuid.UUID `gorm:"type:uuid;not null" json:"selected_option_id"`
	IsCorrect        bool      `gorm:"not null" json:"is_correct"`
	AnsweredAt       time.Time `gorm:"autoCreateTime" json:"answered_at"`
}
