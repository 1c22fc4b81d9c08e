package answer

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(record *AnswerRecord) error
	FindAllByUser(userID uuid.UUID) ([]AnswerRecord, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(record *AnswerRecord) error {
	return r.db.Create(record).Error
}

func (r *repository) FindAllByUser(userID uuid.UUID) ([]AnswerRecord, error) {
	var records []AnswerRecord
	if err := r.db.
		Where("user_id = ?", userID).
		Order("answered_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
