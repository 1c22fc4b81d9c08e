package quizgen

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	ExistsByMaterial(materialID uuid.UUID) (bool, error)
	CountByMaterial(materialID uuid.UUID) (int64, error)
	ListByMaterial(materialID uuid.UUID) ([]QuizQuestion, error)
	CreateQuestion(q *QuizQuestion) error
	CreateOptions(options []*QuizOption) error
	FindOptionsByQuestion(questionID uuid.UUID) ([]QuizOption, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ExistsByMaterial(materialID uuid.UUID) (bool, error) {
	count, err := r.CountByMaterial(materialID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) CountByMaterial(materialID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&QuizQuestion{}).
		Where("material_id = ?", materialID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *repository) ListByMaterial(materialID uuid.UUID) ([]QuizQuestion, error) {
	var questions []QuizQuestion
	if err := r.db.
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("letter ASC")
		}).
		Where("material_id = ?", materialID).
		Order("question_number ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *repository) CreateQuestion(q *QuizQuestion) error {
	return r.db.Create(q).Error
}

func (r *repository) CreateOptions(options []*QuizOption) error {
	if len(options) == 0 {
		return nil
	}
	return r.db.Create(&options).Error
}

func (r *repository) FindOptionsByQuestion(questionID uuid.UUID) ([]QuizOption, error) {
	var options []QuizOption
	if err := r.db.
		Where("question_id = ?", questionID).
		Order("letter ASC").
		Find(&options).Error; err != nil {
		return nil, err
	}
	return options, nil
}
