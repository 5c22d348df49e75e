package services

import (
	"fmt"
	"strings"

	"dailyquiz/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

type CreateQuestionRequest struct {
	Text          string   `json:"text" binding:"required"`
	Options       []string `json:"options" binding:"required,min=2"`
	CorrectIndex  *int     `json:"correctIndex"`
	CorrectAnswer string   `json:"correctAnswer"` // letter form A-D
	Tags          []string `json:"tags"`
}

// LetterToIndex maps the letter form of an answer (A-D, case insensitive) to
// its zero-based option index.
func LetterToIndex(letter string) (int, bool) {
	switch strings.ToUpper(strings.TrimSpace(letter)) {
	case "A":
		return 0, true
	case "B":
		return 1, true
	case "C":
		return 2, true
	case "D":
		return 3, true
	}
	return 0, false
}

// IndexToLetter is the reverse mapping; indices past D come back empty.
func IndexToLetter(index int) string {
	if index < 0 || index > 3 {
		return ""
	}
	return string(rune('A' + index))
}

func (s *QuestionService) Create(req *CreateQuestionRequest) (*models.Question, error) {
	idx := -1
	switch {
	case req.CorrectIndex != nil:
		idx = *req.CorrectIndex
	case req.CorrectAnswer != "":
		if i, ok := LetterToIndex(req.CorrectAnswer); ok {
			idx = i
		}
	}
	if idx < 0 || idx >= len(req.Options) {
		return nil, fmt.Errorf("%w: missing or invalid correct answer", ErrInvalidInput)
	}

	question, err := s.createQuestion(req.Text, req.Options, idx, req.Tags)
	if err != nil {
		return nil, err
	}
	return s.GetByID(question.ID)
}

func (s *QuestionService) createQuestion(text string, options []string, correctIndex int, tags []string) (*models.Question, error) {
	question := models.Question{
		Text:         text,
		CorrectIndex: correctIndex,
		Tags:         strings.Join(tags, ","),
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&question).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	for i, optText := range options {
		option := models.Option{
			QuestionID: question.ID,
			Text:       optText,
			Position:   i,
		}
		if err := tx.Create(&option).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &question, nil
}

func (s *QuestionService) GetByID(id uint) (*models.Question, error) {
	var question models.Question
	err := s.db.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("options.position")
	}).First(&question, id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// List returns every question, newest first, options in position order.
func (s *QuestionService) List() ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Preload("Options", func(db *gorm.DB) *gorm.DB {
		return db.Order("options.position")
	}).Order("created_at DESC").Find(&questions).Error
	return questions, err
}

// Delete removes a question by id. Deleting a missing question is not an
// error.
func (s *QuestionService) Delete(id uint) error {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Where("question_id = ?", id).Delete(&models.Option{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&models.Question{}, id).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

// ImportQuestionRecord is one record of a bulk import. Exported data sets have
// carried the correct answer under three different shapes over time: a numeric
// index, a letter under "correct", or a letter under "answer". The shapes are
// reconciled here, once, so stored questions always have a plain CorrectIndex.
type ImportQuestionRecord struct {
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex *int     `json:"correctIndex"`
	Correct      string   `json:"correct"`
	Answer       string   `json:"answer"`
	Tags         []string `json:"tags"`
}

// NormalizeCorrectIndex resolves the correct option index of an import record.
// Priority: numeric index field, then "correct", then "answer".
func NormalizeCorrectIndex(rec *ImportQuestionRecord) (int, error) {
	idx := -1
	switch {
	case rec.CorrectIndex != nil:
		idx = *rec.CorrectIndex
	case rec.Correct != "":
		if i, ok := LetterToIndex(rec.Correct); ok {
			idx = i
		}
	case rec.Answer != "":
		if i, ok := LetterToIndex(rec.Answer); ok {
			idx = i
		}
	}
	if idx < 0 || idx >= len(rec.Options) {
		return 0, fmt.Errorf("%w: no usable correct answer", ErrInvalidInput)
	}
	return idx, nil
}

// Import persists a batch of question records, skipping the ones whose text,
// options or correct answer cannot be resolved. Returns the created questions
// and the number of skipped records.
func (s *QuestionService) Import(records []ImportQuestionRecord) ([]models.Question, int, error) {
	created := make([]models.Question, 0, len(records))
	skipped := 0

	for i := range records {
		rec := &records[i]
		if rec.Text == "" || len(rec.Options) < 2 {
			skipped++
			continue
		}
		idx, err := NormalizeCorrectIndex(rec)
		if err != nil {
			skipped++
			continue
		}
		question, err := s.createQuestion(rec.Text, rec.Options, idx, rec.Tags)
		if err != nil {
			return nil, 0, err
		}
		created = append(created, *question)
	}

	return created, skipped, nil
}
