package services

import (
	"errors"
	"fmt"
	"time"

	"dailyquiz/models"

	"gorm.io/gorm"
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

type CreateQuizRequest struct {
	ClassID     *uint  `json:"classId"`
	ClassName   string `json:"className"`
	QuestionIDs []uint `json:"questionIds" binding:"required,min=1"`
	Date        string `json:"date" binding:"required"`      // YYYY-MM-DD
	StartTime   string `json:"startTime" binding:"required"` // HH:mm
	EndTime     string `json:"endTime" binding:"required"`   // HH:mm
}

// toScheduledAt combines the date and start time into a local datetime.
// Malformed input falls back to now, matching the lenient scheduling the
// dashboards rely on.
func toScheduledAt(date, startTime string) time.Time {
	t, err := time.ParseInLocation("2006-01-02T15:04", date+"T"+startTime, time.Local)
	if err != nil {
		return time.Now()
	}
	return t
}

func (s *QuizService) Create(req *CreateQuizRequest) (*models.Quiz, error) {
	if req.ClassID == nil && req.ClassName == "" {
		return nil, fmt.Errorf("%w: classId or className required", ErrInvalidInput)
	}

	classID := uint(0)
	if req.ClassID != nil {
		classID = *req.ClassID
	} else {
		cls, err := findOrCreateClass(s.db, req.ClassName)
		if err != nil {
			return nil, err
		}
		classID = cls.ID
	}

	// Every referenced question must exist.
	var count int64
	if err := s.db.Model(&models.Question{}).Where("id IN ?", req.QuestionIDs).Count(&count).Error; err != nil {
		return nil, err
	}
	if count != int64(len(req.QuestionIDs)) {
		return nil, fmt.Errorf("%w: some question ids are invalid", ErrInvalidInput)
	}

	quiz := models.Quiz{
		ClassID:     classID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		ScheduledAt: toScheduledAt(req.Date, req.StartTime),
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&quiz).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	for i, qid := range req.QuestionIDs {
		link := models.QuizQuestion{
			QuizID:     quiz.ID,
			QuestionID: qid,
			Position:   i,
		}
		if err := tx.Create(&link).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return s.GetByID(quiz.ID)
}

func (s *QuizService) GetByID(quizID uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := s.db.Preload("Class").
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_questions.position")
		}).
		Preload("Questions.Question").
		Preload("Questions.Question.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.position")
		}).
		First(&quiz, quizID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &quiz, nil
}

// List returns every quiz with class and questions populated, for the admin
// dashboard.
func (s *QuizService) List() ([]models.Quiz, error) {
	var quizzes []models.Quiz
	err := s.db.Preload("Class").
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_questions.position")
		}).
		Preload("Questions.Question").
		Preload("Questions.Question.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.position")
		}).
		Order("created_at DESC").
		Find(&quizzes).Error
	return quizzes, err
}

// StudentQuiz is the reduced quiz shape served to students: question texts
// and options, correct indices withheld.
type StudentQuiz struct {
	ID          uint                  `json:"id"`
	ScheduledAt time.Time             `json:"scheduledAt"`
	Date        string                `json:"date"`
	StartTime   string                `json:"startTime"`
	EndTime     string                `json:"endTime"`
	Questions   []StudentQuizQuestion `json:"questions"`
}

type StudentQuizQuestion struct {
	ID      uint     `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
}

// StudentQuizzes returns up to 3 most recent quizzes dated today or earlier
// for the caller's class. Students without a class get an empty list.
func (s *QuizService) StudentQuizzes(studentID uint) ([]StudentQuiz, error) {
	var student models.User
	if err := s.db.First(&student, studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if student.ClassID == nil {
		return []StudentQuiz{}, nil
	}

	today := time.Now().Format("2006-01-02")
	var quizzes []models.Quiz
	err := s.db.Where("class_id = ? AND date <= ?", *student.ClassID, today).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("quiz_questions.position")
		}).
		Preload("Questions.Question").
		Preload("Questions.Question.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.position")
		}).
		Order("date DESC").
		Order("created_at DESC").
		Limit(3).
		Find(&quizzes).Error
	if err != nil {
		return nil, err
	}

	shaped := make([]StudentQuiz, 0, len(quizzes))
	for _, quiz := range quizzes {
		sq := StudentQuiz{
			ID:          quiz.ID,
			ScheduledAt: quiz.ScheduledAt,
			Date:        quiz.Date,
			StartTime:   quiz.StartTime,
			EndTime:     quiz.EndTime,
			Questions:   make([]StudentQuizQuestion, 0, len(quiz.Questions)),
		}
		for _, link := range quiz.Questions {
			sq.Questions = append(sq.Questions, StudentQuizQuestion{
				ID:      link.Question.ID,
				Text:    link.Question.Text,
				Options: link.Question.OptionTexts(),
			})
		}
		shaped = append(shaped, sq)
	}
	return shaped, nil
}

type SubmitAttemptRequest struct {
	QuizID  uint          `json:"quizId" binding:"required"`
	Answers []AnswerInput `json:"answers" binding:"required,min=1"`
}

type AnswerInput struct {
	QuestionID     uint `json:"questionId" binding:"required"`
	SelectedOption int  `json:"selectedOption" binding:"gte=0"`
}

type AnswerResult struct {
	QuestionID    uint   `json:"questionId"`
	QuestionText  string `json:"questionText"`
	StudentAnswer string `json:"studentAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	IsCorrect     bool   `json:"isCorrect"`
}

type AttemptResult struct {
	AttemptID uint           `json:"attemptId"`
	Score     int            `json:"score"`
	Results   []AnswerResult `json:"detailedResults"`
}

// gradeAnswers scores a submission against the quiz's questions. An answer
// referencing a question id outside the quiz grades incorrect, never errors.
func gradeAnswers(questions []models.Question, answers []AnswerInput) (int, []AnswerResult) {
	correctByID := make(map[uint]int, len(questions))
	textByID := make(map[uint]string, len(questions))
	for _, q := range questions {
		correctByID[q.ID] = q.CorrectIndex
		textByID[q.ID] = q.Text
	}

	score := 0
	results := make([]AnswerResult, 0, len(answers))
	for i, a := range answers {
		correctIndex, known := correctByID[a.QuestionID]
		isCorrect := known && a.SelectedOption == correctIndex

		if isCorrect {
			score++
		}

		text := textByID[a.QuestionID]
		if text == "" {
			text = fmt.Sprintf("Question %d", i+1)
		}
		correctLetter := ""
		if known {
			correctLetter = IndexToLetter(correctIndex)
		}
		results = append(results, AnswerResult{
			QuestionID:    a.QuestionID,
			QuestionText:  text,
			StudentAnswer: IndexToLetter(a.SelectedOption),
			CorrectAnswer: correctLetter,
			IsCorrect:     isCorrect,
		})
	}
	return score, results
}

// SubmitAttempt grades the answers against the quiz and persists one new
// attempt. Prior attempts for the same quiz and student are left alone.
func (s *QuizService) SubmitAttempt(studentID uint, req *SubmitAttemptRequest) (*AttemptResult, error) {
	quiz, err := s.GetByID(req.QuizID)
	if err != nil {
		return nil, err
	}

	questions := make([]models.Question, 0, len(quiz.Questions))
	for _, link := range quiz.Questions {
		questions = append(questions, link.Question)
	}

	score, results := gradeAnswers(questions, req.Answers)

	attempt := models.Attempt{
		QuizID:    quiz.ID,
		StudentID: studentID,
		Score:     score,
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Create(&attempt).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	for i, a := range req.Answers {
		answer := models.AttemptAnswer{
			AttemptID:      attempt.ID,
			QuestionID:     a.QuestionID,
			SelectedOption: a.SelectedOption,
			IsCorrect:      results[i].IsCorrect,
			Position:       i,
		}
		if err := tx.Create(&answer).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &AttemptResult{
		AttemptID: attempt.ID,
		Score:     score,
		Results:   results,
	}, nil
}
