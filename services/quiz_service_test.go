package services

import (
	"testing"
	"time"

	"dailyquiz/models"

	"github.com/stretchr/testify/assert"
)

func twoQuestionQuiz() []models.Question {
	return []models.Question{
		{ID: 10, Text: "What does CPU stand for?", CorrectIndex: 2},
		{ID: 11, Text: "Which keyword declares a constant in Go?", CorrectIndex: 1},
	}
}

func TestGradeAnswersAllCorrect(t *testing.T) {
	questions := twoQuestionQuiz()
	score, results := gradeAnswers(questions, []AnswerInput{
		{QuestionID: 10, SelectedOption: 2},
		{QuestionID: 11, SelectedOption: 1},
	})

	assert.Equal(t, 2, score)
	assert.Len(t, results, 2)
	assert.True(t, results[0].IsCorrect)
	assert.True(t, results[1].IsCorrect)
	assert.Equal(t, "C", results[0].StudentAnswer)
	assert.Equal(t, "C", results[0].CorrectAnswer)
	assert.Equal(t, "What does CPU stand for?", results[0].QuestionText)
}

func TestGradeAnswersWrongSelectionsScoreZero(t *testing.T) {
	questions := twoQuestionQuiz()

	// every non-correct index grades false
	for _, selected := range []int{0, 1, 3} {
		score, results := gradeAnswers(questions, []AnswerInput{
			{QuestionID: 10, SelectedOption: selected},
		})
		assert.Equal(t, 0, score)
		assert.False(t, results[0].IsCorrect)
		assert.Equal(t, "C", results[0].CorrectAnswer)
	}
}

func TestGradeAnswersPartialScore(t *testing.T) {
	questions := twoQuestionQuiz()
	score, results := gradeAnswers(questions, []AnswerInput{
		{QuestionID: 10, SelectedOption: 2},
		{QuestionID: 11, SelectedOption: 3},
	})

	assert.Equal(t, 1, score)
	assert.True(t, results[0].IsCorrect)
	assert.False(t, results[1].IsCorrect)
}

func TestGradeAnswersUnknownQuestionIsIncorrectNotError(t *testing.T) {
	questions := twoQuestionQuiz()
	score, results := gradeAnswers(questions, []AnswerInput{
		{QuestionID: 999, SelectedOption: 0},
		{QuestionID: 11, SelectedOption: 1},
	})

	assert.Equal(t, 1, score)
	assert.False(t, results[0].IsCorrect)
	assert.Empty(t, results[0].CorrectAnswer)
	assert.Equal(t, "Question 1", results[0].QuestionText)
	assert.True(t, results[1].IsCorrect)
}

func TestGradeAnswersScoreEqualsCorrectCount(t *testing.T) {
	questions := twoQuestionQuiz()
	for selected := 0; selected < 4; selected++ {
		score, results := gradeAnswers(questions, []AnswerInput{
			{QuestionID: 10, SelectedOption: selected},
			{QuestionID: 11, SelectedOption: selected},
		})
		want := 0
		for _, r := range results {
			if r.IsCorrect {
				want++
			}
		}
		assert.Equal(t, want, score)
		assert.GreaterOrEqual(t, score, 0)
		assert.LessOrEqual(t, score, 2)
	}
}

func TestToScheduledAt(t *testing.T) {
	at := toScheduledAt("2025-03-10", "09:30")
	want := time.Date(2025, time.March, 10, 9, 30, 0, 0, time.Local)
	assert.Equal(t, want, at)
}

func TestToScheduledAtMalformedFallsBackToNow(t *testing.T) {
	before := time.Now()
	at := toScheduledAt("not-a-date", "99:99")
	after := time.Now()

	assert.False(t, at.Before(before))
	assert.False(t, at.After(after))
}
