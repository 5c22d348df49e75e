package services

import (
	"log"
	"time"

	"github.com/gorilla/websocket"
)

const (
	clockWriteWait = 10 * time.Second
	clockTick      = time.Second
)

// QuizClock streams a server-authoritative countdown for a scheduled quiz
// over a WebSocket, so clients don't have to trust their local clocks
// against the stored end time.
type QuizClock struct {
	quizzes *QuizService
}

func NewQuizClock(quizzes *QuizService) *QuizClock {
	return &QuizClock{quizzes: quizzes}
}

type clockMessage struct {
	Type             string `json:"type"`
	RemainingSeconds int    `json:"remaining_seconds,omitempty"`
	Message          string `json:"message,omitempty"`
}

func writeClockMessage(conn *websocket.Conn, msg clockMessage) error {
	conn.SetWriteDeadline(time.Now().Add(clockWriteWait))
	return conn.WriteJSON(msg)
}

// Stream sends the remaining seconds until the quiz end once per second, then
// a final quiz_end frame. It owns the connection and closes it when done.
func (c *QuizClock) Stream(conn *websocket.Conn, quizID uint) {
	defer conn.Close()

	quiz, err := c.quizzes.GetByID(quizID)
	if err != nil {
		_ = writeClockMessage(conn, clockMessage{Type: "error", Message: "Quiz not found"})
		return
	}
	end := quiz.EndsAt()

	// Drain incoming frames so close handshakes are noticed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(clockTick)
	defer ticker.Stop()

	for {
		remaining := int(time.Until(end).Seconds())
		if remaining <= 0 {
			if err := writeClockMessage(conn, clockMessage{Type: "quiz_end"}); err != nil {
				log.Printf("quiz clock: write failed for quiz %d: %v", quizID, err)
			}
			return
		}
		if err := writeClockMessage(conn, clockMessage{Type: "tick", RemainingSeconds: remaining}); err != nil {
			return
		}

		select {
		case <-ticker.C:
		case <-done:
			return
		}
	}
}
