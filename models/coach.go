package models

import "time"

type CoachSender string

const (
	SenderUser CoachSender = "user"
	SenderAI   CoachSender = "ai"
)

// CoachMessage is one entry of the advisory chat transcript. The transcript
// is display state only and is never persisted.
type CoachMessage struct {
	ID        string      `json:"id"`
	Text      string      `json:"text"`
	Sender    CoachSender `json:"sender"`
	Timestamp time.Time   `json:"timestamp"`
}
