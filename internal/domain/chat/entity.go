package chat

import (
	"time"

	"github.com/google/uuid"
)

// Message represents the chat_messages table. One row per turn: a user
// prompt carries the owning account id, an assistant reply carries none.
// Seq is assigned by the database and makes conversation order
// reconstructable without relying on storage write order.
type Message struct {
	Seq       int64      `gorm:"primaryKey;autoIncrement"`
	ID        uuid.UUID  `gorm:"type:uuid;uniqueIndex"`
	AccountID *uuid.UUID `gorm:"type:uuid;index"`
	Text      string
	CreatedAt time.Time
}

func (Message) TableName() string {
	return "chat_messages"
}
