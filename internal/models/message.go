// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Message represents a direct message between two users. Messages are never
// deleted by this layer.
type Message struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderID   uint      `gorm:"not null;index" json:"sender_id"`
	ReceiverID uint      `gorm:"not null;index" json:"receiver_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Read       bool      `gorm:"default:false" json:"read"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Sender   User `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"sender,omitempty"`
	Receiver User `gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE" json:"receiver,omitempty"`
}

// ConversationSummary is the per-peer rollup returned when listing a user's
// conversations: the peer, the most recent message in either direction, and
// how many messages from that peer are still unread.
type ConversationSummary struct {
	Peer        User     `json:"user"`
	LastMessage *Message `json:"last_message"`
	UnreadCount int64    `json:"unread_count"`
}
