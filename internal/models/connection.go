// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// ConnectionRequestStatus represents the lifecycle state of a connection request.
type ConnectionRequestStatus string

const (
	// ConnectionRequestPending indicates the request awaits a decision.
	ConnectionRequestPending ConnectionRequestStatus = "pending"
	// ConnectionRequestAccepted indicates the request was accepted. Terminal.
	ConnectionRequestAccepted ConnectionRequestStatus = "accepted"
	// ConnectionRequestRejected indicates the request was rejected. Terminal.
	ConnectionRequestRejected ConnectionRequestStatus = "rejected"
)

// ConnectionRequest is a directed proposal for a connection between two users.
// Accepting it materializes Connection edges in both directions; the request
// row itself is kept with its status flipped.
type ConnectionRequest struct {
	ID         uint                    `gorm:"primaryKey" json:"id"`
	SenderID   uint                    `gorm:"not null;index" json:"sender_id"`
	ReceiverID uint                    `gorm:"not null;index" json:"receiver_id"`
	Status     ConnectionRequestStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	CreatedAt  time.Time               `json:"created_at"`

	// Relationships
	Sender   User `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"sender,omitempty"`
	Receiver User `gorm:"foreignKey:ReceiverID;constraint:OnDelete:CASCADE" json:"receiver,omitempty"`
}

// TableName specifies the table name for GORM
func (ConnectionRequest) TableName() string {
	return "connection_requests"
}

// Connection is one directed row of the symmetric connection edge. Accepting a
// request writes a pair of rows, (A,B) and (B,A), so reads never have to match
// both column orders.
type Connection struct {
	UserID    uint      `gorm:"primaryKey" json:"user_id"`
	PeerID    uint      `gorm:"primaryKey" json:"peer_id"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (Connection) TableName() string {
	return "connections"
}
