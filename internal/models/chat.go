package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Chat message roles as stored and as sent over the wire.
const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "ai"
)

type ChatMessage struct {
	Role      string    `bson:"role" json:"role"` // "user" | "ai"
	Content   string    `bson:"content" json:"content"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// ChatSession groups one visitor conversation. IsUnresolved flags sessions
// where the assistant answered without a knowledge-base match, so the admin
// can turn the question into a new knowledge item.
type ChatSession struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	SessionID string             `bson:"session_id" json:"id"` // uuid v4, server-issued
	ClientIP  string             `bson:"client_ip" json:"client_ip"`

	IsUnresolved bool          `bson:"is_unresolved" json:"is_unresolved"`
	Messages     []ChatMessage `bson:"messages" json:"messages"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
