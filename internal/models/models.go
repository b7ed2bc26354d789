package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Role is the author of a transcript message. Only the two values below
// are valid; anything else is rejected when decoding backend responses.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

func (r *Role) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch Role(s) {
	case RoleUser, RoleAssistant:
		*r = Role(s)
		return nil
	default:
		return fmt.Errorf("unknown message role %q", s)
	}
}

// Message is one transcript line. Messages are immutable once created
// and only ever appended to a chat.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Chat is the sidebar's view of a conversation. The backend owns the
// record; the client holds an eventually consistent copy.
type Chat struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// User is the authenticated identity minted by the identity provider.
type User struct {
	UID         string
	DisplayName string
	Email       string
	PhotoURL    string
}
