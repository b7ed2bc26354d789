// Package chat holds the transcript controller: the ordered message
// list for the active chat and the send path with its optimistic
// append, lazy chat creation, and fallback behavior.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"genie/internal/models"
	"genie/internal/notify"
	"genie/internal/session"

	"go.uber.org/zap"
)

// FallbackReply is appended in place of an assistant reply when the
// send path fails anywhere past the chat-creation fallback. Network
// errors never propagate out of the controller.
const FallbackReply = "I'm having trouble connecting right now. Please try again in a moment."

var (
	// ErrBusy means a send is already in flight. Sends are serialized;
	// a second call is rejected outright rather than queued.
	ErrBusy = errors.New("send already in flight")

	// ErrNoSession means there is no authenticated user to send as.
	ErrNoSession = errors.New("not signed in")
)

// Backend is the slice of the chat API the transcript needs.
type Backend interface {
	GetMessages(ctx context.Context, userID, chatID string) ([]models.Message, error)
	CreateChat(ctx context.Context, userID string) (string, error)
	SendMessage(ctx context.Context, userID, chatID, text string) (string, error)
}

type Controller struct {
	backend Backend
	session *session.Store
	hub     *notify.Hub
	log     *zap.Logger

	mu           sync.Mutex
	messages     []models.Message
	activeChatID string
	busy         bool
	lastLocalID  int64
}

func NewController(backend Backend, sess *session.Store, hub *notify.Hub, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{backend: backend, session: sess, hub: hub, log: log}
}

// Messages returns a copy of the transcript in strict append order.
func (c *Controller) Messages() []models.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// ActiveChatID returns the chat the transcript is bound to, or "" when
// none is active yet.
func (c *Controller) ActiveChatID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeChatID
}

func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// SelectChat binds the transcript to chatID and replaces its contents
// with the backend's message list, in the order returned. An empty id
// clears the transcript for a fresh chat. A fetch failure also clears:
// stale messages from another chat must never be shown.
func (c *Controller) SelectChat(ctx context.Context, chatID string) {
	if chatID == "" {
		c.mu.Lock()
		c.activeChatID = ""
		c.messages = nil
		c.mu.Unlock()
		return
	}

	user := c.session.Current()
	if user == nil {
		return
	}

	msgs, err := c.backend.GetMessages(ctx, user.UID, chatID)
	if err != nil {
		c.log.Warn("loading messages failed", zap.String("chat_id", chatID), zap.Error(err))
		msgs = nil
	}

	c.mu.Lock()
	c.activeChatID = chatID
	c.messages = msgs
	c.mu.Unlock()
}

// Send appends text as a user message and asks the backend for a reply.
//
// The user line is appended before any network call so the transcript
// never waits on the round trip. If no chat is active, one is created
// lazily; if creation fails the chat gets a client-local placeholder id
// so sending keeps working. Failures past that point append a fixed
// fallback reply instead of an error. A blank text is ignored.
func (c *Controller) Send(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	user := c.session.Current()
	if user == nil {
		return ErrNoSession
	}

	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return ErrBusy
	}
	c.busy = true
	c.messages = append(c.messages, models.Message{Role: models.RoleUser, Content: text})
	chatID := c.activeChatID
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.busy = false
		c.mu.Unlock()
	}()

	if chatID == "" {
		id, err := c.backend.CreateChat(ctx, user.UID)
		if err != nil {
			id = c.nextLocalID()
			c.log.Warn("chat creation failed, using local id",
				zap.String("chat_id", id), zap.Error(err))
		}
		chatID = id
		c.mu.Lock()
		c.activeChatID = chatID
		c.mu.Unlock()
	}

	reply, err := c.backend.SendMessage(ctx, user.UID, chatID, text)
	if err != nil {
		c.log.Warn("send failed", zap.String("chat_id", chatID), zap.Error(err))
		c.appendAssistant(FallbackReply)
		return nil
	}

	c.appendAssistant(reply)
	if c.hub != nil {
		// Sending can change the chat's title or recency ordering.
		c.hub.Publish()
	}
	return nil
}

func (c *Controller) appendAssistant(content string) {
	c.mu.Lock()
	c.messages = append(c.messages, models.Message{Role: models.RoleAssistant, Content: content})
	c.mu.Unlock()
}

// nextLocalID mints a placeholder chat id from the current time. Two
// fallbacks in the same millisecond still get distinct ids.
func (c *Controller) nextLocalID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now().UnixMilli()
	if now <= c.lastLocalID {
		now = c.lastLocalID + 1
	}
	c.lastLocalID = now
	return fmt.Sprintf("local-%d", now)
}
