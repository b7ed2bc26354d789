// Package sidebar maintains the cached chat list and its mutations.
// The cache is advisory: every mutation reconciles with a wholesale
// reload from the backend, and a failed load empties the cache rather
// than keeping stale entries.
package sidebar

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"genie/internal/models"
	"genie/internal/session"

	"go.uber.org/zap"
)

// Backend is the slice of the chat API the sidebar needs.
type Backend interface {
	ListChats(ctx context.Context, userID string) ([]models.Chat, error)
	CreateChat(ctx context.Context, userID string) (string, error)
	RenameChat(ctx context.Context, userID, chatID, title string) error
	DeleteChat(ctx context.Context, userID, chatID string) error
}

type Controller struct {
	backend Backend
	session *session.Store
	log     *zap.Logger

	mu          sync.Mutex
	chats       []models.Chat
	loading     bool
	lastLocalID int64
}

func NewController(backend Backend, sess *session.Store, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{backend: backend, session: sess, log: log}
}

// Chats returns a copy of the cached list in backend order.
func (c *Controller) Chats() []models.Chat {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Chat, len(c.chats))
	copy(out, c.chats)
	return out
}

func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// LoadChats replaces the cache wholesale with the backend's list. On
// failure the cache is emptied.
func (c *Controller) LoadChats(ctx context.Context) {
	user := c.session.Current()
	if user == nil {
		return
	}

	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	chats, err := c.backend.ListChats(ctx, user.UID)
	if err != nil {
		c.log.Warn("loading chats failed", zap.Error(err))
		chats = nil
	}

	c.mu.Lock()
	c.chats = chats
	c.loading = false
	c.mu.Unlock()
}

// CreateChat asks the backend for a new chat and returns its id. When
// the backend is unreachable a local-only placeholder is prepended so
// the UI keeps working; the placeholder never reaches the server.
func (c *Controller) CreateChat(ctx context.Context) string {
	user := c.session.Current()
	if user == nil {
		return ""
	}

	id, err := c.backend.CreateChat(ctx, user.UID)
	if err != nil {
		c.log.Warn("chat creation failed, synthesizing local chat", zap.Error(err))
		now := time.Now()
		local := models.Chat{
			ID:        c.nextLocalID(),
			Title:     "New Chat",
			CreatedAt: now,
			UpdatedAt: now,
		}
		c.mu.Lock()
		c.chats = append([]models.Chat{local}, c.chats...)
		c.mu.Unlock()
		return local.ID
	}

	c.LoadChats(ctx)
	return id
}

// RenameChat applies the new title locally first, persists it, then
// reloads to reconcile with the backend in one swap. A title that is
// blank after trimming leaves the chat untouched.
func (c *Controller) RenameChat(ctx context.Context, chatID, title string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return
	}

	user := c.session.Current()
	if user == nil {
		return
	}

	c.mu.Lock()
	for i := range c.chats {
		if c.chats[i].ID == chatID {
			c.chats[i].Title = title
			break
		}
	}
	c.mu.Unlock()

	if err := c.backend.RenameChat(ctx, user.UID, chatID, title); err != nil {
		c.log.Warn("rename failed", zap.String("chat_id", chatID), zap.Error(err))
		return
	}
	c.LoadChats(ctx)
}

// DeleteChat removes the chat and reloads the list. The caller decides
// whether the active selection needs clearing.
func (c *Controller) DeleteChat(ctx context.Context, chatID string) {
	user := c.session.Current()
	if user == nil {
		return
	}

	if err := c.backend.DeleteChat(ctx, user.UID, chatID); err != nil {
		c.log.Warn("delete failed", zap.String("chat_id", chatID), zap.Error(err))
	}
	c.LoadChats(ctx)
}

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
