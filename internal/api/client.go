// Package api is the HTTP client for the chat backend. The backend is
// the source of truth for chats and messages; every call here either
// succeeds or returns a single uniform error — callers degrade, they
// never branch on status codes.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"genie/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Client struct {
	baseURL string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

type chatListResponse struct {
	Chats []models.Chat `json:"chats"`
}

type messageListResponse struct {
	Messages []models.Message `json:"messages"`
}

type newChatRequest struct {
	UserID string `json:"user_id"`
}

type newChatResponse struct {
	ChatID string `json:"chat_id"`
}

type sendMessageRequest struct {
	UserID  string `json:"user_id"`
	ChatID  string `json:"chat_id"`
	Message string `json:"message"`
}

type sendMessageResponse struct {
	Reply string `json:"reply"`
}

type renameChatRequest struct {
	UserID string `json:"user_id"`
	ChatID string `json:"chat_id"`
	Title  string `json:"title"`
}

// ListChats fetches the full chat list for a user, newest first as the
// backend orders it.
func (c *Client) ListChats(ctx context.Context, userID string) ([]models.Chat, error) {
	var out chatListResponse
	path := fmt.Sprintf("/chat/chats/%s", url.PathEscape(userID))
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Chats, nil
}

// GetMessages fetches the full transcript of one chat in backend order.
func (c *Client) GetMessages(ctx context.Context, userID, chatID string) ([]models.Message, error) {
	var out messageListResponse
	path := fmt.Sprintf("/chat/messages/%s/%s", url.PathEscape(userID), url.PathEscape(chatID))
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Messages, nil
}

// CreateChat asks the backend for a fresh chat and returns its id.
func (c *Client) CreateChat(ctx context.Context, userID string) (string, error) {
	var out newChatResponse
	if err := c.do(ctx, http.MethodPost, "/chat/new", newChatRequest{UserID: userID}, &out); err != nil {
		return "", err
	}
	return out.ChatID, nil
}

// SendMessage posts a user message and returns the assistant reply.
func (c *Client) SendMessage(ctx context.Context, userID, chatID, text string) (string, error) {
	var out sendMessageResponse
	req := sendMessageRequest{UserID: userID, ChatID: chatID, Message: text}
	if err := c.do(ctx, http.MethodPost, "/chat/message", req, &out); err != nil {
		return "", err
	}
	return out.Reply, nil
}

func (c *Client) RenameChat(ctx context.Context, userID, chatID, title string) error {
	req := renameChatRequest{UserID: userID, ChatID: chatID, Title: title}
	return c.do(ctx, http.MethodPut, "/chat/title", req, nil)
}

func (c *Client) DeleteChat(ctx context.Context, userID, chatID string) error {
	path := fmt.Sprintf("/chat/%s/%s", url.PathEscape(userID), url.PathEscape(chatID))
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("chat api request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return fmt.Errorf("chat api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("chat api bad status",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", requestID),
			zap.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("chat api: %s %s: status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("chat api: %s %s: decode: %w", method, path, err)
		}
	}
	return nil
}
