package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, nil)
}

func TestListChats(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/chat/chats/u1", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"chats":[{"id":"c1","title":"Pasta","created_at":"2026-08-28T08:00:00Z","updated_at":"2026-08-28T09:00:00Z"}]}`))
	})

	chats, err := c.ListChats(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, chats, 1)
	assert.Equal(t, "c1", chats[0].ID)
	assert.Equal(t, "Pasta", chats[0].Title)
}

func TestGetMessagesKeepsOrder(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/messages/u1/c1", r.URL.Path)
		w.Write([]byte(`{"messages":[{"role":"user","content":"hi"},{"role":"assistant","content":"hello"}]}`))
	})

	msgs, err := c.GetMessages(context.Background(), "u1", "c1")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "hi", msgs[0].Content)
	assert.Equal(t, "hello", msgs[1].Content)
}

func TestCreateChat(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/new", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "u1", body["user_id"])

		w.Write([]byte(`{"chat_id":"c42"}`))
	})

	id, err := c.CreateChat(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "c42", id)
}

func TestSendMessage(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "c1", body["chat_id"])
		assert.Equal(t, "how do I make dosa?", body["message"])
		w.Write([]byte(`{"reply":"Soak the rice overnight."}`))
	})

	reply, err := c.SendMessage(context.Background(), "u1", "c1", "how do I make dosa?")
	require.NoError(t, err)
	assert.Equal(t, "Soak the rice overnight.", reply)
}

func TestRenameAndDelete(t *testing.T) {
	var gotMethod, gotPath string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.WriteHeader(http.StatusOK)
	})

	require.NoError(t, c.RenameChat(context.Background(), "u1", "c1", "Dosa tips"))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/chat/title", gotPath)

	require.NoError(t, c.DeleteChat(context.Background(), "u1", "c1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/chat/u1/c1", gotPath)
}

func TestNonTwoHundredIsUniformFailure(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusInternalServerError, http.StatusBadGateway} {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})
		_, err := c.ListChats(context.Background(), "u1")
		require.Error(t, err)

		_, err = c.SendMessage(context.Background(), "u1", "c1", "hi")
		require.Error(t, err)
	}
}

func TestContextCancellation(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := c.ListChats(ctx, "u1")
	require.Error(t, err)
}
