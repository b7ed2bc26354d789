package auth

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
	return NewClient(srv.URL, "test-key", 5*time.Second, nil)
}

func TestSignIn(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts:signInWithPassword", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "cook@example.com", body["email"])

		w.Write([]byte(`{"localId":"u1","email":"cook@example.com","displayName":"Cook","idToken":"tok"}`))
	})

	u, err := c.SignIn(context.Background(), "cook@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.UID)
	assert.Equal(t, "Cook", u.DisplayName)
}

func TestSignInInvalidCredentials(t *testing.T) {
	for _, code := range []string{"EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS"} {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"message":"` + code + `"}}`))
		})

		_, err := c.SignIn(context.Background(), "a@b.com", "wrong")
		var authErr *Error
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, "Invalid email or password.", authErr.Message)
	}
}

func TestSignUpMapsProviderCodes(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"EMAIL_EXISTS", "An account with this email already exists."},
		{"WEAK_PASSWORD : Password should be at least 6 characters", "Password should be at least 6 characters."},
		{"SOMETHING_ELSE", "Sign-in failed. Please try again."},
	}
	for _, tt := range tests {
		c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"message":"` + tt.code + `"}}`))
		})

		_, err := c.SignUp(context.Background(), "a@b.com", "pw", "Name")
		var authErr *Error
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, tt.want, authErr.Message)
	}
}

func TestSignUpSetsDisplayName(t *testing.T) {
	var paths []string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/accounts:signUp":
			w.Write([]byte(`{"localId":"u2","email":"new@example.com","idToken":"tok"}`))
		case "/accounts:update":
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "tok", body["idToken"])
			assert.Equal(t, "New Cook", body["displayName"])
			w.Write([]byte(`{"localId":"u2","email":"new@example.com","displayName":"New Cook"}`))
		}
	})

	u, err := c.SignUp(context.Background(), "new@example.com", "secret", "New Cook")
	require.NoError(t, err)
	assert.Equal(t, []string{"/accounts:signUp", "/accounts:update"}, paths)
	assert.Equal(t, "New Cook", u.DisplayName)
}

func TestSendPasswordReset(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/accounts:sendOobCode", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "PASSWORD_RESET", body["requestType"])
		w.Write([]byte(`{}`))
	})

	require.NoError(t, c.SendPasswordReset(context.Background(), "cook@example.com"))
}

func TestUnreachableProviderIsNetworkError(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "k", 200*time.Millisecond, nil)
	_, err := c.SignIn(context.Background(), "a@b.com", "pw")
	var authErr *Error
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "NETWORK", authErr.Code)
}
