// Package auth talks to the identity provider's REST API. Credential
// storage, session tokens, and password reset all live on the provider
// side; this client only exchanges credentials for an identity and maps
// provider error codes to messages fit for a blocking alert.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"genie/internal/models"

	"go.uber.org/zap"
)

// Error is an authentication failure with a user-facing message. These
// are surfaced immediately as blocking alerts; there is no retry.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(baseURL, apiKey string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

type accountResponse struct {
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoUrl"`
	IDToken     string `json:"idToken"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SignIn exchanges an email/password pair for the user's identity.
func (c *Client) SignIn(ctx context.Context, email, password string) (*models.User, error) {
	body := map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}
	var out accountResponse
	if err := c.post(ctx, "accounts:signInWithPassword", body, &out); err != nil {
		return nil, err
	}
	return userFromAccount(out), nil
}

// SignUp registers a new account, sets the display name, and returns
// the signed-in identity.
func (c *Client) SignUp(ctx context.Context, email, password, displayName string) (*models.User, error) {
	body := map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}
	var out accountResponse
	if err := c.post(ctx, "accounts:signUp", body, &out); err != nil {
		return nil, err
	}

	if displayName != "" {
		update := map[string]any{
			"idToken":           out.IDToken,
			"displayName":       displayName,
			"returnSecureToken": false,
		}
		var updated accountResponse
		if err := c.post(ctx, "accounts:update", update, &updated); err != nil {
			// The account exists either way; keep the sign-up usable.
			c.log.Warn("display name update failed", zap.Error(err))
		} else {
			out.DisplayName = updated.DisplayName
		}
	}
	return userFromAccount(out), nil
}

// SignInWithIDP exchanges a federated provider token for an identity.
func (c *Client) SignInWithIDP(ctx context.Context, providerID, idToken string) (*models.User, error) {
	body := map[string]any{
		"postBody":            fmt.Sprintf("id_token=%s&providerId=%s", idToken, providerID),
		"requestUri":          "http://localhost",
		"returnSecureToken":   true,
		"returnIdpCredential": true,
	}
	var out accountResponse
	if err := c.post(ctx, "accounts:signInWithIdp", body, &out); err != nil {
		return nil, err
	}
	return userFromAccount(out), nil
}

// SendPasswordReset asks the provider to email a reset link.
func (c *Client) SendPasswordReset(ctx context.Context, email string) error {
	body := map[string]any{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	}
	return c.post(ctx, "accounts:sendOobCode", body, nil)
}

func (c *Client) post(ctx context.Context, endpoint string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}

	reqURL := fmt.Sprintf("%s/%s?key=%s", c.baseURL, endpoint, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("identity provider unreachable", zap.String("endpoint", endpoint), zap.Error(err))
		return &Error{Code: "NETWORK", Message: "Could not reach the sign-in service. Check your connection and try again."}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e errorResponse
		_ = json.NewDecoder(resp.Body).Decode(&e)
		c.log.Warn("identity provider rejected request",
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode),
			zap.String("code", e.Error.Message),
		)
		return mapError(e.Error.Message)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &Error{Code: "DECODE", Message: "Unexpected response from the sign-in service."}
		}
	}
	return nil
}

func mapError(code string) *Error {
	// Codes sometimes arrive with suffixes, e.g. "WEAK_PASSWORD : ...".
	base := code
	if i := strings.IndexAny(base, " :"); i > 0 {
		base = base[:i]
	}
	switch base {
	case "EMAIL_NOT_FOUND", "INVALID_PASSWORD", "INVALID_LOGIN_CREDENTIALS":
		return &Error{Code: base, Message: "Invalid email or password."}
	case "EMAIL_EXISTS":
		return &Error{Code: base, Message: "An account with this email already exists."}
	case "WEAK_PASSWORD":
		return &Error{Code: base, Message: "Password should be at least 6 characters."}
	case "USER_DISABLED":
		return &Error{Code: base, Message: "This account has been disabled."}
	case "TOO_MANY_ATTEMPTS_TRY_LATER":
		return &Error{Code: base, Message: "Too many attempts. Try again later."}
	case "":
		return &Error{Code: "UNKNOWN", Message: "Sign-in failed. Please try again."}
	default:
		return &Error{Code: base, Message: "Sign-in failed. Please try again."}
	}
}

func userFromAccount(a accountResponse) *models.User {
	return &models.User{
		UID:         a.LocalID,
		DisplayName: a.DisplayName,
		Email:       a.Email,
		PhotoURL:    a.PhotoURL,
	}
}
