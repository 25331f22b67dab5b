package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_Success(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.request(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeJSON[map[string]any](t, rec)
	assert.NotEmpty(t, body["token"])

	user, ok := body["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, "alice@example.com", user["email"])
	// The password hash never leaves the server.
	assert.NotContains(t, user, "password")

	// The issued token authenticates immediately.
	me := ts.request(t, http.MethodGet, "/api/thoughts/my", body["token"].(string), nil)
	assert.Equal(t, http.StatusOK, me.Code)
}

func TestRegister_DuplicateEmailAndUsername(t *testing.T) {
	ts := newTestServer(t)
	ts.registerUser(t, "alice")

	rec := ts.request(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": "different",
		"email":    "alice@example.com",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email already in use", decodeJSON[map[string]any](t, rec)["message"])

	rec = ts.request(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": "alice",
		"email":    "other@example.com",
		"password": "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Username already taken", decodeJSON[map[string]any](t, rec)["message"])
}

func TestRegister_ValidationMessages(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name        string
		body        map[string]any
		wantMessage string
	}{
		{
			name:        "short username",
			body:        map[string]any{"username": "ab", "email": "a@example.com", "password": "secret1"},
			wantMessage: "Username must be at least 3 characters",
		},
		{
			name:        "bad email",
			body:        map[string]any{"username": "alice", "email": "not-an-email", "password": "secret1"},
			wantMessage: "Invalid email address",
		},
		{
			name:        "short password",
			body:        map[string]any{"username": "alice", "email": "a@example.com", "password": "short"},
			wantMessage: "Password must be at least 6 characters",
		},
		{
			name:        "missing username",
			body:        map[string]any{"email": "a@example.com", "password": "secret1"},
			wantMessage: "Username is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.request(t, http.MethodPost, "/api/auth/register", "", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeJSON[map[string]any](t, rec)["message"])
		})
	}
}

func TestLogin_SuccessAndGenericFailure(t *testing.T) {
	ts := newTestServer(t)
	ts.registerUser(t, "alice")

	rec := ts.request(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "alice@example.com",
		"password": "secret1",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, decodeJSON[map[string]any](t, rec)["token"])

	// Wrong password and unknown account are indistinguishable.
	wrongPassword := ts.request(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})
	noSuchUser := ts.request(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "nobody@example.com",
		"password": "secret1",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, noSuchUser.Code)
	assert.Equal(t,
		decodeJSON[map[string]any](t, wrongPassword)["message"],
		decodeJSON[map[string]any](t, noSuchUser)["message"])
	assert.Equal(t, "Invalid email or password", decodeJSON[map[string]any](t, wrongPassword)["message"])
}

func TestUpdateProfile(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.registerUser(t, "alice")

	rec := ts.request(t, http.MethodPatch, "/api/profile", token, map[string]any{
		"displayName": "Alice A.",
		"bio":         "thinking out loud",
		"avatarUrl":   "https://example.com/alice.png",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decodeJSON[map[string]any](t, rec)
	assert.Equal(t, "Alice A.", body["displayName"])
	assert.Equal(t, "thinking out loud", body["bio"])
	assert.NotContains(t, body, "password")

	// A bad avatar URL is rejected before anything persists.
	bad := ts.request(t, http.MethodPatch, "/api/profile", token, map[string]any{
		"avatarUrl": "not-a-url",
	})
	assert.Equal(t, http.StatusBadRequest, bad.Code)

	// No token, no profile update.
	anon := ts.request(t, http.MethodPatch, "/api/profile", "", map[string]any{"bio": "x"})
	assert.Equal(t, http.StatusUnauthorized, anon.Code)
}
