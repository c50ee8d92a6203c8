package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrego/internal/domain"
)

func TestBearerTokenSlot(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"data": {}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	// Unauthenticated: no header at all
	var out map[string]any
	require.NoError(t, client.Get(ctx, "/ping", &out))
	assert.Empty(t, gotAuth)

	client.SetAuthToken("tok-123")
	require.NoError(t, client.Get(ctx, "/ping", &out))
	assert.Equal(t, "Bearer tok-123", gotAuth)

	// Emptying the slot detaches authentication again
	client.SetAuthToken("")
	require.NoError(t, client.Get(ctx, "/ping", &out))
	assert.Empty(t, gotAuth)
}

func TestEnvelopeDecoding(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "enveloped", body: `{"data": {"id": "u1", "email": "ana@example.com"}, "message": "ok"}`},
		{name: "bare body fallback", body: `{"id": "u1", "email": "ana@example.com"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			var user domain.UserSummary
			err := NewClient(server.URL).Get(context.Background(), "/user", &user)

			require.NoError(t, err)
			assert.Equal(t, "u1", user.ID)
			assert.Equal(t, "ana@example.com", user.Email)
		})
	}
}

func TestServerErrorNormalization(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantCode    int
		wantMessage string
	}{
		{
			name:        "message from body",
			status:      http.StatusUnauthorized,
			body:        `{"message": "Invalid credentials"}`,
			wantCode:    401,
			wantMessage: "Invalid credentials",
		},
		{
			name:        "code from body overrides status",
			status:      http.StatusBadRequest,
			body:        `{"code": 4009, "message": "Email already registered"}`,
			wantCode:    4009,
			wantMessage: "Email already registered",
		},
		{
			name:        "non-JSON body falls back to status text",
			status:      http.StatusBadGateway,
			body:        `<html>upstream unavailable</html>`,
			wantCode:    502,
			wantMessage: "Bad Gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			err := NewClient(server.URL).Get(context.Background(), "/boom", nil)

			var apiErr *domain.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
			assert.False(t, apiErr.IsNetwork())
		})
	}
}

func TestTransportFailureNormalizesToNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	err := NewClient(server.URL).Get(context.Background(), "/user", nil)

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsNetwork())
	assert.Equal(t, 0, apiErr.Code)
	assert.Equal(t, domain.NetworkErrorMessage, apiErr.Message)
}

func TestRequestIDHeader(t *testing.T) {
	seen := map[string]bool{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		assert.NotEmpty(t, id)
		seen[id] = true
		w.Write([]byte(`{"data": {}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	var out map[string]any
	require.NoError(t, client.Get(context.Background(), "/a", &out))
	require.NoError(t, client.Get(context.Background(), "/b", &out))

	assert.Len(t, seen, 2, "every request carries a fresh id")
}

func TestSignInPostsCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/sign-in", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"email": "ana@example.com", "password": "pw"}`, string(body))
		w.Write([]byte(`{"data": {"user": {"id": "u1", "email": "ana@example.com"}, "token": "tok-123"}}`))
	}))
	defer server.Close()

	session, err := NewClient(server.URL).SignIn(context.Background(), domain.Credentials{
		Email:    "ana@example.com",
		Password: "pw",
	})

	require.NoError(t, err)
	assert.Equal(t, "tok-123", session.Token)
	assert.Equal(t, "u1", session.User.ID)
}

func TestUploadSendsMultipart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/storage-upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "passport.png", header.Filename)

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "fake image bytes", string(content))

		w.Write([]byte(`{"data": {"url": "https://cdn.example.com/passport.png"}}`))
	}))
	defer server.Close()

	url, err := NewClient(server.URL).Upload(context.Background(),
		"passport.png", strings.NewReader("fake image bytes"))

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/passport.png", url)
}
