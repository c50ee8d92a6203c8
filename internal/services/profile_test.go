package services

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carrego/internal/adapters/api"
	"carrego/internal/domain"
)

func TestCompleteValidatesBeforeSubmitting(t *testing.T) {
	var hit bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))
	defer server.Close()

	client := api.NewClient(server.URL)
	svc := NewProfileService(client, client)

	_, err := svc.Complete(context.Background(), domain.ProfileDraft{FirstName: "Ana"})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.False(t, hit, "an incomplete draft never reaches the network")
}

func TestCompleteSubmitsFinalizedDraft(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/user/complete-profile", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.Contains(t, string(body), `"idDocumentUrl":"https://cdn.example.com/id.png"`)
		w.Write([]byte(`{"data": {"userId": "u1", "firstName": "Ana", "lastName": "Costa"}}`))
	}))
	defer server.Close()

	client := api.NewClient(server.URL)
	svc := NewProfileService(client, client)

	profile, err := svc.Complete(context.Background(), domain.ProfileDraft{
		FirstName:     "Ana",
		LastName:      "Costa",
		DateOfBirth:   "1990-04-21",
		IDType:        "passport",
		IDNumber:      "X123",
		IDDocumentURL: "https://cdn.example.com/id.png",
		BankName:      "First Bank",
		AccountNumber: "0001",
		AccountName:   "Ana Costa",
	})

	require.NoError(t, err)
	assert.Equal(t, "u1", profile.UserID)
}

func TestUploadDocumentReadsLocalFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "passport.png", header.Filename)
		content, _ := io.ReadAll(file)
		assert.Equal(t, "image bytes", string(content))
		w.Write([]byte(`{"data": {"url": "https://cdn.example.com/passport.png"}}`))
	}))
	defer server.Close()

	path := filepath.Join(t.TempDir(), "passport.png")
	require.NoError(t, os.WriteFile(path, []byte("image bytes"), 0644))

	client := api.NewClient(server.URL)
	svc := NewProfileService(client, client)

	url, err := svc.UploadDocument(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/passport.png", url)
}

func TestUploadDocumentMissingFile(t *testing.T) {
	client := api.NewClient("http://127.0.0.1:0")
	svc := NewProfileService(client, client)

	_, err := svc.UploadDocument(context.Background(), filepath.Join(t.TempDir(), "missing.png"))

	require.Error(t, err)
}
