package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"

	"carrego/internal/domain"
	"carrego/internal/logging"
)

// Client is the HTTP adapter for the carrego backend. It holds a mutable
// bearer token slot; requests attach "Authorization: Bearer <token>" while
// the slot is non-empty. One attempt per call: no retry, no circuit breaking,
// no client-side deadline beyond the caller's context.
type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// NewClient creates a Client for the given base URL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// SetAuthToken replaces the bearer token slot. An empty token detaches
// authentication from subsequent requests.
func (c *Client) SetAuthToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) authToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// envelope is the backend's response wrapper {data: T, message?: string}
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Code    int             `json:"code"`
}

// Get issues a GET request and decodes the envelope's data into out
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with a JSON body
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Patch issues a PATCH request with a JSON body
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

// Delete issues a DELETE request
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// Upload sends a document or image as multipart form data to /storage-upload
// and returns the storage URL from the response envelope.
func (c *Client) Upload(ctx context.Context, filename string, content io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to create multipart field: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("failed to buffer upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finish multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/storage-upload", &buf)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var uploaded struct {
		URL string `json:"url"`
	}
	if err := c.send(req, &uploaded); err != nil {
		return "", err
	}
	return uploaded.URL, nil
}

// send executes the request and normalizes the outcome: a non-2xx response
// becomes an *APIError with code/message from the body, a transport failure
// becomes {0, "Network error"}.
func (c *Client) send(req *http.Request, out any) error {
	requestID := uuid.New().String()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if token := c.authToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	logging.Logger.Debug("API request",
		"request_id", requestID,
		"method", req.Method,
		"path", req.URL.Path)

	resp, err := c.http.Do(req)
	if err != nil {
		logging.Logger.Warn("API transport failure",
			"request_id", requestID,
			"error", err)
		return domain.NewNetworkError()
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		logging.Logger.Warn("API response read failure",
			"request_id", requestID,
			"error", err)
		return domain.NewNetworkError()
	}

	logging.Logger.Debug("API response",
		"request_id", requestID,
		"status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return normalizeServerError(resp.StatusCode, raw)
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &domain.APIError{Code: resp.StatusCode, Message: "invalid response body"}
	}
	data := env.Data
	if len(data) == 0 {
		// Some endpoints respond without the envelope
		data = raw
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &domain.APIError{Code: resp.StatusCode, Message: "invalid response body"}
	}
	return nil
}

// normalizeServerError maps a non-2xx response to the error taxonomy: code
// and message come from the body when present, the HTTP status otherwise.
func normalizeServerError(status int, raw []byte) *domain.APIError {
	apiErr := &domain.APIError{Code: status, Message: http.StatusText(status)}

	var body struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Code != 0 {
			apiErr.Code = body.Code
		}
		if body.Message != "" {
			apiErr.Message = body.Message
		}
	}
	return apiErr
}
