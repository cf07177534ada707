package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/orensade/Intub/internal/assessment"
)

// HTTPClient calls a remote scoring collaborator over its multipart
// POST /analyze endpoint.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient constructs a client for the collaborator at baseURL.
func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, fmt.Errorf("analyzer base URL is required")
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &HTTPClient{
		baseURL:    trimmed,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Analyze posts the image set as multipart form data and decodes the
// collaborator's JSON result. Transport failures and non-2xx responses come
// back as *NetworkError.
func (c *HTTPClient) Analyze(ctx context.Context, images []Image) (assessment.Result, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, img := range images {
		part, err := writer.CreateFormFile("images", img.Filename)
		if err != nil {
			return assessment.Result{}, fmt.Errorf("build multipart body: %w", err)
		}
		if _, err := part.Write(img.Data); err != nil {
			return assessment.Result{}, fmt.Errorf("build multipart body: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return assessment.Result{}, fmt.Errorf("build multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", &body)
	if err != nil {
		return assessment.Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return assessment.Result{}, &NetworkError{Message: err.Error()}
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return assessment.Result{}, &NetworkError{Status: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return assessment.Result{}, &NetworkError{Status: resp.StatusCode, Message: errorMessage(payload)}
	}

	var result assessment.Result
	if err := json.Unmarshal(payload, &result); err != nil {
		return assessment.Result{}, &NetworkError{Status: resp.StatusCode, Message: "invalid analyzer response"}
	}
	return result, nil
}

// Health consumes the collaborator's GET /health liveness endpoint.
func (c *HTTPClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &NetworkError{Status: resp.StatusCode, Message: "analyzer unhealthy"}
	}
	var status struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil || status.Status != "healthy" {
		return &NetworkError{Status: resp.StatusCode, Message: "analyzer unhealthy"}
	}
	return nil
}

// errorMessage extracts the collaborator's error body. The wire format is
// {"error": "message"}; a structured {"error": {"message": ...}} shape is
// tolerated for newer producers.
func errorMessage(payload []byte) string {
	var flat struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(payload, &flat); err == nil && flat.Error != "" {
		return flat.Error
	}
	var nested struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(payload, &nested); err == nil && nested.Error.Message != "" {
		return nested.Error.Message
	}
	return "analyzer request failed"
}
