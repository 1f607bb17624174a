// Package platform is the REST client for the learning-platform API: the
// catalog, completion-recording and FAQ collaborators the engine depends
// on.
package platform

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-resty/resty/v2"
)

// APIError reports a non-success response from the platform.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("platform API error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("platform API error %d", e.Status)
}

// Client talks to the platform API. It implements the engine's
// CatalogProvider, CompletionRecorder and FAQProvider contracts.
type Client struct {
	http *resty.Client
	log  *slog.Logger
}

// Config holds client settings.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// NewClient builds a platform client. A zero Timeout defaults to 15s.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	rc := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if cfg.Token != "" {
		rc.SetAuthToken(cfg.Token)
	}

	return &Client{
		http: rc,
		log:  slog.With("component", "platform"),
	}
}

// apiMessage is the error body the platform returns on failures.
type apiMessage struct {
	Message string `json:"message"`
}

func statusError(resp *resty.Response) error {
	var msg apiMessage
	// Body may not be JSON on proxy errors; the status alone suffices then.
	_ = json.Unmarshal(resp.Body(), &msg)
	return &APIError{Status: resp.StatusCode(), Message: msg.Message}
}
