// file: internal/conjugator/client.go
// version: 1.0.0
// guid: 5e8c2f7a-3b9d-4c1e-8a6f-2d4b9e7c1a3f

// Package conjugator fetches full conjugation tables from a verbecc-style
// HTTP API. The rest of the program treats any failure here as "no payload
// available" and never retries.
package conjugator

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/frenchtools/cj/internal/grammar"
	"github.com/go-resty/resty/v2"
)

// Provider produces the full conjugation table for a verb.
type Provider interface {
	Conjugate(verb string) (*grammar.Table, error)
}

var (
	// ErrUnknownVerb means the provider has no conjugation for the verb.
	ErrUnknownVerb = errors.New("unknown verb")
	// ErrUnavailable means the provider could not be reached or answered
	// something that is not a conjugation table.
	ErrUnavailable = errors.New("conjugation provider unavailable")
)

const defaultBaseURL = "https://verbe.cc"

// Client talks to a verbecc-svc endpoint.
type Client struct {
	rc *resty.Client
}

// NewClient creates a provider client. An empty baseURL falls back to the
// CJ_PROVIDER_URL environment variable, then the public default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = os.Getenv("CJ_PROVIDER_URL")
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	return &Client{rc: rc}
}

// verbecc-svc wraps the table in a "value" envelope.
type conjugateResponse struct {
	Value grammar.Table `json:"value"`
}

// Conjugate fetches the conjugation table for one verb.
func (c *Client) Conjugate(verb string) (*grammar.Table, error) {
	verb = strings.TrimSpace(verb)
	if verb == "" {
		return nil, fmt.Errorf("%w: empty verb", ErrUnknownVerb)
	}

	resp, err := c.rc.R().
		SetPathParam("verb", verb).
		Get("/conjugate/fr/{verb}")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVerb, verb)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode())
	}

	var out conjugateResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}
	if len(out.Value.Moods) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVerb, verb)
	}
	return &out.Value, nil
}
