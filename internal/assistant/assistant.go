// Package assistant wraps the Gemini API for the advisory features.
// All calls are best effort: the rest of the application keeps working
// when no API key is configured or the upstream call fails.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// model is the Gemini model used for all requests.
const model = "gemini-2.5-flash"

var (
	// ErrNotConfigured means no API key was set at startup.
	ErrNotConfigured = errors.New("the assistant is not configured, set GEMINI_API_KEY to enable it")

	// ErrUpstream hides the details of a failed Gemini call.
	ErrUpstream = errors.New("the assistant is currently unavailable, please try again later")
)

// Client talks to the Gemini API. The zero value is a disabled client
// whose methods return ErrNotConfigured or a canned fallback.
type Client struct {
	genai *genai.Client
}

// New reads GEMINI_API_KEY and connects to the Gemini API. When the
// variable is unset, a disabled client is returned instead of an error
// so that the rest of the application can start normally.
func New(ctx context.Context) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set, assistant features are disabled")
		return &Client{}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("could not initialize the Gemini client: %w", err)
	}

	return &Client{genai: client}, nil
}

// Enabled reports whether an API key was configured.
func (c *Client) Enabled() bool {
	return c != nil && c.genai != nil
}

// generate runs one non-chat request and returns the first text
// candidate.
func (c *Client) generate(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	resp, err := c.genai.Models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		log.Error().Err(err).Msg("assistant: request failed")
		return nil, ErrUpstream
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		log.Error().Msg("assistant: response contained no candidates")
		return nil, ErrUpstream
	}

	return resp, nil
}
