// Package flavor produces the end-of-round text: a short message from Eggie
// and an optional reward recipe. Text comes from a generative language API
// when one is configured and from fixed fallback pools otherwise.
package flavor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNoAPIKey is returned when the client has no key to authenticate with.
var ErrNoAPIKey = errors.New("flavor: no API key configured")

// HTTPError is returned for non-200 responses.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("flavor: http %d: %s", e.StatusCode, e.Body)
}

// IsRateLimited reports whether the service rejected the call for quota.
func (e *HTTPError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// ClientConfig configures the generateContent client.
type ClientConfig struct {
	// Endpoint is the API base URL, e.g. https://generativelanguage.googleapis.com/v1beta.
	Endpoint string

	// Model is the model name used in the request path.
	Model string

	// APIKey authenticates requests. When empty every call fails with ErrNoAPIKey.
	APIKey string

	// HTTPClient allows injecting a custom HTTP client (useful for testing).
	// Defaults to a client with 10s timeout.
	HTTPClient *http.Client
}

// Client calls the Gemini generateContent REST endpoint.
type Client struct {
	config ClientConfig
	http   *http.Client
}

// NewClient creates a new client with the given configuration.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		config: cfg,
		http:   httpClient,
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// EndMessage asks for a short comforting message for the final score.
func (c *Client) EndMessage(ctx context.Context, score int) (string, error) {
	prompt := fmt.Sprintf(`The user just finished a game called "Eggie's Bakery Catch".
The character is a cute egg named Eggie.
The user scored %d points.

Generate a very short, wholesome, and comforting message (max 2 sentences) from Eggie to the player.
If the score is low, emphasize that it's okay to fail.
If the score is high, congratulate them warmly but stay humble.`, score)
	return c.generate(ctx, prompt)
}

// RewardText asks for a tiny toast or sandwich recipe.
func (c *Client) RewardText(ctx context.Context, score int) (string, error) {
	prompt := fmt.Sprintf(`The user scored %d points in a bread-catching game.
Generate a simplified, fun title and 3-step instruction for a toast or sandwich recipe based on this score.
Keep it extremely brief. Use plain text, no markdown.`, score)
	return c.generate(ctx, prompt)
}

// generate sends one prompt and returns the concatenated text parts.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if c.config.APIKey == "" {
		return "", ErrNoAPIKey
	}

	base := strings.TrimRight(c.config.Endpoint, "/")
	url := fmt.Sprintf("%s/models/%s:generateContent", base, c.config.Model)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("flavor: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("flavor: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.config.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("flavor: http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("flavor: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(respBody))}
	}

	var decoded generateResponse
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return "", fmt.Errorf("flavor: decode response: %w", err)
	}

	var sb strings.Builder
	if len(decoded.Candidates) > 0 {
		for _, p := range decoded.Candidates[0].Content.Parts {
			sb.WriteString(p.Text)
		}
	}
	return strings.TrimSpace(sb.String()), nil
}
