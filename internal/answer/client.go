// Package answer generates answers by calling an OpenRouter-compatible
// chat-completion endpoint, falling back to deterministic degraded-mode
// responses when the service is unconfigured or unreachable.
package answer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

// Unconfigured is returned when no API key is present. This is a
// defined degraded-mode response, not an error.
const Unconfigured = "Please set OPENROUTER_API_KEY environment variable for AI-powered responses. Using basic search instead."

const systemPrompt = "You are a helpful assistant for manufacturing equipment maintenance. " +
	"Answer questions based on the provided equipment manuals and maintenance documents. " +
	"Be specific and practical in your responses."

// Config configures the completion client.
type Config struct {
	BaseURL     string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
	Referer     string
	Title       string
}

// Client is a single-attempt chat-completion client. Every failure mode
// is converted into a user-facing fallback string at this boundary; no
// fault propagates to the caller.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *log.Logger
}

// NewClient creates a Client. Zero-valued config fields get defaults.
func NewClient(cfg Config, logger *log.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://openrouter.ai/api/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "meta-llama/llama-3.2-3b-instruct:free"
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 1000
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.7
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool { return c.cfg.APIKey != "" }

// Model returns the configured model identifier.
func (c *Client) Model() string { return c.cfg.Model }

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate answers the question against the assembled context. The
// second return value reports whether the external service produced the
// answer; when false the answer is a degraded-mode fallback string.
//
// A single attempt is made per call. The caller is interactive, so a
// retry would double perceived latency without a cache to amortize it.
func (c *Client) Generate(ctx context.Context, question, docContext string) (string, bool) {
	if !c.Configured() {
		return Unconfigured, false
	}

	body := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf(
				"Context from equipment manuals:\n\n%s\n\nQuestion: %s\n\nPlease provide a detailed answer based on the context above.",
				docContext, question)},
		},
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}
	data, err := json.Marshal(body)
	if err != nil {
		return c.fallback("request encoding failed: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(data))
	if err != nil {
		return c.fallback("building request failed: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	if c.cfg.Referer != "" {
		req.Header.Set("HTTP-Referer", c.cfg.Referer)
	}
	if c.cfg.Title != "" {
		req.Header.Set("X-Title", c.cfg.Title)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fallback("%v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("completion service returned error status", "status", resp.StatusCode)
		return fmt.Sprintf("AI service error: %d. Using basic search instead.", resp.StatusCode), false
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fallback("reading response failed: %v", err)
	}
	var out chatResponse
	if err := json.Unmarshal(payload, &out); err != nil {
		return c.fallback("decoding response failed: %v", err)
	}
	if len(out.Choices) == 0 {
		return c.fallback("response contained no choices")
	}
	return out.Choices[0].Message.Content, true
}

func (c *Client) fallback(format string, args ...any) (string, bool) {
	reason := fmt.Sprintf(format, args...)
	c.logger.Warn("completion service unavailable", "reason", reason)
	return fmt.Sprintf("AI service unavailable: %s. Using basic search instead.", reason), false
}
