package apifree

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"laptop-dss-be/pkg/llm"
)

// DefaultTimeout bounds the remote call. On timeout the caller falls through
// to its deterministic fallback instead of retrying.
const DefaultTimeout = 60 * time.Second

// ApiFreeProvider talks to an ApiFreeLLM-style completion endpoint: a single
// POST with {"message": ...} returning a JSON body whose reply text may sit
// under "response", "message" or "text".
type ApiFreeProvider struct {
	BaseURL string
	Client  *http.Client
}

var _ llm.Provider = &ApiFreeProvider{}

func NewApiFreeProvider(baseURL string) *ApiFreeProvider {
	return &ApiFreeProvider{
		BaseURL: baseURL,
		Client: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
}

type apiFreeRequest struct {
	Message string `json:"message"`
}

func (p *ApiFreeProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	// The endpoint takes one flat message, so the history is folded into a
	// single labeled transcript.
	var b strings.Builder
	for _, msg := range history {
		switch msg.Role {
		case "assistant", "model":
			b.WriteString("AI: ")
		case "system":
			// System content is passed through unlabeled.
		default:
			b.WriteString("User: ")
		}
		b.WriteString(msg.Content)
		b.WriteString("\n")
	}
	return p.Generate(ctx, b.String(), opts...)
}

func (p *ApiFreeProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	payloadBytes, err := json.Marshal(apiFreeRequest{Message: prompt})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", p.BaseURL, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("apifree request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("apifree error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	// Tolerate the three reply-field spellings; fall back to the raw body if
	// the envelope is not JSON at all.
	var envelope map[string]interface{}
	if err := json.Unmarshal(bodyBytes, &envelope); err != nil {
		return string(bodyBytes), nil
	}
	for _, field := range []string{"response", "message", "text"} {
		if text, ok := envelope[field].(string); ok && text != "" {
			return text, nil
		}
	}
	return string(bodyBytes), nil
}
