package anthropic

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"sentinel-kyc-be/pkg/llm"
)

const (
	apiVersion   = "2023-06-01"
	messagesPath = "/v1/messages"
)

type AnthropicProvider struct {
	BaseURL   string
	ModelName string
	MaxTokens int
	APIKey    string
	Client    *http.Client
}

// Ensure AnthropicProvider implements LLMProvider
var _ llm.LLMProvider = &AnthropicProvider{}

func NewAnthropicProvider(baseURL, modelName string, maxTokens int) *AnthropicProvider {
	return &AnthropicProvider{
		BaseURL:   baseURL,
		ModelName: modelName,
		MaxTokens: maxTokens,
		Client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
	Stream    bool               `json:"stream,omitempty"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type anthropicResponse struct {
	Content []anthropicContentBlock `json:"content"`
}

type anthropicStreamEvent struct {
	Type  string `json:"type"`
	Delta struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"delta"`
}

type anthropicError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// --- Interface Implementation ---

func (a *AnthropicProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := a.resolveOptions(opts)

	req, err := a.buildRequest(ctx, history, options, false)
	if err != nil {
		return "", err
	}

	resp, err := a.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("anthropic request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return "", err
	}

	var parsed anthropicResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode anthropic response: %w", err)
	}

	var sb strings.Builder
	for _, block := range parsed.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	return sb.String(), nil
}

func (a *AnthropicProvider) ChatStream(ctx context.Context, history []llm.Message, onText func(text string) error, opts ...llm.Option) error {
	options := a.resolveOptions(opts)

	req, err := a.buildRequest(ctx, history, options, true)
	if err != nil {
		return err
	}

	resp, err := a.Client.Do(req)
	if err != nil {
		return fmt.Errorf("anthropic request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data: ") {
			continue
		}
		payload := strings.TrimPrefix(line, "data: ")

		var event anthropicStreamEvent
		if err := json.Unmarshal([]byte(payload), &event); err != nil {
			continue
		}
		if event.Type != "content_block_delta" || event.Delta.Type != "text_delta" {
			continue
		}
		if err := onText(event.Delta.Text); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// ValidateKey issues a minimal one-token request to confirm the credential
// is accepted.
func (a *AnthropicProvider) ValidateKey(ctx context.Context, apiKey string) error {
	payload := anthropicRequest{
		Model:     a.ModelName,
		MaxTokens: 1,
		Messages:  []anthropicMessage{{Role: "user", Content: "hi"}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.BaseURL+messagesPath, bytes.NewReader(body))
	if err != nil {
		return err
	}
	a.setHeaders(req, apiKey)

	resp, err := a.Client.Do(req)
	if err != nil {
		return fmt.Errorf("anthropic request failed: %w", err)
	}
	defer resp.Body.Close()

	return checkStatus(resp)
}

// --- Helpers ---

func (a *AnthropicProvider) resolveOptions(opts []llm.Option) *llm.Options {
	options := &llm.Options{
		Model:     a.ModelName,
		MaxTokens: a.MaxTokens,
		APIKey:    a.APIKey,
	}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

func (a *AnthropicProvider) buildRequest(ctx context.Context, history []llm.Message, options *llm.Options, stream bool) (*http.Request, error) {
	messages := make([]anthropicMessage, 0, len(history))
	system := options.System
	for _, msg := range history {
		// The API takes the system prompt out of band
		if msg.Role == "system" {
			system = msg.Content
			continue
		}
		role := msg.Role
		if role == "model" {
			role = "assistant"
		}
		messages = append(messages, anthropicMessage{Role: role, Content: msg.Content})
	}

	payload := anthropicRequest{
		Model:     options.Model,
		MaxTokens: options.MaxTokens,
		System:    system,
		Messages:  messages,
		Stream:    stream,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.BaseURL+messagesPath, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	a.setHeaders(req, options.APIKey)
	return req, nil
}

func (a *AnthropicProvider) setHeaders(req *http.Request, apiKey string) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("anthropic-version", apiVersion)
	req.Header.Set("x-api-key", apiKey)
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}

	body, _ := io.ReadAll(resp.Body)
	var parsed anthropicError
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Type == "authentication_error" {
		return llm.ErrInvalidAPIKey
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return llm.ErrInvalidAPIKey
	}
	return fmt.Errorf("anthropic API returned status %d: %s", resp.StatusCode, string(body))
}
