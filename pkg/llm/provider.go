package llm

import (
	"context"
	"errors"
)

// ErrInvalidAPIKey is returned when the backend rejects the credential.
var ErrInvalidAPIKey = errors.New("invalid_api_key")

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
	System      string // System prompt, set separately for backends that want it out of band
	APIKey      string // Per-request credential override
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithSystem(system string) Option {
	return func(o *Options) {
		o.System = system
	}
}

func WithAPIKey(key string) Option {
	return func(o *Options) {
		o.APIKey = key
	}
}

// LLMProvider defines the contract for any LLM backend
type LLMProvider interface {
	// Chat sends a chat history to the model and returns the response
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// ChatStream sends a chat history and invokes onText for each text
	// fragment as the model produces it
	ChatStream(ctx context.Context, history []Message, onText func(text string) error, options ...Option) error

	// ValidateKey checks that a credential is accepted by the backend
	ValidateKey(ctx context.Context, apiKey string) error
}
