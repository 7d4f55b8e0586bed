package sse

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Phase is the lifecycle of one streaming action.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseStreaming
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseStreaming:
		return "streaming"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "idle"
	}
}

const unavailableMessage = "AI service unavailable"

// OpenFunc starts the stream and returns its body. A failed open, including a
// non-2xx response, returns an error.
type OpenFunc func(ctx context.Context) (io.ReadCloser, error)

// NewHTTPOpener builds an OpenFunc that POSTs to url and streams the response.
func NewHTTPOpener(client *http.Client, url string) OpenFunc {
	return func(ctx context.Context) (io.ReadCloser, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "text/event-stream")

		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
		}
		return resp.Body, nil
	}
}

// Consumer drives one AI action: open the stream, append text frames in
// arrival order, and surface the terminal phase. Re-triggering clears the
// prior accumulation and abandons any earlier stream's remaining effect.
type Consumer struct {
	mu      sync.Mutex
	open    OpenFunc
	phase   Phase
	text    strings.Builder
	errMsg  string
	pending bool
	seq     uint64
}

func NewConsumer(open OpenFunc) *Consumer {
	return &Consumer{open: open}
}

// Trigger starts the stream and blocks until it terminates. Tokens are
// appended as they arrive; callers run it on a goroutine and poll state.
func (c *Consumer) Trigger(ctx context.Context) {
	c.mu.Lock()
	c.seq++
	token := c.seq
	c.phase = PhaseStreaming
	c.text.Reset()
	c.errMsg = ""
	c.mu.Unlock()

	body, err := c.open(ctx)
	if err != nil {
		c.fail(token, fmt.Sprintf("%s: %v", unavailableMessage, err))
		return
	}
	defer body.Close()

	var parser Parser
	chunk := make([]byte, 4096)
	for {
		if ctx.Err() != nil {
			c.fail(token, fmt.Sprintf("%s: %v", unavailableMessage, ctx.Err()))
			return
		}
		n, readErr := body.Read(chunk)
		if n > 0 {
			for _, frame := range parser.Feed(chunk[:n]) {
				switch {
				case frame.Done:
					c.finish(token)
					return
				case frame.Err != "":
					c.fail(token, frame.Err)
					return
				default:
					if !c.append(token, frame.Text) {
						return
					}
				}
			}
		}
		if readErr == io.EOF {
			// Stream closed without the sentinel, still a clean end.
			c.finish(token)
			return
		}
		if readErr != nil {
			c.fail(token, fmt.Sprintf("%s: %v", unavailableMessage, readErr))
			return
		}
	}
}

// Retry re-runs the trigger from an error or success state.
func (c *Consumer) Retry(ctx context.Context) {
	c.Trigger(ctx)
}

// RequestCredential records that the next successful credential entry should
// resume the stream. At most one continuation is pending at a time.
func (c *Consumer) RequestCredential() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = true
}

// CredentialConfigured is invoked by the credential-entry collaborator after a
// key is saved. It consumes the pending continuation and re-triggers.
func (c *Consumer) CredentialConfigured(ctx context.Context) {
	c.mu.Lock()
	if !c.pending {
		c.mu.Unlock()
		return
	}
	c.pending = false
	c.mu.Unlock()
	c.Trigger(ctx)
}

// CancelPendingCredential drops the stored continuation without running it.
func (c *Consumer) CancelPendingCredential() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = false
}

func (c *Consumer) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

func (c *Consumer) Text() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text.String()
}

func (c *Consumer) ErrMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// append adds a token, reporting false when the stream was superseded.
func (c *Consumer) append(token uint64, text string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.seq {
		return false
	}
	c.text.WriteString(text)
	return true
}

func (c *Consumer) finish(token uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.seq {
		return
	}
	c.phase = PhaseSuccess
}

func (c *Consumer) fail(token uint64, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if token != c.seq {
		return
	}
	c.phase = PhaseError
	c.errMsg = message
}
