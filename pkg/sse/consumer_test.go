package sse

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func streamOf(body string) OpenFunc {
	return func(ctx context.Context) (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(body)), nil
	}
}

func TestTriggerAccumulatesTokensInOrder(t *testing.T) {
	c := NewConsumer(streamOf("data: {\"text\":\"The \"}\n\ndata: {\"text\":\"customer \"}\n\ndata: {\"text\":\"is high risk.\"}\n\ndata: [DONE]\n\n"))

	c.Trigger(context.Background())

	assert.Equal(t, PhaseSuccess, c.Phase())
	assert.Equal(t, "The customer is high risk.", c.Text())
	assert.Empty(t, c.ErrMessage())
}

func TestTriggerEndsOnDoneEvenWithTrailingBytes(t *testing.T) {
	c := NewConsumer(streamOf("data: {\"text\":\"done\"}\n\ndata: [DONE]\n\ndata: {\"text\":\"ignored\"}\n\n"))

	c.Trigger(context.Background())

	assert.Equal(t, PhaseSuccess, c.Phase())
	assert.Equal(t, "done", c.Text())
}

func TestStreamCloseWithoutSentinelSucceeds(t *testing.T) {
	c := NewConsumer(streamOf("data: {\"text\":\"partial\"}\n"))

	c.Trigger(context.Background())

	assert.Equal(t, PhaseSuccess, c.Phase())
	assert.Equal(t, "partial", c.Text())
}

func TestErrorFrameEntersErrorPhase(t *testing.T) {
	c := NewConsumer(streamOf("data: {\"error\":\"no key\"}\n\ndata: [DONE]\n\n"))

	c.Trigger(context.Background())

	assert.Equal(t, PhaseError, c.Phase())
	assert.Equal(t, "no key", c.ErrMessage())
}

func TestOpenFailureEntersErrorPhase(t *testing.T) {
	c := NewConsumer(func(ctx context.Context) (io.ReadCloser, error) {
		return nil, errors.New("connection refused")
	})

	c.Trigger(context.Background())

	assert.Equal(t, PhaseError, c.Phase())
	assert.Contains(t, c.ErrMessage(), "AI service unavailable")
}

func TestRetryClearsPriorState(t *testing.T) {
	fail := true
	c := NewConsumer(func(ctx context.Context) (io.ReadCloser, error) {
		if fail {
			return nil, errors.New("connection refused")
		}
		return io.NopCloser(strings.NewReader("data: {\"text\":\"recovered\"}\n\ndata: [DONE]\n\n")), nil
	})

	c.Trigger(context.Background())
	require.Equal(t, PhaseError, c.Phase())

	fail = false
	c.Retry(context.Background())

	assert.Equal(t, PhaseSuccess, c.Phase())
	assert.Equal(t, "recovered", c.Text())
	assert.Empty(t, c.ErrMessage())
}

func TestMalformedLinesAreSkipped(t *testing.T) {
	c := NewConsumer(streamOf("data: {garbage\ndata: {\"text\":\"kept\"}\n\ndata: [DONE]\n\n"))

	c.Trigger(context.Background())

	assert.Equal(t, PhaseSuccess, c.Phase())
	assert.Equal(t, "kept", c.Text())
}

func TestContextCancellationStopsStream(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := NewConsumer(streamOf("data: {\"text\":\"never\"}\n"))

	c.Trigger(ctx)

	assert.Equal(t, PhaseError, c.Phase())
	assert.Contains(t, c.ErrMessage(), "AI service unavailable")
}

func TestCredentialContinuationRunsOnce(t *testing.T) {
	calls := 0
	c := NewConsumer(func(ctx context.Context) (io.ReadCloser, error) {
		calls++
		return io.NopCloser(strings.NewReader("data: [DONE]\n\n")), nil
	})

	c.RequestCredential()
	c.CredentialConfigured(context.Background())
	assert.Equal(t, 1, calls)

	// Without a fresh request the continuation is spent.
	c.CredentialConfigured(context.Background())
	assert.Equal(t, 1, calls)
}

func TestCancelPendingCredential(t *testing.T) {
	calls := 0
	c := NewConsumer(func(ctx context.Context) (io.ReadCloser, error) {
		calls++
		return io.NopCloser(strings.NewReader("data: [DONE]\n\n")), nil
	})

	c.RequestCredential()
	c.CancelPendingCredential()
	c.CredentialConfigured(context.Background())

	assert.Zero(t, calls)
}

func TestHTTPOpenerRejectsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	open := NewHTTPOpener(srv.Client(), srv.URL)
	_, err := open(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestHTTPOpenerStreamsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, "data: {\"text\":\"live\"}\n\ndata: [DONE]\n\n")
	}))
	defer srv.Close()

	c := NewConsumer(NewHTTPOpener(srv.Client(), srv.URL))
	c.Trigger(context.Background())

	assert.Equal(t, PhaseSuccess, c.Phase())
	assert.Equal(t, "live", c.Text())
}
