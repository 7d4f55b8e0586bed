package websocket

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }

func newTestHub(t *testing.T) (*Hub, *Client) {
	t.Helper()
	h := NewHub(nil, noopLogger{})
	c := &Client{Hub: h, Send: make(chan []byte, 4)}
	h.clients[c] = true
	return h, c
}

func drain(c *Client) [][]byte {
	var got [][]byte
	for {
		select {
		case msg := <-c.Send:
			got = append(got, msg)
		default:
			return got
		}
	}
}

func TestBroadcastDeliversOncePerClient(t *testing.T) {
	h, c := newTestHub(t)

	h.Broadcast(map[string]string{"action": "Alert ALT-00001 escalated"})

	got := drain(c)
	require.Len(t, got, 1)

	var frame map[string]interface{}
	require.NoError(t, json.Unmarshal(got[0], &frame))
	assert.Equal(t, "activity", frame["type"])
}

func TestMirrorSkipsOwnPublishes(t *testing.T) {
	h, c := newTestHub(t)

	wrapped, err := json.Marshal(mirrorEnvelope{
		Origin:  h.instanceId,
		Payload: json.RawMessage(`{"type":"activity","data":{}}`),
	})
	require.NoError(t, err)

	h.handleMirror(wrapped)

	assert.Empty(t, drain(c))
}

func TestMirrorDeliversForeignPublishes(t *testing.T) {
	h, c := newTestHub(t)

	payload := []byte(`{"type":"activity","data":{"action":"Case CAS-00002 closed"}}`)
	wrapped, err := json.Marshal(mirrorEnvelope{Origin: "other-instance", Payload: payload})
	require.NoError(t, err)

	h.handleMirror(wrapped)

	got := drain(c)
	require.Len(t, got, 1)
	assert.JSONEq(t, string(payload), string(got[0]))
}

func TestMirrorDropsInvalidMessages(t *testing.T) {
	h, c := newTestHub(t)

	h.handleMirror([]byte(`not json`))
	h.handleMirror([]byte(`{"payload":{}}`))

	assert.Empty(t, drain(c))
}
