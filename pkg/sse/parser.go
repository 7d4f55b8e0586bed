// Package sse consumes the event streams produced by the AI endpoints: a
// line-buffered frame parser plus the state machine the four AI actions share.
package sse

import (
	"encoding/json"
	"strings"
)

const (
	dataPrefix   = "data: "
	doneSentinel = "[DONE]"
)

// Frame is one decoded payload line.
type Frame struct {
	Text string
	Err  string
	Done bool
}

type payload struct {
	Text  *string `json:"text"`
	Error *string `json:"error"`
}

// Parser accumulates raw chunks and emits complete frames. Bytes may arrive
// split anywhere, including mid-line; the trailing partial line is retained
// until the next chunk completes it.
type Parser struct {
	buf strings.Builder
}

// Feed consumes one chunk and returns the frames completed by it. Lines
// without the data prefix and undecodable payloads are skipped.
func (p *Parser) Feed(chunk []byte) []Frame {
	p.buf.Write(chunk)

	data := p.buf.String()
	idx := strings.LastIndexByte(data, '\n')
	if idx < 0 {
		return nil
	}
	p.buf.Reset()
	p.buf.WriteString(data[idx+1:])

	var frames []Frame
	for _, line := range strings.Split(data[:idx], "\n") {
		if frame, ok := parseLine(line); ok {
			frames = append(frames, frame)
		}
	}
	return frames
}

func parseLine(line string) (Frame, bool) {
	line = strings.TrimRight(line, "\r")
	if !strings.HasPrefix(line, dataPrefix) {
		return Frame{}, false
	}
	body := line[len(dataPrefix):]
	if body == doneSentinel {
		return Frame{Done: true}, true
	}

	var p payload
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		return Frame{}, false
	}
	switch {
	case p.Error != nil:
		return Frame{Err: *p.Error}, true
	case p.Text != nil:
		return Frame{Text: *p.Text}, true
	}
	return Frame{}, false
}
