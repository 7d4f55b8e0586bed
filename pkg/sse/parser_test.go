package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedCompleteFrame(t *testing.T) {
	var p Parser

	frames := p.Feed([]byte("data: {\"text\":\"hello\"}\n\n"))

	require.Len(t, frames, 1)
	assert.Equal(t, "hello", frames[0].Text)
}

func TestFeedSplitMidLine(t *testing.T) {
	var p Parser

	frames := p.Feed([]byte("data: {\"te"))
	assert.Empty(t, frames)

	frames = p.Feed([]byte("xt\":\"hi\"}\n"))
	require.Len(t, frames, 1)
	assert.Equal(t, "hi", frames[0].Text)
}

func TestFeedByteAtATime(t *testing.T) {
	var p Parser
	raw := "data: {\"text\":\"abc\"}\ndata: [DONE]\n\n"

	var frames []Frame
	for i := 0; i < len(raw); i++ {
		frames = append(frames, p.Feed([]byte{raw[i]})...)
	}

	require.Len(t, frames, 2)
	assert.Equal(t, "abc", frames[0].Text)
	assert.True(t, frames[1].Done)
}

func TestFeedMultipleFramesInOneChunk(t *testing.T) {
	var p Parser

	frames := p.Feed([]byte("data: {\"text\":\"a\"}\n\ndata: {\"text\":\"b\"}\n\ndata: {\"text\":\"c\"}\n\n"))

	require.Len(t, frames, 3)
	assert.Equal(t, "a", frames[0].Text)
	assert.Equal(t, "b", frames[1].Text)
	assert.Equal(t, "c", frames[2].Text)
}

func TestFeedDoneSentinel(t *testing.T) {
	var p Parser

	frames := p.Feed([]byte("data: [DONE]\n\n"))

	require.Len(t, frames, 1)
	assert.True(t, frames[0].Done)
}

func TestFeedErrorFrame(t *testing.T) {
	var p Parser

	frames := p.Feed([]byte("data: {\"error\":\"no key\"}\n\n"))

	require.Len(t, frames, 1)
	assert.Equal(t, "no key", frames[0].Err)
}

func TestFeedSkipsMalformedLines(t *testing.T) {
	var p Parser

	frames := p.Feed([]byte("data: {broken\nnot a data line\ndata: {\"text\":\"ok\"}\n"))

	require.Len(t, frames, 1)
	assert.Equal(t, "ok", frames[0].Text)
}

func TestFeedHandlesCarriageReturns(t *testing.T) {
	var p Parser

	frames := p.Feed([]byte("data: {\"text\":\"crlf\"}\r\ndata: [DONE]\r\n"))

	require.Len(t, frames, 2)
	assert.Equal(t, "crlf", frames[0].Text)
	assert.True(t, frames[1].Done)
}

func TestFeedEmptyTextPreserved(t *testing.T) {
	var p Parser

	frames := p.Feed([]byte("data: {\"text\":\"\"}\n"))

	require.Len(t, frames, 1)
	assert.Equal(t, "", frames[0].Text)
	assert.False(t, frames[0].Done)
}
