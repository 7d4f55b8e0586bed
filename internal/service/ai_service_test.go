package service

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateShortStringUnchanged(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "abc", truncate("abc", 3))
}

func TestTruncateCutsAtLimit(t *testing.T) {
	assert.Equal(t, "abcde", truncate("abcdefgh", 5))
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	s := "risque élevé après virement vers une société écran"
	for n := 0; n <= len(s); n++ {
		cut := truncate(s, n)
		assert.True(t, utf8.ValidString(cut), "cut at %d produced invalid UTF-8", n)
		assert.LessOrEqual(t, len(cut), n)
		assert.True(t, strings.HasPrefix(s, cut))
	}
}
