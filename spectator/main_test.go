package main

import (
	"strings"
	"testing"

	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/utils"
	"github.com/stretchr/testify/assert"
)

func TestRawLines(t *testing.T) {
	assert.Equal(t, "a\r\nb\r\n", rawLines("a\nb\n"))
	assert.Equal(t, "plain", rawLines("plain"))
}

func TestFrameText(t *testing.T) {
	snapshot := game.NewGameState(utils.DefaultConfig(), nil).Snapshot()

	plain := frameText(snapshot, 16, 9, false)
	assert.NotContains(t, plain, "\x1b[")
	assert.Contains(t, plain, "0 - 0")

	colored := frameText(snapshot, 16, 9, true)
	assert.True(t, strings.HasPrefix(colored, "0 - 0\n"))
	assert.Contains(t, colored, "\x1b[38;2;")
}

func TestIsQuitByte(t *testing.T) {
	for _, b := range []byte{'q', 'Q', 3, 27} {
		assert.True(t, isQuitByte(b), "byte %d", b)
	}
	assert.False(t, isQuitByte('w'))
}

func TestFitFrame(t *testing.T) {
	cols, rows := fitFrame(128, 38)
	assert.Equal(t, 64, cols)
	assert.Equal(t, 36, rows)

	cols, rows = fitFrame(1, 1)
	assert.Equal(t, 1, cols)
	assert.Equal(t, 1, rows)
}
