package window

import (
	"context"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/utils"
	"github.com/stretchr/testify/assert"
)

func pressedKeys(keys ...ebiten.Key) func(ebiten.Key) bool {
	set := map[ebiten.Key]bool{}
	for _, key := range keys {
		set[key] = true
	}
	return func(key ebiten.Key) bool { return set[key] }
}

func newTestGame(keys ...ebiten.Key) *Game {
	state := game.NewGameState(utils.DefaultConfig(), nil)
	return newGame(context.Background(), game.NewSession(state, nil, nil), pressedKeys(keys...))
}

func TestDefaultBindings(t *testing.T) {
	testCases := []struct {
		key      ebiten.Key
		expected game.Input
	}{
		{ebiten.KeyW, game.Input{LeftUp: true}},
		{ebiten.KeyD, game.Input{LeftUp: true}},
		{ebiten.KeyS, game.Input{LeftDown: true}},
		{ebiten.KeyA, game.Input{LeftDown: true}},
		{ebiten.KeyArrowUp, game.Input{RightUp: true}},
		{ebiten.KeyArrowRight, game.Input{RightUp: true}},
		{ebiten.KeyArrowDown, game.Input{RightDown: true}},
		{ebiten.KeyArrowLeft, game.Input{RightDown: true}},
		{ebiten.KeySpace, game.Input{}},
	}

	for _, tc := range testCases {
		t.Run(tc.key.String(), func(t *testing.T) {
			assert.Equal(t, tc.expected, DefaultBindings.Resolve(pressedKeys(tc.key)))
		})
	}
}

func TestGame_UpdateTicksSession(t *testing.T) {
	g := newTestGame(ebiten.KeyW, ebiten.KeyArrowDown)

	assert.NoError(t, g.Update())

	assert.Equal(t, uint64(1), g.frame.Frame)
	assert.Equal(t, 352.0, g.frame.LeftPaddle.Y)
	assert.Equal(t, 368.0, g.frame.RightPaddle.Y)
	assert.Equal(t, game.Circle{X: 648, Y: 368, Radius: 15}, g.frame.Ball)
}

func TestGame_UpdateEscapeTerminates(t *testing.T) {
	g := newTestGame(ebiten.KeyEscape)
	assert.ErrorIs(t, g.Update(), ebiten.Termination)
	assert.Equal(t, uint64(0), g.frame.Frame, "no tick after escape")
}

func TestGame_UpdateStopsWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	state := game.NewGameState(utils.DefaultConfig(), nil)
	g := newGame(ctx, game.NewSession(state, nil, nil), pressedKeys(ebiten.KeyW))

	assert.NoError(t, g.Update())
	assert.Equal(t, uint64(1), g.frame.Frame)

	cancel()
	assert.ErrorIs(t, g.Update(), ebiten.Termination)
	assert.Equal(t, uint64(1), g.frame.Frame, "no tick after the context ends")
}

func TestGame_ScoreStartsPulse(t *testing.T) {
	g := newTestGame()
	g.session.State.Ball.Position = game.Vector2{X: 1272, Y: 300}

	assert.NoError(t, g.Update())

	assert.Equal(t, "1 - 0", g.frame.ScoreText)
	assert.True(t, g.pulse.Active())
	assert.Greater(t, g.pulse.Scale(), float32(1))
}

func TestGame_LayoutAndScoreOrigin(t *testing.T) {
	g := newTestGame()

	width, height := g.Layout(800, 600)
	assert.Equal(t, 1280, width)
	assert.Equal(t, 720, height)

	x, y := g.scoreOrigin()
	assert.Equal(t, 560.0, x)
	assert.Equal(t, 360.0, y)
}
