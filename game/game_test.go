package game

import (
	"math/rand"
	"testing"

	"github.com/lguibr/duopong/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(seed int64) *GameState {
	return NewGameState(utils.DefaultConfig(), rand.New(rand.NewSource(seed)))
}

func TestNewGameState(t *testing.T) {
	state := newTestState(1)

	assert.Equal(t, Vector2{X: 640, Y: 360}, state.Ball.Position)
	assert.Equal(t, Vector2{X: 8, Y: 8}, state.Ball.Velocity)
	assert.Equal(t, 15.0, state.Ball.Radius)

	assert.Equal(t, Vector2{X: 5, Y: 360}, state.Left.Position)
	assert.Equal(t, Vector2{X: 1255, Y: 360}, state.Right.Position)
	for _, paddle := range []Paddle{state.Left, state.Right} {
		assert.Equal(t, Vector2{X: 20, Y: 120}, paddle.Size)
		assert.Equal(t, 8.0, paddle.Speed)
	}

	assert.Equal(t, Score{}, state.Score)
	assert.Equal(t, Events(0), state.Events)
}

func TestNewGameState_NilRandomSource(t *testing.T) {
	state := NewGameState(utils.DefaultConfig(), nil)
	state.Ball.Position = Vector2{X: 1276, Y: 300}
	assert.NotPanics(t, func() { state.Update(Input{}) })
	assert.Equal(t, 1, state.Score.Left)
}

func TestGameState_UpdateIdleMovesOnlyTheBall(t *testing.T) {
	state := newTestState(1)
	left, right := state.Left, state.Right

	state.Update(Input{})

	assert.Equal(t, Vector2{X: 648, Y: 368}, state.Ball.Position)
	assert.Equal(t, Vector2{X: 8, Y: 8}, state.Ball.Velocity)
	assert.Equal(t, left, state.Left)
	assert.Equal(t, right, state.Right)
	assert.Equal(t, Score{}, state.Score)
	assert.Equal(t, Events(0), state.Events)
}

func TestGameState_UpdatePaddleInput(t *testing.T) {
	testCases := []struct {
		name          string
		input         Input
		leftY, rightY float64
	}{
		{"LeftUp", Input{LeftUp: true}, 352, 360},
		{"LeftDown", Input{LeftDown: true}, 368, 360},
		{"LeftBoth", Input{LeftUp: true, LeftDown: true}, 360, 360},
		{"RightUp", Input{RightUp: true}, 360, 352},
		{"RightDown", Input{RightDown: true}, 360, 368},
		{"RightBoth", Input{RightUp: true, RightDown: true}, 360, 360},
		{"Crossed", Input{LeftUp: true, RightDown: true}, 352, 368},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			state := newTestState(1)
			state.Update(tc.input)
			assert.Equal(t, tc.leftY, state.Left.Position.Y)
			assert.Equal(t, tc.rightY, state.Right.Position.Y)
		})
	}
}

func TestGameState_UpdateClampsPaddles(t *testing.T) {
	state := newTestState(1)
	state.Left.Position.Y = 4
	state.Right.Position.Y = 616

	state.Update(Input{LeftUp: true, RightDown: true})

	assert.Equal(t, 0.0, state.Left.Position.Y)
	assert.Equal(t, 620.0, state.Right.Position.Y)
}

func TestGameState_RightEdgeScoresForLeft(t *testing.T) {
	state := newTestState(3)
	state.Ball.Position = Vector2{X: 1272, Y: 300}

	state.Update(Input{})

	assert.Equal(t, Score{Left: 1, Right: 0}, state.Score)
	assert.Equal(t, 640.0, state.Ball.Position.X)
	assert.Equal(t, -8.0, state.Ball.Velocity.X)
	assert.Equal(t, 8.0, state.Ball.Velocity.Y)
	assert.GreaterOrEqual(t, state.Ball.Position.Y, 0.0)
	assert.LessOrEqual(t, state.Ball.Position.Y, 720.0)
	assert.True(t, state.Events.Has(EventLeftScored))
	assert.False(t, state.Events.Has(EventRightScored))
}

func TestGameState_LeftEdgeScoresForRight(t *testing.T) {
	state := newTestState(3)
	state.Ball.Position = Vector2{X: 4, Y: 200}
	state.Ball.Velocity = Vector2{X: -8, Y: 8}

	state.Update(Input{})

	assert.Equal(t, Score{Left: 0, Right: 1}, state.Score)
	assert.Equal(t, 640.0, state.Ball.Position.X)
	assert.Equal(t, 8.0, state.Ball.Velocity.X)
	assert.GreaterOrEqual(t, state.Ball.Position.Y, 0.0)
	assert.LessOrEqual(t, state.Ball.Position.Y, 720.0)
	assert.True(t, state.Events.Has(EventRightScored))
}

func TestGameState_ResetHeightIsIntegralAndInRange(t *testing.T) {
	state := newTestState(11)
	for i := 0; i < 500; i++ {
		state.Ball.Position = Vector2{X: 1276, Y: 300}
		state.Ball.Velocity = Vector2{X: 8, Y: 0}
		state.Update(Input{})

		y := state.Ball.Position.Y
		require.GreaterOrEqual(t, y, 0.0)
		require.LessOrEqual(t, y, 720.0)
		require.Equal(t, float64(int(y)), y)
	}
	assert.Equal(t, 500, state.Score.Left)
}

func TestGameState_SeededResetsAreDeterministic(t *testing.T) {
	a, b := newTestState(42), newTestState(42)
	for _, state := range []*GameState{a, b} {
		state.Ball.Position = Vector2{X: 1272, Y: 300}
		state.Update(Input{})
	}
	assert.Equal(t, a.Ball.Position, b.Ball.Position)
}

func TestGameState_TopAndBottomReflect(t *testing.T) {
	testCases := []struct {
		name      string
		position  Vector2
		velocity  Vector2
		expectedV Vector2
	}{
		{"Top", Vector2{640, 5}, Vector2{8, -8}, Vector2{8, 8}},
		{"Bottom", Vector2{640, 715}, Vector2{8, 8}, Vector2{8, -8}},
		{"BottomMovingLeft", Vector2{640, 715}, Vector2{-8, 8}, Vector2{-8, -8}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			state := newTestState(1)
			state.Ball.Position = tc.position
			state.Ball.Velocity = tc.velocity

			state.Update(Input{})

			assert.Equal(t, tc.expectedV, state.Ball.Velocity)
			assert.Equal(t, tc.position.Add(tc.velocity), state.Ball.Position, "no positional correction on reflection")
			assert.True(t, state.Events.Has(EventWallBounce))
			assert.Equal(t, Score{}, state.Score)
		})
	}
}

func TestGameState_PaddleHitReflects(t *testing.T) {
	state := newTestState(1)
	state.Ball.Position = Vector2{X: 40, Y: 400}
	state.Ball.Velocity = Vector2{X: -8, Y: 0}

	state.Update(Input{})

	assert.Equal(t, Vector2{X: 32, Y: 400}, state.Ball.Position)
	assert.Equal(t, 8.0, state.Ball.Velocity.X)
	assert.True(t, state.Events.Has(EventPaddleHit))
}

func TestGameState_PaddleHitRefiresWhileOverlapping(t *testing.T) {
	state := newTestState(1)
	state.Ball.Position = Vector2{X: 26, Y: 400}
	state.Ball.Velocity = Vector2{X: -8, Y: 0}

	state.Update(Input{})
	assert.Equal(t, 8.0, state.Ball.Velocity.X)

	// Still overlapping after moving back out by one step: flips again.
	state.Update(Input{})
	assert.Equal(t, Vector2{X: 26, Y: 400}, state.Ball.Position)
	assert.Equal(t, -8.0, state.Ball.Velocity.X)
	assert.True(t, state.Events.Has(EventPaddleHit))
}

func TestGameState_EventsResetEachUpdate(t *testing.T) {
	state := newTestState(1)
	state.Ball.Position = Vector2{X: 640, Y: 5}
	state.Ball.Velocity = Vector2{X: 8, Y: -8}

	state.Update(Input{})
	require.True(t, state.Events.Has(EventWallBounce))

	state.Update(Input{})
	assert.Equal(t, Events(0), state.Events)
}
