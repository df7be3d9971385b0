// File: game/game.go
package game

import (
	"math/rand"
	"time"

	"github.com/lguibr/duopong/utils"
)

// GameState owns the ball, both paddles and the score. It is mutated only by
// Update and is not safe for concurrent use.
type GameState struct {
	Ball   Ball   `json:"ball"`
	Left   Paddle `json:"left"`
	Right  Paddle `json:"right"`
	Score  Score  `json:"score"`
	Events Events `json:"events"` // What happened during the last Update

	config utils.Config
	rng    *rand.Rand
}

// NewGameState returns a game with the ball centred, both paddles at mid
// height and a 0 - 0 score. rng drives the ball's vertical reset after a
// point; a nil rng is replaced by a time-seeded one.
func NewGameState(cfg utils.Config, rng *rand.Rand) *GameState {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	width, height := float64(cfg.ScreenWidth), float64(cfg.ScreenHeight)
	paddleSize := Vector2{X: cfg.PaddleWidth, Y: cfg.PaddleHeight}

	return &GameState{
		Ball: NewBall(
			Vector2{X: width / 2, Y: height / 2},
			Vector2{X: cfg.BallVelocityX, Y: cfg.BallVelocityY},
			cfg.BallRadius,
		),
		Left: NewPaddle(
			Vector2{X: cfg.PaddleLeftOffset, Y: height / 2},
			paddleSize,
			cfg.PaddleSpeed,
		),
		Right: NewPaddle(
			Vector2{X: width - cfg.PaddleRightOffset, Y: height / 2},
			paddleSize,
			cfg.PaddleSpeed,
		),
		config: cfg,
		rng:    rng,
	}
}

func (g *GameState) Config() utils.Config { return g.config }

// Update advances the game by one frame: paddles follow the input and are
// clamped, the ball moves, then paddle and wall collisions are resolved.
func (g *GameState) Update(in Input) {
	g.Events = 0

	g.Left.Steer(in.LeftUp, in.LeftDown)
	g.Right.Steer(in.RightUp, in.RightDown)

	maxY := g.config.PaddleMaxY()
	g.Right.Clamp(maxY)
	g.Left.Clamp(maxY)

	g.Ball.Move()

	g.collidePaddles()
	g.collideWalls()
}

// resetBall puts the ball back on the vertical centre line at a random
// height in [0, ScreenHeight] and sends it back the way it came from.
func (g *GameState) resetBall() {
	g.Ball.Position.X = float64(g.config.ScreenWidth) / 2
	g.Ball.ReflectVelocityX()
	g.Ball.Position.Y = float64(utils.RandomInclusive(g.rng, 0, g.config.ScreenHeight))
}
