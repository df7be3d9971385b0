// File: utils/config.go
package utils

import "time"

// PaddleClampMargin is the distance kept between a paddle's top edge and the
// bottom of the screen. It is a fixed value and does not follow PaddleSize.Y,
// so a 120px paddle may hang 20px below the screen edge.
const PaddleClampMargin = 100

// Config holds the fixed game parameters. Physics values are constants of the
// game and are not exposed on the command line.
type Config struct {
	// Timing
	FramePeriod     time.Duration `json:"framePeriod"`     // Time between two ticks
	FramesPerSecond int           `json:"framesPerSecond"` // Ticks per second requested from the host

	// Screen
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`

	// Ball
	BallRadius    float64 `json:"ballRadius"`
	BallVelocityX float64 `json:"ballVelocityX"` // Initial per-frame velocity
	BallVelocityY float64 `json:"ballVelocityY"`

	// Paddles
	PaddleWidth        float64 `json:"paddleWidth"`
	PaddleHeight       float64 `json:"paddleHeight"`
	PaddleSpeed        float64 `json:"paddleSpeed"`        // Pixels per frame while a key is held
	PaddleLeftOffset   float64 `json:"paddleLeftOffset"`   // X of the left paddle
	PaddleRightOffset  float64 `json:"paddleRightOffset"`  // Distance from the right edge to the right paddle's X
	PaddleClampMargin  float64 `json:"paddleClampMargin"`  // Lowest paddle Y is ScreenHeight minus this
	ScoreFontSize      int     `json:"scoreFontSize"`      // Score text size in pixels
	ScorePulseDuration float32 `json:"scorePulseDuration"` // Seconds the score text pulses after a point
}

// DefaultConfig returns the game's configuration.
func DefaultConfig() Config {
	fps := 60

	return Config{
		// Timing
		FramePeriod:     time.Second / time.Duration(fps),
		FramesPerSecond: fps,

		// Screen
		ScreenWidth:  1280,
		ScreenHeight: 720,

		// Ball
		BallRadius:    15,
		BallVelocityX: 8,
		BallVelocityY: 8,

		// Paddles
		PaddleWidth:        20,
		PaddleHeight:       120,
		PaddleSpeed:        8,
		PaddleLeftOffset:   5,
		PaddleRightOffset:  25,
		PaddleClampMargin:  PaddleClampMargin,
		ScoreFontSize:      80,
		ScorePulseDuration: 0.4,
	}
}

// PaddleMaxY is the largest Y a paddle may have after an update.
func (c Config) PaddleMaxY() float64 {
	return float64(c.ScreenHeight) - c.PaddleClampMargin
}
