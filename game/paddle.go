// File: game/paddle.go
package game

import "github.com/lguibr/duopong/utils"

type Paddle struct {
	Position Vector2 `json:"position"` // Top-left corner
	Size     Vector2 `json:"size"`
	Speed    float64 `json:"speed"`
}

func NewPaddle(position, size Vector2, speed float64) Paddle {
	return Paddle{
		Position: position,
		Size:     size,
		Speed:    speed,
	}
}

func (paddle *Paddle) MoveUp() {
	paddle.Position.Y -= paddle.Speed
}

func (paddle *Paddle) MoveDown() {
	paddle.Position.Y += paddle.Speed
}

// Steer applies the held directions. Up and down are independent steps, so
// holding both leaves the paddle where it was.
func (paddle *Paddle) Steer(up, down bool) {
	if up {
		paddle.MoveUp()
	}
	if down {
		paddle.MoveDown()
	}
}

// Clamp keeps the paddle's top edge within [0, maxY].
func (paddle *Paddle) Clamp(maxY float64) {
	paddle.Position.Y = utils.Clamp(paddle.Position.Y, 0, maxY)
}

func (paddle *Paddle) Rect() Rect {
	return Rect{
		X:      paddle.Position.X,
		Y:      paddle.Position.Y,
		Width:  paddle.Size.X,
		Height: paddle.Size.Y,
	}
}
