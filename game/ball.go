package game

type Ball struct {
	Position Vector2 `json:"position"`
	Velocity Vector2 `json:"velocity"`
	Radius   float64 `json:"radius"`
}

func NewBall(position, velocity Vector2, radius float64) Ball {
	return Ball{
		Position: position,
		Velocity: velocity,
		Radius:   radius,
	}
}

// Move advances the ball by one frame of velocity. There is no delta time:
// ball speed is tied to the frame rate.
func (ball *Ball) Move() {
	ball.Position = ball.Position.Add(ball.Velocity)
}

func (ball *Ball) ReflectVelocityX() {
	ball.Velocity.X = -ball.Velocity.X
}

func (ball *Ball) ReflectVelocityY() {
	ball.Velocity.Y = -ball.Velocity.Y
}

// Bounds returns the edges of the square enclosing the ball.
func (ball *Ball) Bounds() (left, right, top, bottom float64) {
	return ball.Position.X - ball.Radius,
		ball.Position.X + ball.Radius,
		ball.Position.Y - ball.Radius,
		ball.Position.Y + ball.Radius
}
