package game

// Horizontal edge checks truncate the position to an integer, the top edge
// compares the raw float.

func (ball *Ball) CollidesTopWall() bool {
	return ball.Position.Y <= 0
}

func (ball *Ball) CollidesBottomWall(screenHeight int) bool {
	return int(ball.Position.Y) >= screenHeight
}

func (ball *Ball) CollidesRightWall(screenWidth int) bool {
	return int(ball.Position.X) >= screenWidth
}

func (ball *Ball) CollidesLeftWall() bool {
	return int(ball.Position.X) <= 0
}

// InterceptsPaddle reports whether the ball's bounding square overlaps the
// paddle rectangle. Touching edges do not count.
func (ball *Ball) InterceptsPaddle(paddle *Paddle) bool {
	ballLeft, ballRight, ballTop, ballBottom := ball.Bounds()

	paddleLeft := paddle.Position.X
	paddleRight := paddle.Position.X + paddle.Size.X
	paddleTop := paddle.Position.Y
	paddleBottom := paddle.Position.Y + paddle.Size.Y

	return ballLeft < paddleRight &&
		ballRight > paddleLeft &&
		ballTop < paddleBottom &&
		ballBottom > paddleTop
}

// collidePaddles flips the horizontal velocity on every frame the ball
// overlaps a paddle, not only on entry. A ball that is still inside a paddle
// on the next frame flips back.
func (g *GameState) collidePaddles() {
	if g.Ball.InterceptsPaddle(&g.Left) || g.Ball.InterceptsPaddle(&g.Right) {
		g.Ball.ReflectVelocityX()
		g.Events |= EventPaddleHit
	}
}

func (g *GameState) collideWalls() {
	width, height := g.config.ScreenWidth, g.config.ScreenHeight

	if g.Ball.CollidesBottomWall(height) || g.Ball.CollidesTopWall() {
		g.Ball.ReflectVelocityY()
		g.Events |= EventWallBounce
	}

	if g.Ball.CollidesRightWall(width) {
		g.Score.Left++
		g.resetBall()
		g.Events |= EventLeftScored
	} else if g.Ball.CollidesLeftWall() {
		g.Score.Right++
		g.resetBall()
		g.Events |= EventRightScored
	}
}
