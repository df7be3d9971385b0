package game

type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type Circle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// Snapshot is everything a renderer needs to draw one frame.
type Snapshot struct {
	Frame       uint64 `json:"frame"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	LeftPaddle  Rect   `json:"leftPaddle"`
	RightPaddle Rect   `json:"rightPaddle"`
	Ball        Circle `json:"ball"`
	Score       Score  `json:"score"`
	ScoreText   string `json:"scoreText"`
	Events      Events `json:"events"`
}

func (g *GameState) Snapshot() Snapshot {
	return Snapshot{
		Width:       g.config.ScreenWidth,
		Height:      g.config.ScreenHeight,
		LeftPaddle:  g.Left.Rect(),
		RightPaddle: g.Right.Rect(),
		Ball: Circle{
			X:      g.Ball.Position.X,
			Y:      g.Ball.Position.Y,
			Radius: g.Ball.Radius,
		},
		Score:     g.Score,
		ScoreText: g.Score.String(),
		Events:    g.Events,
	}
}
