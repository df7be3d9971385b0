// Package window hosts the game in a desktop window through ebiten.
package window

import (
	"bytes"
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lguibr/duopong/game"
	"github.com/lguibr/duopong/utils"
)

const windowTitle = "Pong"

var (
	backgroundColor = color.Black
	entityColor     = color.White
	fontColor       = color.White
)

// DefaultBindings gives each direction two keys.
var DefaultBindings = game.Bindings[ebiten.Key]{
	game.ActionLeftUp:    {ebiten.KeyW, ebiten.KeyD},
	game.ActionLeftDown:  {ebiten.KeyS, ebiten.KeyA},
	game.ActionRightUp:   {ebiten.KeyArrowUp, ebiten.KeyArrowRight},
	game.ActionRightDown: {ebiten.KeyArrowDown, ebiten.KeyArrowLeft},
}

// Game implements ebiten.Game around a Session.
type Game struct {
	ctx      context.Context
	session  *game.Session
	config   utils.Config
	bindings game.Bindings[ebiten.Key]
	pressed  func(ebiten.Key) bool
	face     *text.GoTextFace
	pulse    *scorePulse
	frame    game.Snapshot
}

// NewGame prepares a window game for session. The game ends once ctx is
// done.
func NewGame(ctx context.Context, session *game.Session) (*Game, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(fonts.PressStart2P_ttf))
	if err != nil {
		return nil, fmt.Errorf("window: load score font: %w", err)
	}
	g := newGame(ctx, session, ebiten.IsKeyPressed)
	g.face = &text.GoTextFace{
		Source: source,
		Size:   float64(g.config.ScoreFontSize),
	}
	return g, nil
}

func newGame(ctx context.Context, session *game.Session, pressed func(ebiten.Key) bool) *Game {
	cfg := session.State.Config()
	return &Game{
		ctx:      ctx,
		session:  session,
		config:   cfg,
		bindings: DefaultBindings,
		pressed:  pressed,
		pulse:    newScorePulse(cfg.ScorePulseDuration),
		frame:    session.State.Snapshot(),
	}
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil || g.pressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.frame = g.session.Tick(g.bindings.Resolve(g.pressed))
	if g.frame.Events.Scored() {
		g.pulse.Start()
	}
	g.pulse.Update(1 / float32(g.config.FramesPerSecond))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for _, paddle := range []game.Rect{g.frame.LeftPaddle, g.frame.RightPaddle} {
		vector.DrawFilledRect(screen,
			float32(paddle.X), float32(paddle.Y),
			float32(paddle.Width), float32(paddle.Height),
			entityColor, false)
	}

	ball := g.frame.Ball
	vector.DrawFilledCircle(screen, float32(ball.X), float32(ball.Y), float32(ball.Radius), entityColor, true)

	if g.face == nil {
		return
	}
	x, y := g.scoreOrigin()
	op := &text.DrawOptions{}
	scale := float64(g.pulse.Scale())
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(fontColor)
	text.Draw(screen, g.frame.ScoreText, g.face, op)
}

// scoreOrigin is the top-left of the score text: one font size left of the
// horizontal centre, at mid height.
func (g *Game) scoreOrigin() (float64, float64) {
	return float64(g.config.ScreenWidth/2 - g.config.ScoreFontSize), float64(g.config.ScreenHeight / 2)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}

// Run opens the window and blocks until it is closed, Escape is pressed or
// ctx ends.
func Run(ctx context.Context, session *game.Session) error {
	g, err := NewGame(ctx, session)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(g.config.ScreenWidth, g.config.ScreenHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(g.config.FramesPerSecond)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: run game: %w", err)
	}
	return nil
}
