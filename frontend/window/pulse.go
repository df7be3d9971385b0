package window

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const pulsePeakScale = 1.5

// scorePulse briefly enlarges the score text after a point.
type scorePulse struct {
	tween    *gween.Tween
	scale    float32
	duration float32
}

func newScorePulse(duration float32) *scorePulse {
	return &scorePulse{scale: 1, duration: duration}
}

func (p *scorePulse) Start() {
	p.tween = gween.New(pulsePeakScale, 1, p.duration, ease.OutQuad)
	p.scale = pulsePeakScale
}

// Update advances the pulse by dt seconds.
func (p *scorePulse) Update(dt float32) {
	if p.tween == nil {
		return
	}
	current, finished := p.tween.Update(dt)
	p.scale = current
	if finished {
		p.tween = nil
		p.scale = 1
	}
}

func (p *scorePulse) Scale() float32 { return p.scale }

func (p *scorePulse) Active() bool { return p.tween != nil }
