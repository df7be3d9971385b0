package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(48000)

// Tone is a sine note of fixed length.
type Tone struct {
	Frequency int
	Duration  time.Duration
}

var (
	paddleHitTone  = Tone{Frequency: 880, Duration: 50 * time.Millisecond}
	wallBounceTone = Tone{Frequency: 440, Duration: 40 * time.Millisecond}
	scoreTones     = []Tone{
		{Frequency: 660, Duration: 90 * time.Millisecond},
		{Frequency: 990, Duration: 140 * time.Millisecond},
	}
)

// newTone returns a streamer playing tone once at volume (0 is unchanged,
// negative is quieter, in halvings).
func newTone(sr beep.SampleRate, tone Tone, volume float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, float64(tone.Frequency))
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(sr.N(tone.Duration), sine),
		Base:     2,
		Volume:   volume,
	}, nil
}

// newMelody plays tones back to back.
func newMelody(sr beep.SampleRate, tones []Tone, volume float64) (beep.Streamer, error) {
	streamers := make([]beep.Streamer, 0, len(tones))
	for _, tone := range tones {
		streamer, err := newTone(sr, tone, volume)
		if err != nil {
			return nil, err
		}
		streamers = append(streamers, streamer)
	}
	return beep.Seq(streamers...), nil
}
