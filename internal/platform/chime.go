package platform

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"studytimer/internal/core/model"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
)

// ErrAudioUnavailable indicates the speaker could not be opened.
var ErrAudioUnavailable = errors.New("audio output unavailable")

const (
	chimeSampleRate = beep.SampleRate(44100)
	chimeLength     = 450 * time.Millisecond
	chimeAmplitude  = 0.4
	focusToneHz     = 880.0
	restToneHz      = 660.0
)

// Chime plays a short synthesized tone when an interval finishes.
type Chime struct {
	once    sync.Once
	initErr error
	volume  float64
}

// NewChime creates a chime. The speaker is opened on first use.
func NewChime() *Chime {
	return &Chime{}
}

// Play sounds the tone for the interval that just finished.
func (chime *Chime) Play(finished model.Mode) error {
	if err := chime.init(); err != nil {
		return err
	}

	frequency := focusToneHz
	if finished == model.ModeRest {
		frequency = restToneHz
	}
	tone := beep.Take(chimeSampleRate.N(chimeLength), sineTone(chimeSampleRate, frequency))
	speaker.Play(&effects.Volume{
		Streamer: tone,
		Base:     2,
		Volume:   chime.volume,
		Silent:   false,
	})
	return nil
}

func (chime *Chime) init() error {
	chime.once.Do(func() {
		if err := speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/10)); err != nil {
			chime.initErr = fmt.Errorf("%w: %v", ErrAudioUnavailable, err)
		}
	})
	return chime.initErr
}

func sineTone(sampleRate beep.SampleRate, frequency float64) beep.Streamer {
	step := 2 * math.Pi * frequency / float64(sampleRate)
	position := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			value := chimeAmplitude * math.Sin(step*float64(position))
			samples[i][0] = value
			samples[i][1] = value
			position++
		}
		return len(samples), true
	})
}
