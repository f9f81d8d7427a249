// Package audio sounds the buzzer while the sound timer runs.
package audio

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	toneHz     = 440
	volume     = 0.2
)

// Buzzer plays a looping tone that is paused while inactive.
type Buzzer struct {
	ctrl   *beep.Ctrl
	active bool
}

// New initializes the speaker with a generated square wave tone.
func New() (*Buzzer, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}
	return start(squareWave(sampleRate, toneHz)), nil
}

// NewFromFile initializes the speaker with a looped mp3 sample.
func NewFromFile(path string) (*Buzzer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening beep sample: %w", err)
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decoding beep sample: %w", err)
	}
	defer streamer.Close()

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}
	return start(beep.Loop(-1, buffer.Streamer(0, buffer.Len()))), nil
}

func start(tone beep.Streamer) *Buzzer {
	ctrl := &beep.Ctrl{Streamer: tone, Paused: true}
	speaker.Play(ctrl)
	return &Buzzer{ctrl: ctrl}
}

// SetActive starts or pauses the tone.
func (b *Buzzer) SetActive(on bool) {
	if on == b.active {
		return
	}
	b.active = on

	speaker.Lock()
	b.ctrl.Paused = !on
	speaker.Unlock()
}

func squareWave(sr beep.SampleRate, freq float64) beep.Streamer {
	period := float64(sr) / freq
	var pos float64
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := volume
			if math.Mod(pos, period) >= period/2 {
				v = -volume
			}
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return len(samples), true
	})
}
