package driver

import "time"

// Tone is one voiced bar
type Tone struct {
	Index    int
	Value    int
	Hz       float64
	Duration time.Duration
	Volume   float64
}

// ToneEmitter maps bar heights onto pitches, base + value*perUnit, and
// hands each tone to an optional sink. It remembers the last tone so a
// status line can show it.
type ToneEmitter struct {
	BaseHz    float64
	HzPerUnit float64
	Duration  time.Duration
	Volume    float64
	Sink      func(Tone)

	last   Tone
	played int
}

// NewToneEmitter returns an emitter with the classic 200Hz + 2Hz/unit curve
func NewToneEmitter(volume float64) *ToneEmitter {
	return &ToneEmitter{
		BaseHz:    200,
		HzPerUnit: 2,
		Duration:  50 * time.Millisecond,
		Volume:    volume,
	}
}

// Pitch returns the frequency for a bar height
func (e *ToneEmitter) Pitch(value int) float64 {
	return e.BaseHz + float64(value)*e.HzPerUnit
}

// Play implements SoundEmitter
func (e *ToneEmitter) Play(index, value int) {
	if e.Volume <= 0 {
		return
	}
	t := Tone{
		Index:    index,
		Value:    value,
		Hz:       e.Pitch(value),
		Duration: e.Duration,
		Volume:   e.Volume,
	}
	e.last = t
	e.played++
	if e.Sink != nil {
		e.Sink(t)
	}
}

// Last returns the most recent tone and whether any was played
func (e *ToneEmitter) Last() (Tone, bool) {
	return e.last, e.played > 0
}

// Played returns how many tones were emitted
func (e *ToneEmitter) Played() int {
	return e.played
}
