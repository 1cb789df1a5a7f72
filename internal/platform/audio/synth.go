package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

// Note frequencies in Hz.
const (
	noteC5 = 523.25
	noteA2 = 110.0
	noteE2 = 82.41
)

// envelope fades a stream in over attack and out over release, then stops
// it after duration.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   sampleRate.N(attack),
		release:  sampleRate.N(release),
		total:    sampleRate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if rest := e.total - e.pos; len(samples) > rest {
		samples = samples[:rest]
	}

	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if remaining := e.total - e.pos; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales a stream linearly. Zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone returns an enveloped sine or square note. It falls back to silence
// for frequencies the generators reject.
func tone(freq float64, duration time.Duration, square bool) beep.Streamer {
	var (
		s   beep.Streamer
		err error
	)
	if square {
		s, err = generators.SquareTone(sampleRate, freq)
	} else {
		s, err = generators.SineTone(sampleRate, freq)
	}
	if err != nil {
		s = beep.Silence(-1)
	}
	return newEnvelope(s, duration, 5*time.Millisecond, duration/2)
}

// chimeFrequency rises a semitone per combo step, capped at two octaves.
func chimeFrequency(combo int) float64 {
	step := min(max(combo-1, 0), 24)
	return noteC5 * math.Pow(2, float64(step)/12)
}

// chime is the match sound: the combo note plus a quieter octave.
func chime(combo int) beep.Streamer {
	freq := chimeFrequency(combo)
	return beep.Mix(
		withVolume(tone(freq, 180*time.Millisecond, false), 0.7),
		withVolume(tone(freq*2, 120*time.Millisecond, false), 0.3),
	)
}

// buzz is the game over sound: two falling square notes.
func buzz() beep.Streamer {
	return withVolume(beep.Seq(
		tone(noteA2, 150*time.Millisecond, true),
		tone(noteE2, 300*time.Millisecond, true),
	), 0.4)
}

// musicLoop endlessly repeats a slow bass pattern.
func musicLoop() beep.Streamer {
	pattern := []float64{noteA2, noteA2 * 1.5, noteA2 * 2, noteA2 * 1.5}
	i := 0
	return beep.Iterate(func() beep.Streamer {
		freq := pattern[i%len(pattern)]
		i++
		return tone(freq, 400*time.Millisecond, false)
	})
}
