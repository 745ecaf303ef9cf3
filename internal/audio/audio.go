package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/pkg/errors"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var (
	initialized bool
)

// Init initializes the audio system
func Init() error {
	if initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return errors.Wrap(err, "init speaker")
	}

	initialized = true
	return nil
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// oscillator streams duration worth of samples from shape, which maps the
// position within one cycle, in [0, 1), to an amplitude
func oscillator(freq float64, duration time.Duration, shape func(cycle float64) float64) beep.Streamer {
	remaining := sampleRate.N(duration)
	step := freq / float64(sampleRate)
	cycle := 0.0

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if remaining <= 0 {
				return i, false
			}
			v := shape(cycle)
			samples[i][0], samples[i][1] = v, v
			cycle = math.Mod(cycle+step, 1)
			remaining--
		}
		return len(samples), true
	})
}

// tone is a soft sine, used for the ball on the ground
func tone(freq float64, duration time.Duration) beep.Streamer {
	return oscillator(freq, duration, func(c float64) float64 {
		return 0.3 * math.Sin(2*math.Pi*c)
	})
}

// squareWave is the sharper 8-bit voice used for the club and penalties
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	return oscillator(freq, duration, func(c float64) float64 {
		if c > 0.5 {
			return -0.2
		}
		return 0.2
	})
}

// bounceVolume maps impact speed to a gain in [0.2, 1]
func bounceVolume(impact float64) float64 {
	v := impact / 40
	if v < 0.2 {
		v = 0.2
	}
	if v > 1 {
		v = 1
	}
	return v
}

// scaled multiplies every sample by gain
func scaled(s beep.Streamer, gain float64) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		n, ok = s.Stream(samples)
		for i := 0; i < n; i++ {
			samples[i][0] *= gain
			samples[i][1] *= gain
		}
		return n, ok
	})
}

// PlayStroke plays the club hitting the ball
func PlayStroke() {
	if !initialized {
		return
	}
	speaker.Play(squareWave(880, 40*time.Millisecond))
}

// PlayBounce plays a thud whose loudness follows the impact speed
func PlayBounce(impact float64) {
	if !initialized {
		return
	}
	speaker.Play(scaled(tone(220, 30*time.Millisecond), bounceVolume(impact)))
}

// PlayRest plays a short chime when the ball settles
func PlayRest() {
	if !initialized {
		return
	}
	speaker.Play(beep.Seq(tone(660, 60*time.Millisecond), tone(990, 80*time.Millisecond)))
}

// PlayPenalty plays the out of bounds jingle
func PlayPenalty() {
	if !initialized {
		return
	}
	speaker.Play(beep.Seq(
		squareWave(660, 100*time.Millisecond),
		squareWave(440, 100*time.Millisecond),
		squareWave(330, 150*time.Millisecond),
	))
}
