package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
)

// MusicNote is the length of one step of the background riff.
const MusicNote = 180 * time.Millisecond

// musicRiff is one bar pair of the background loop in Hz; 0 rests.
var musicRiff = []float64{
	330, 392, 440, 392, 330, 0, 294, 330,
	392, 392, 440, 494, 440, 392, 330, 0,
}

// music loops musicRiff forever. Position and Seek address one pass of the
// loop, so Seek(0) starts the tune over.
type music struct {
	rate     beep.SampleRate
	noteLen  int
	attack   int
	position int
	phase    float64
}

// NewMusic builds the endless background tune.
func NewMusic(rate beep.SampleRate) beep.StreamSeeker {
	return &music{
		rate:    rate,
		noteLen: rate.N(MusicNote),
		attack:  max(rate.N(5*time.Millisecond), 1),
	}
}

func (m *music) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		at := m.position % m.noteLen
		freq := musicRiff[m.position/m.noteLen]

		var val float64
		if freq > 0 {
			gain := 1 - 0.7*float64(at)/float64(m.noteLen)
			if at < m.attack {
				gain *= float64(at) / float64(m.attack)
			}
			val = sample(WaveSquare, m.phase, nil) * gain
			m.phase += freq / float64(m.rate)
			m.phase -= math.Floor(m.phase)
		}
		samples[i][0] = val
		samples[i][1] = val

		m.position = (m.position + 1) % m.Len()
		if at == m.noteLen-1 {
			m.phase = 0
		}
	}
	return len(samples), true
}

func (m *music) Err() error { return nil }

func (m *music) Len() int { return m.noteLen * len(musicRiff) }

func (m *music) Position() int { return m.position }

func (m *music) Seek(p int) error {
	if p < 0 || p >= m.Len() {
		return fmt.Errorf("music: seek %d outside [0, %d)", p, m.Len())
	}
	m.position = p
	m.phase = 0
	return nil
}
