// Package audio plays a soft hum whose pitch and stereo position follow
// the mass as it sweeps across the grid.
package audio

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/mjibson/go-dsp/fft"

	"github.com/VanDerGroot/gravityvisualizer/internal/scene"
)

const (
	SampleRate = 44100
	BufferSize = 1024

	// BaseFreq is the pitch with the mass at the grid center. The pitch
	// spans one octave either side across the animation bound.
	BaseFreq = 110.0
	Volume   = 0.25
)

// Hum is the synthesizer. Fill runs on the audio driver's thread while
// OnFrame is called from the render loop; position is the only state
// they share.
type Hum struct {
	mu       sync.Mutex
	position float64 // mass offset scaled to [-1, 1]
	bound    float64

	// Synthesis state, owned by the audio thread.
	time        float64
	freq        float64
	pan         float64
	filterState [2]float64

	// Analysis of the most recent BufferSize output samples.
	window   []float64
	filled   int
	levelsMu sync.Mutex
	bass     float64
	mid      float64
	high     float64
}

// NewHum returns a hum for a mass that oscillates within ±bound.
func NewHum(bound float64) *Hum {
	if bound <= 0 {
		bound = 1
	}
	return &Hum{
		bound:  bound,
		freq:   BaseFreq,
		window: make([]float64, BufferSize),
	}
}

// SetOffset moves the sound source to the mass offset.
func (h *Hum) SetOffset(offset float64) {
	p := offset / h.bound
	p = math.Max(-1, math.Min(1, p))
	h.mu.Lock()
	h.position = p
	h.mu.Unlock()
}

// OnFrame makes Hum a scene.Observer.
func (h *Hum) OnFrame(st scene.State) { h.SetOffset(st.Animation.Offset) }

// Position returns the normalized source position.
func (h *Hum) Position() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.position
}

// TargetFreq is the pitch for a normalized position.
func TargetFreq(position float64) float64 {
	return BaseFreq * math.Pow(2, position)
}

// Triangle Wave: Smooth, flute-like, no harsh buzz
func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

// Low Pass Filter (One Pole)
func lpf(sample, cutoff, dt, state float64) float64 {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	return state + alpha*(sample-state)
}

// Fill writes len(left) stereo samples. Pitch and pan glide toward the
// current position to avoid clicks.
func (h *Hum) Fill(left, right []float32) {
	pos := h.Position()
	targetFreq := TargetFreq(pos)
	dt := 1.0 / float64(SampleRate)

	n := min(len(left), len(right))
	for i := 0; i < n; i++ {
		h.freq += (targetFreq - h.freq) * 0.001
		h.pan += (pos - h.pan) * 0.001
		// Integrate phase so glides stay continuous.
		h.time += h.freq * dt

		s := 0.7*triangle(h.time) + 0.3*triangle(h.time*1.5)
		h.filterState[0] = lpf(s, 600, dt, h.filterState[0])
		h.filterState[1] = lpf(s, 600, dt, h.filterState[1])

		gl := math.Sqrt((1 - h.pan) / 2)
		gr := math.Sqrt((1 + h.pan) / 2)
		left[i] = float32(h.filterState[0] * gl * Volume)
		right[i] = float32(h.filterState[1] * gr * Volume)

		h.analyze((float64(left[i]) + float64(right[i])) / 2)
	}
}

func (h *Hum) analyze(sample float64) {
	h.window[h.filled] = sample
	h.filled++
	if h.filled < len(h.window) {
		return
	}
	h.filled = 0

	buf := make([]float64, len(h.window))
	for i, v := range h.window {
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(len(h.window)-1)))
		buf[i] = v * w
	}
	spectrum := fft.FFTReal(buf)

	// Bucketing
	binHz := float64(SampleRate) / float64(len(buf))
	var bass, mid, high float64
	for i := 1; i < len(buf)/2; i++ {
		mag := cmplx.Abs(spectrum[i]) / float64(len(buf))
		switch f := float64(i) * binHz; {
		case f < 250:
			bass += mag
		case f < 2000:
			mid += mag
		default:
			high += mag
		}
	}

	h.levelsMu.Lock()
	h.bass, h.mid, h.high = bass, mid, high
	h.levelsMu.Unlock()
}

// Levels returns the spectral energy of the last analyzed block split
// into bass (<250 Hz), mid (<2 kHz) and high bands.
func (h *Hum) Levels() (bass, mid, high float64) {
	h.levelsMu.Lock()
	defer h.levelsMu.Unlock()
	return h.bass, h.mid, h.high
}
