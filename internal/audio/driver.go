package audio

import (
	"errors"
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/gordonklaus/portaudio"
)

const (
	DriverPortAudio = "portaudio"
	DriverBeep      = "beep"
)

var ErrUnknownDriver = errors.New("audio: unknown driver")

// Start plays h through the named driver. The returned func stops
// playback and releases the device.
func Start(driver string, h *Hum) (func(), error) {
	switch driver {
	case DriverPortAudio:
		return startPortAudio(h)
	case DriverBeep:
		return startBeep(h)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driver)
}

func startPortAudio(h *Hum) (func(), error) {
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("audio: portaudio init: %w", err)
	}

	// Output Only (0 In, 2 Out)
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, func(out [][]float32) {
		h.Fill(out[0], out[1])
	})
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("audio: open stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return nil, fmt.Errorf("audio: start stream: %w", err)
	}

	return func() {
		stream.Stop()
		stream.Close()
		portaudio.Terminate()
	}, nil
}

func startBeep(h *Hum) (func(), error) {
	sr := beep.SampleRate(SampleRate)
	if err := speaker.Init(sr, sr.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(h.Streamer())
	return func() {
		speaker.Clear()
		speaker.Close()
	}, nil
}

// streamer adapts Hum to beep.Streamer.
type streamer struct {
	h           *Hum
	left, right []float32
}

func (h *Hum) Streamer() beep.Streamer { return &streamer{h: h} }

func (s *streamer) Stream(samples [][2]float64) (n int, ok bool) {
	if cap(s.left) < len(samples) {
		s.left = make([]float32, len(samples))
		s.right = make([]float32, len(samples))
	}
	left, right := s.left[:len(samples)], s.right[:len(samples)]
	s.h.Fill(left, right)
	for i := range samples {
		samples[i][0] = float64(left[i])
		samples[i][1] = float64(right[i])
	}
	return len(samples), true
}

func (s *streamer) Err() error {
	return nil
}
