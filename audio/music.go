package audio

import (
	"fmt"
	"io"
	"sync"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/go-mp3"
)

// mp3 output is always 16-bit little endian stereo
const mp3FrameBytes = 4

// MusicStream loops a decoded MP3 forever
type MusicStream struct {
	mu     sync.Mutex
	dec    *mp3.Decoder
	src    io.Closer
	buf    []byte
	err    error
	closed bool
}

// NewMusicStream decodes r; r must support seeking for the loop to restart
func NewMusicStream(r io.ReadSeeker) (*MusicStream, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("mp3: %w", err)
	}
	m := &MusicStream{dec: dec}
	if c, ok := r.(io.Closer); ok {
		m.src = c
	}
	return m, nil
}

// SampleRate reports the decoded rate
func (m *MusicStream) SampleRate() beep.SampleRate {
	return beep.SampleRate(m.dec.SampleRate())
}

// Resampled returns the stream converted to the target rate
func (m *MusicStream) Resampled(target beep.SampleRate) beep.Streamer {
	if m.SampleRate() == target {
		return m
	}
	return beep.Resample(4, m.SampleRate(), target, m)
}

func (m *MusicStream) Stream(samples [][2]float64) (n int, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed || m.err != nil {
		return 0, false
	}

	need := len(samples) * mp3FrameBytes
	if cap(m.buf) < need {
		m.buf = make([]byte, need)
	}
	buf := m.buf[:need]

	filled := 0
	rewound := false
	for filled < need {
		k, err := m.dec.Read(buf[filled:])
		filled += k
		if err == io.EOF {
			// Empty after a rewind means nothing decodable
			if rewound && k == 0 {
				break
			}
			if _, serr := m.dec.Seek(0, io.SeekStart); serr != nil {
				m.err = serr
				break
			}
			rewound = true
			continue
		}
		if err != nil {
			m.err = err
			break
		}
		if k > 0 {
			rewound = false
		}
	}

	n = decodePCM16(buf[:filled-filled%mp3FrameBytes], samples)
	return n, n > 0
}

func (m *MusicStream) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// Close stops the stream and releases the source
func (m *MusicStream) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	m.closed = true
	if m.src != nil {
		return m.src.Close()
	}
	return nil
}

// decodePCM16 converts interleaved 16-bit LE stereo into samples
func decodePCM16(b []byte, samples [][2]float64) int {
	n := min(len(b)/mp3FrameBytes, len(samples))
	for i := 0; i < n; i++ {
		o := i * mp3FrameBytes
		l := int16(uint16(b[o]) | uint16(b[o+1])<<8)
		r := int16(uint16(b[o+2]) | uint16(b[o+3])<<8)
		samples[i][0] = float64(l) / 32768
		samples[i][1] = float64(r) / 32768
	}
	return n
}
