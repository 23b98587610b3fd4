package audio

import (
	"fmt"
	"io"
	"math"
	"sync"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/gopxl/beep"
)

const (
	recorderBitDepth = 16
	recorderChannels = 2
	wavFormatPCM     = 1
)

// Recorder tees a stream into a 16-bit stereo WAV file
type Recorder struct {
	mu      sync.Mutex
	out     io.WriteSeeker
	enc     *wav.Encoder
	buf     *goaudio.IntBuffer
	source  beep.Streamer
	written int
	closed  bool
}

// NewRecorder creates a recorder writing to w at the given sample rate
func NewRecorder(w io.WriteSeeker, sampleRate int) *Recorder {
	return &Recorder{
		out: w,
		enc: wav.NewEncoder(w, sampleRate, recorderBitDepth, recorderChannels, wavFormatPCM),
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: recorderChannels, SampleRate: sampleRate},
			SourceBitDepth: recorderBitDepth,
		},
	}
}

// Wrap sets the stream to record and returns the recorder as its pass-through
func (r *Recorder) Wrap(s beep.Streamer) beep.Streamer {
	r.mu.Lock()
	r.source = s
	r.mu.Unlock()
	return r
}

func (r *Recorder) Stream(samples [][2]float64) (n int, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.source == nil {
		return 0, false
	}
	n, ok = r.source.Stream(samples)
	if r.closed || n == 0 {
		return n, ok
	}

	data := r.buf.Data[:0]
	for _, s := range samples[:n] {
		data = append(data, toPCM16(s[0]), toPCM16(s[1]))
	}
	r.buf.Data = data
	if err := r.enc.Write(r.buf); err == nil {
		r.written += n
	}
	return n, ok
}

func (r *Recorder) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.source == nil {
		return nil
	}
	return r.source.Err()
}

// Frames returns the number of stereo frames written so far
func (r *Recorder) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.written
}

// Close finalizes the WAV header; the stream keeps passing through afterwards
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrRecorderClosed
	}
	r.closed = true
	if err := r.enc.Close(); err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	if c, ok := r.out.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func toPCM16(v float64) int {
	v = math.Max(-1, math.Min(1, v))
	return int(math.Round(v * math.MaxInt16))
}
