package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/wav"
	"github.com/gopxl/beep"
)

func TestRecorderWritesWav(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	rate := beep.SampleRate(44100)
	rec := NewRecorder(f, int(rate))
	out := rec.Wrap(NewOscillator(440, 10*time.Millisecond, WaveSine, rate))

	buf := make([][2]float64, 100)
	for {
		if _, ok := out.Stream(buf); !ok {
			break
		}
	}

	frames := rate.N(10 * time.Millisecond)
	if rec.Frames() != frames {
		t.Errorf("Frames() = %d, want %d", rec.Frames(), frames)
	}
	if err := rec.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := rec.Close(); !errors.Is(err, ErrRecorderClosed) {
		t.Errorf("second Close = %v, want ErrRecorderClosed", err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()

	dec := wav.NewDecoder(in)
	if !dec.IsValidFile() {
		t.Fatal("recorded file is not a valid wav")
	}
	if dec.NumChans != 2 || dec.BitDepth != 16 || dec.SampleRate != 44100 {
		t.Errorf("header = %d ch, %d bit, %d Hz", dec.NumChans, dec.BitDepth, dec.SampleRate)
	}
	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		t.Fatal(err)
	}
	if len(pcm.Data) != frames*2 {
		t.Errorf("decoded %d values, want %d", len(pcm.Data), frames*2)
	}
}

func TestRecorderPassThroughAfterClose(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "x.wav"))
	if err != nil {
		t.Fatal(err)
	}
	rec := NewRecorder(f, 8000)
	out := rec.Wrap(constStreamer(0.5))
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}

	buf := make([][2]float64, 10)
	n, ok := out.Stream(buf)
	if n != 10 || !ok || buf[0][0] != 0.5 {
		t.Errorf("Stream after Close = %d, %v, %v", n, ok, buf[0])
	}
	if rec.Frames() != 0 {
		t.Errorf("closed recorder wrote %d frames", rec.Frames())
	}
}

func TestToPCM16(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{1, 32767},
		{-1, -32767},
		{2, 32767},
		{-3, -32767},
	}
	for _, tt := range tests {
		if got := toPCM16(tt.in); got != tt.want {
			t.Errorf("toPCM16(%f) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
