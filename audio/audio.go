// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// Buffer is a complete, fixed-length block of interleaved float32 samples.
// Samples are nominally in [-1, 1] but intermediate stages may exceed that.
type Buffer struct {
	// Data holds interleaved samples: frame f, channel c is Data[f*Channels+c].
	Data []float32
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels int
	// SampleRate in Hz.
	SampleRate int
}

// NewBuffer allocates a silent buffer of the given number of frames.
func NewBuffer(channels, sampleRate, frames int) *Buffer {
	return &Buffer{
		Data:       make([]float32, channels*frames),
		Channels:   channels,
		SampleRate: sampleRate,
	}
}

// FromSamples wraps interleaved samples in a Buffer and validates it.
// The slice is copied.
func FromSamples(data []float32, channels, sampleRate int) (*Buffer, error) {
	b := &Buffer{
		Data:       slices.Clone(data),
		Channels:   channels,
		SampleRate: sampleRate,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate checks the buffer invariants: positive sample rate, at least one
// channel, and a sample count that is a whole number of frames.
func (b *Buffer) Validate() error {
	if b == nil {
		return ErrNilBuffer
	}
	if b.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, b.SampleRate)
	}
	if b.Channels <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidChannels, b.Channels)
	}
	if len(b.Data)%b.Channels != 0 {
		return fmt.Errorf("%w: %d samples, %d channels", ErrMisalignedSamples, len(b.Data), b.Channels)
	}

	return nil
}

// Frames returns the number of sample frames (samples per channel).
func (b *Buffer) Frames() int {
	if b.Channels == 0 {
		return 0
	}

	return len(b.Data) / b.Channels
}

// Duration returns the playing time of the buffer.
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate == 0 {
		return 0
	}

	return time.Duration(b.Frames()) * time.Second / time.Duration(b.SampleRate)
}

// Nyquist returns half the sample rate in Hz.
func (b *Buffer) Nyquist() float64 {
	return float64(b.SampleRate) / 2
}

// Clone returns a deep copy; the copy shares no memory with b.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{
		Data:       slices.Clone(b.Data),
		Channels:   b.Channels,
		SampleRate: b.SampleRate,
	}
}

// Channel de-interleaves channel c into a new float64 slice.
func (b *Buffer) Channel(c int) []float64 {
	frames := b.Frames()
	out := make([]float64, frames)
	for f := range frames {
		out[f] = float64(b.Data[f*b.Channels+c])
	}

	return out
}

// SetChannel interleaves samples back into channel c.
// len(samples) must equal b.Frames().
func (b *Buffer) SetChannel(c int, samples []float64) {
	for f, v := range samples {
		b.Data[f*b.Channels+c] = float32(v)
	}
}

// Decoder reads a complete encoded stream into a Buffer.
type Decoder interface {
	Decode(r io.Reader) (*Buffer, error)
}

// Encoder writes a Buffer in a container format. Encoders that patch headers
// after the payload need an io.WriteSeeker.
type Encoder interface {
	Encode(w io.WriteSeeker, b *Buffer) error
}

// Registry maps format keys (file extensions such as "wav", "mp3", "ogg")
// to decoders. Keys are case-insensitive and a leading dot is ignored.
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func normaliseFormat(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[normaliseFormat(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[normaliseFormat(format)]
	return d, ok
}

// ForPath picks a decoder by the extension of path.
func (r *Registry) ForPath(path string) (Decoder, error) {
	ext := filepath.Ext(path)
	d, ok := r.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	return d, nil
}

// Formats lists the registered format keys in sorted order.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	keys := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
