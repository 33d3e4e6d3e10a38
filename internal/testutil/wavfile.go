package testutil

import (
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WritePCMWAV writes interleaved integer samples as a PCM WAV file in t's
// temp dir and returns its path.
func WritePCMWAV(t *testing.T, name string, sampleRate, channels, bitDepth int, data []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, channels, 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: channels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("close encoder %s: %v", path, err)
	}

	return path
}

// WriteFloatWAV writes interleaved samples as a 32-bit IEEE float WAV file
// in t's temp dir and returns its path.
func WriteFloatWAV(t *testing.T, name string, sampleRate, channels int, data []float32) string {
	t.Helper()

	const (
		bitsPerSample = 32
		formatFloat   = 3
	)

	blockAlign := channels * bitsPerSample / 8
	dataSize := len(data) * bitsPerSample / 8

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()

	le := binary.LittleEndian
	header := []any{
		[4]byte{'R', 'I', 'F', 'F'},
		uint32(36 + dataSize),
		[4]byte{'W', 'A', 'V', 'E'},
		[4]byte{'f', 'm', 't', ' '},
		uint32(16),
		uint16(formatFloat),
		uint16(channels),
		uint32(sampleRate),
		uint32(sampleRate * blockAlign),
		uint16(blockAlign),
		uint16(bitsPerSample),
		[4]byte{'d', 'a', 't', 'a'},
		uint32(dataSize),
	}
	for _, field := range header {
		if err := binary.Write(f, le, field); err != nil {
			t.Fatalf("write header %s: %v", path, err)
		}
	}

	raw := make([]byte, dataSize)
	for i, v := range data {
		le.PutUint32(raw[i*4:], math.Float32bits(v))
	}
	if _, err := f.Write(raw); err != nil {
		t.Fatalf("write samples %s: %v", path, err)
	}

	return path
}
