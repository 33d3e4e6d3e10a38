package codec

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	dspwav "github.com/mjibson/go-dsp/wav"
)

const (
	wavFormatPCM       = 1
	wavFormatIEEEFloat = 3
)

// WAV is a Codec for RIFF/WAVE files.
type WAV struct{}

// Decode reads an integer PCM or 32-bit float WAV file. 8-bit files, which
// store unsigned samples, are re-centred to signed values.
func (WAV) Decode(path string) (*Decoded, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("codec: could not open file: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	valid := decoder.IsValidFile()

	if decoder.WavAudioFormat == wavFormatIEEEFloat {
		if err := decoder.FwdToPCM(); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFile, path, err)
		}
		dataSize := decoder.PCMLen()
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return nil, fmt.Errorf("codec: rewind %s: %w", path, err)
		}
		return decodeFloatWAV(f, path, dataSize)
	}

	if !valid {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFile, path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("codec: could not read PCM buffer from %s: %w", path, err)
	}

	bitDepth := int(decoder.BitDepth)
	if bitDepth <= 0 || bitDepth > 32 {
		return nil, fmt.Errorf("%w: %s: %d-bit PCM", ErrUnsupported, path, bitDepth)
	}

	data := buf.Data
	if bitDepth == 8 {
		for i, v := range data {
			data[i] = v - 128
		}
	}

	d := &Decoded{
		SampleRate: buf.Format.SampleRate,
		Channels:   buf.Format.NumChannels,
		BitDepth:   bitDepth,
		Format:     FormatInt,
		Ints:       data,
	}
	if err := validateDecoded(d, path); err != nil {
		return nil, err
	}

	return d, nil
}

// decodeFloatWAV reads dataSize bytes of IEEE float samples. The count is
// taken from the data chunk because go-dsp rounds its own count down to a
// multiple of 8.
func decodeFloatWAV(r io.Reader, path string, dataSize int64) (*Decoded, error) {
	w, err := dspwav.New(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidFile, path, err)
	}
	if w.BitsPerSample != 32 {
		return nil, fmt.Errorf("%w: %s: %d-bit float", ErrUnsupported, path, w.BitsPerSample)
	}

	samples, err := w.ReadFloats(int(dataSize / int64(w.BitsPerSample/8)))
	if err != nil {
		return nil, fmt.Errorf("codec: could not read float samples from %s: %w", path, err)
	}

	floats := make([]float64, len(samples))
	for i, v := range samples {
		floats[i] = float64(v)
	}

	d := &Decoded{
		SampleRate: int(w.SampleRate),
		Channels:   int(w.NumChannels),
		BitDepth:   int(w.BitsPerSample),
		Format:     FormatFloat,
		Floats:     floats,
	}
	if err := validateDecoded(d, path); err != nil {
		return nil, err
	}

	return d, nil
}

// Encode writes samples as a 16-bit signed PCM mono WAV file.
func (WAV) Encode(path string, samples []float64, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrSampleRate, sampleRate)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("codec: could not create file: %w", err)
	}

	enc := wav.NewEncoder(f, sampleRate, 16, 1, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           PCM16(samples),
		SourceBitDepth: 16,
	}

	if err := enc.Write(buf); err != nil {
		f.Close()
		return fmt.Errorf("codec: encode %s: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("codec: finalise %s: %w", path, err)
	}

	return f.Close()
}
