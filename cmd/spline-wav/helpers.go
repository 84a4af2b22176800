package main

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"gonum.org/v1/gonum/floats"

	spline "github.com/tphakala/go-spline"
)

// wavPCMFormat is the WAV audio format tag for integer PCM.
const wavPCMFormat = 1

// wavInput holds the decoded input file: one float64 slice per channel,
// amplitudes normalized to [-1, 1].
type wavInput struct {
	channels [][]float64
	rate     int
	bitDepth int
}

// readWAVInput decodes a whole WAV file. The splines need the full knot set
// before any query, so the file is not streamed in chunks.
func readWAVInput(path string, verbose bool) (*wavInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read PCM data: %w", err)
	}

	format := buf.Format
	bitDepth := int(decoder.BitDepth)
	if verbose {
		log.Printf("Input format: %d Hz, %d channels, %d-bit",
			format.SampleRate, format.NumChannels, bitDepth)
	}

	channels, err := deinterleave(buf.Data, format.NumChannels, bitDepth)
	if err != nil {
		return nil, err
	}
	return &wavInput{
		channels: channels,
		rate:     format.SampleRate,
		bitDepth: bitDepth,
	}, nil
}

// deinterleave splits interleaved PCM frames into per-channel float slices
// scaled to [-1, 1].
func deinterleave(data []int, channels, bitDepth int) ([][]float64, error) {
	if channels < 1 {
		return nil, fmt.Errorf("invalid channel count: %d", channels)
	}
	scale, err := pcmScale(bitDepth)
	if err != nil {
		return nil, err
	}

	frames := len(data) / channels
	out := make([][]float64, channels)
	for ch := range out {
		out[ch] = make([]float64, frames)
	}
	for i := 0; i < frames; i++ {
		for ch := 0; ch < channels; ch++ {
			out[ch][i] = float64(data[i*channels+ch]) / scale
		}
	}
	return out, nil
}

// pcmScale returns the full-scale amplitude for a PCM bit depth.
func pcmScale(bitDepth int) (float64, error) {
	switch bitDepth {
	case 16, 24, 32:
		return float64(int64(1) << (bitDepth - 1)), nil
	default:
		return 0, fmt.Errorf("unsupported bit depth: %d", bitDepth)
	}
}

// evaluator is the query surface shared by the spline variants.
type evaluator interface {
	Evaluate(x spline.Float64) (spline.Float64, error)
}

// buildSpline constructs the requested spline variant over the samples.
// Hermite knot tangents are estimated by central differences, one-sided at
// the ends.
func buildSpline(method string, xs, ys []float64) (evaluator, error) {
	switch method {
	case "catmullrom":
		return spline.NewCatmullRomFloat64(xs, ys)
	case "natural":
		return spline.NewNaturalCubicFloat64(xs, ys)
	case "hermite":
		n := len(xs)
		if n < 2 {
			return nil, fmt.Errorf("hermite needs at least 2 samples, got %d", n)
		}
		dydxs := make([]float64, n)
		dydxs[0] = (ys[1] - ys[0]) / (xs[1] - xs[0])
		dydxs[n-1] = (ys[n-1] - ys[n-2]) / (xs[n-1] - xs[n-2])
		for i := 1; i < n-1; i++ {
			dydxs[i] = (ys[i+1] - ys[i-1]) / (xs[i+1] - xs[i-1])
		}
		return spline.NewHermiteFloat64(xs, ys, dydxs)
	default:
		return nil, fmt.Errorf("unknown method: %q", method)
	}
}

// resampleChannel rebuilds one channel on the target-rate grid. The grid is
// spanned inside the knot range, since the library refuses to extrapolate.
func resampleChannel(samples []float64, inRate, outRate int, method string) ([]float64, error) {
	n := len(samples)
	if n < 3 {
		return nil, fmt.Errorf("not enough samples to resample: %d", n)
	}

	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i) / float64(inRate)
	}
	sp, err := buildSpline(method, xs, samples)
	if err != nil {
		return nil, err
	}

	outN := int(float64(n) * float64(outRate) / float64(inRate))
	if outN < 2 {
		outN = 2
	}
	grid := make([]float64, outN)
	floats.Span(grid, xs[0], xs[n-1])

	out := make([]float64, outN)
	last := xs[n-1]
	for i, x := range grid {
		if x > last {
			// Guard against rounding at the top of the span.
			x = last
		}
		y, err := sp.Evaluate(spline.Float64(x))
		if err != nil {
			return nil, fmt.Errorf("evaluate at %v: %w", x, err)
		}
		out[i] = float64(y)
	}
	return out, nil
}

// writeWAVOutput interleaves the channels back to PCM and encodes the
// output file.
func writeWAVOutput(path string, channels [][]float64, rate, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	scale, err := pcmScale(bitDepth)
	if err != nil {
		return err
	}
	numChannels := len(channels)
	frames := len(channels[0])
	data := make([]int, frames*numChannels)
	for i := 0; i < frames; i++ {
		for ch := 0; ch < numChannels; ch++ {
			data[i*numChannels+ch] = clampPCM(channels[ch][i]*scale, bitDepth)
		}
	}

	enc := wav.NewEncoder(f, rate, bitDepth, numChannels, wavPCMFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numChannels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV: %w", err)
	}
	return nil
}

// clampPCM rounds and clips an amplitude to the signed PCM range.
func clampPCM(v float64, bitDepth int) int {
	limit := float64(int64(1)<<(bitDepth-1)) - 1
	v = math.Round(v)
	if v > limit {
		v = limit
	}
	if v < -limit-1 {
		v = -limit - 1
	}
	return int(v)
}
