// Command spline-wav resamples WAV audio files to a target sample rate
// using spline interpolation.
//
// Usage:
//
//	spline-wav -rate 48 input.wav output.wav
//	spline-wav -rate 16 -method natural input.wav output.wav
//	spline-wav -rate 96 -method hermite -v input.wav output.wav
//
// Each channel is treated as a set of knots (sample time, amplitude); the
// chosen spline variant is evaluated on the target-rate grid. Spline
// interpolation has no anti-aliasing filter, so downsampling wideband
// material will alias; the tool is a demonstration of the library, not a
// mastering-grade resampler.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"
)

const (
	// kHzToHz converts the -rate flag to Hz.
	kHzToHz = 1000

	// CLI defaults
	defaultRateKHz  = 48.0
	minRequiredArgs = 2
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rateKHz := flag.Float64("rate", defaultRateKHz, "Target sample rate in kHz (e.g., 16, 32, 44.1, 48, 96)")
	method := flag.String("method", "catmullrom", "Interpolation method: catmullrom, natural, hermite")
	verbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	args := flag.Args()
	if len(args) < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.wav output.wav\n", os.Args[0])
		flag.PrintDefaults()
		return errors.New("input and output files required")
	}
	inputPath, outputPath := args[0], args[1]

	targetRate := int(*rateKHz * kHzToHz)
	if targetRate <= 0 {
		return fmt.Errorf("invalid target rate: %v kHz", *rateKHz)
	}

	input, err := readWAVInput(inputPath, *verbose)
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("Resampling %d Hz -> %d Hz (%s), %d channels",
			input.rate, targetRate, *method, len(input.channels))
	}

	start := time.Now()
	resampled := make([][]float64, len(input.channels))
	for ch, samples := range input.channels {
		out, err := resampleChannel(samples, input.rate, targetRate, *method)
		if err != nil {
			return fmt.Errorf("channel %d: %w", ch, err)
		}
		resampled[ch] = out
	}

	if err := writeWAVOutput(outputPath, resampled, targetRate, input.bitDepth); err != nil {
		return err
	}

	if *verbose {
		log.Printf("Wrote %d samples per channel in %v",
			len(resampled[0]), time.Since(start).Round(time.Millisecond))
	}
	return nil
}
