package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/urfave/cli"

	"github.com/cwbudde/algo-filterscope/dsp/core"
	"github.com/cwbudde/algo-filterscope/dsp/filter/ladder"
	"github.com/cwbudde/algo-filterscope/dsp/signal"
)

const (
	renderPeak     = 0.9
	renderBitDepth = 16
	wavFormatPCM   = 1
)

func runRender(c *cli.Context) error {
	m := meta(c)

	fileName := c.String("output")
	if fileName == "" {
		return errors.New("missing --output file")
	}

	freq := c.Float64("frequency")
	if !(freq > 0 && freq < core.SampleRate/2) {
		return fmt.Errorf("frequency must be in (0, %g) Hz: %g", core.SampleRate/2, freq)
	}

	p, err := paramsFromFlags(c)
	if err != nil {
		return err
	}

	y, err := filteredProbe(p.Type, p.Coefficients(), freq)
	if err != nil {
		return err
	}

	m.debugf("render label=%q frequency=%g output=%s", p.Label(), freq, fileName)

	if err := writeWAV(fileName, y); err != nil {
		return err
	}

	_, err = fmt.Fprintf(m.w, "%s: %d samples, %s at %.2f Hz\n", fileName, len(y), p.Label(), freq)

	return err
}

// filteredProbe returns the filter output for one probe sine, scaled to
// renderPeak.
func filteredProbe(t ladder.Type, c ladder.Coefficients, freq float64) ([]float64, error) {
	gen := signal.NewGenerator(signal.WithSampleRate(core.SampleRate))

	x, err := gen.Sine(freq, core.ProbeLength)
	if err != nil {
		return nil, err
	}

	ladder.Simulate(t, c, x, x)

	for i, v := range x {
		if !core.IsFinite(v) {
			return nil, fmt.Errorf("filter output diverges at sample %d", i)
		}
	}

	return signal.Normalize(x, renderPeak)
}

func writeWAV(fileName string, data []float64) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	scale := float64(int(1)<<(renderBitDepth-1) - 1)

	ints := make([]int, len(data))
	for i, v := range data {
		ints[i] = int(math.Round(v * scale))
	}

	enc := wav.NewEncoder(f, int(core.SampleRate), renderBitDepth, 1, wavFormatPCM)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: int(core.SampleRate)},
		Data:           ints,
		SourceBitDepth: renderBitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("write %s: %w", fileName, err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("finish %s: %w", fileName, err)
	}

	return nil
}
