package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/cwbudde/algo-filterscope/measure/response"
)

const (
	methodSine     = "sine"
	methodTransfer = "transfer"
)

func runResponse(c *cli.Context) error {
	m := meta(c)

	format, err := parseFormat(c.String("format"))
	if err != nil {
		return err
	}

	method := c.String("method")
	if method != methodSine && method != methodTransfer {
		return fmt.Errorf("unknown method %q", method)
	}

	p, err := paramsFromFlags(c)
	if err != nil {
		return err
	}

	res, err := measure(m, p, method, m.workers)
	if err != nil {
		return err
	}

	if c.Bool("summary") {
		s := response.Summarize(p.Type, res.Points)
		res.Summary = &s
	}

	return writeResults(m.w, format, false, []result{res})
}

func paramsFromFlags(c *cli.Context) (response.Params, error) {
	return response.ParseParams(
		c.String("type"),
		c.String("note"),
		c.String("detune"),
		c.String("cutoff"),
		c.String("resonance"),
	)
}

// measure computes the response of p with the given method and logs what it
// did at debug level.
func measure(m *metadata, p response.Params, method string, workers int) (result, error) {
	coeffs := p.Coefficients()
	m.debugf("analysis label=%q type=%s cut=%g feedback=%g resonance=%g cutoff_hz=%.2f method=%s workers=%d",
		p.Label(), p.Type, coeffs.Cut, coeffs.Feedback, coeffs.Resonance,
		coeffs.CutoffHz(p.Type), method, workers)

	start := time.Now()

	var (
		pts []response.Point
		err error
	)

	switch method {
	case methodTransfer:
		pts, err = response.Transfer(p.Type, coeffs)
		if err != nil {
			return result{}, err
		}
	default:
		pts = response.Analyze(p, response.WithWorkers(workers))
	}

	m.debugf("analysis done label=%q elapsed=%s", p.Label(), time.Since(start))

	return result{
		Label:  p.Label(),
		Params: p,
		Method: method,
		Points: pts,
	}, nil
}
