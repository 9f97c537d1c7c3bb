package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/cwbudde/algo-filterscope/dsp/pitch"
	"github.com/cwbudde/algo-filterscope/measure/response"
)

func runProbes(c *cli.Context) error {
	m := meta(c)

	for i, f := range response.Probes() {
		if _, err := fmt.Fprintf(m.w, "%3d  %9.2f\n", i, f); err != nil {
			return err
		}
	}

	return nil
}

func runLabel(c *cli.Context) error {
	note := c.Int("note")
	if !pitch.ValidNote(note) {
		return &response.FieldError{Field: response.FieldNote, Value: fmt.Sprint(note)}
	}

	_, err := fmt.Fprintf(meta(c).w, "%s %.2f Hz\n", pitch.Label(note), pitch.Frequency(note, 0))

	return err
}
