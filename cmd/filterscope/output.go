package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-filterscope/measure/response"
)

const (
	formatTable = "table"
	formatCSV   = "csv"
	formatJSON  = "json"
)

type result struct {
	Label   string            `json:"label"`
	Params  response.Params   `json:"params"`
	Method  string            `json:"method"`
	Points  []response.Point  `json:"points"`
	Summary *response.Summary `json:"summary,omitempty"`
}

func parseFormat(s string) (string, error) {
	switch s {
	case "", formatTable:
		return formatTable, nil
	case formatCSV, formatJSON:
		return s, nil
	default:
		return "", fmt.Errorf("unknown format %q", s)
	}
}

// writeResults renders results in format. A JSON document holds an array
// when list is set and a single object otherwise.
func writeResults(w io.Writer, format string, list bool, results []result) error {
	switch format {
	case formatCSV:
		return writeCSV(w, results)
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		if !list && len(results) == 1 {
			return enc.Encode(results[0])
		}

		return enc.Encode(results)
	default:
		for i, r := range results {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}

			if err := writeTable(w, r); err != nil {
				return err
			}
		}

		return nil
	}
}

func writeTable(w io.Writer, r result) error {
	if _, err := fmt.Fprintln(w, r.Label); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tw, "Frequency [Hz]\tPower [dB]\t\n"); err != nil {
		return err
	}

	for _, p := range r.Points {
		if _, err := fmt.Fprintf(tw, "%.2f\t%.2f\t\n", p.FrequencyHz, p.PowerDB); err != nil {
			return err
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	if r.Summary == nil {
		return nil
	}

	s := r.Summary
	_, err := fmt.Fprintf(w,
		"peak      %.2f dB at %.2f Hz\nfloor     %.2f dB at %.2f Hz\npassband  %.2f dB\n-3 dB     %s\n",
		s.Peak.PowerDB, s.Peak.FrequencyHz,
		s.Floor.PowerDB, s.Floor.FrequencyHz,
		s.PassbandDB,
		formatEdge(s.EdgeHz),
	)

	return err
}

func formatEdge(hz float64) string {
	if hz == 0 {
		return "none"
	}

	return strconv.FormatFloat(hz, 'f', 2, 64) + " Hz"
}

func writeCSV(w io.Writer, results []result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"label", "frequency_hz", "power_db"}); err != nil {
		return err
	}

	for _, r := range results {
		for _, p := range r.Points {
			row := []string{
				r.Label,
				strconv.FormatFloat(p.FrequencyHz, 'f', 6, 64),
				strconv.FormatFloat(p.PowerDB, 'f', 6, 64),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()

	return cw.Error()
}
