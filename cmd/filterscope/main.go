// Command filterscope prints the magnitude response of the ladder filters.
//
// Usage:
//
//	filterscope [global flags] command [flags]
//
// Commands:
//
//	response  measure one filter setting
//	batch     measure every setting listed in a Lua configuration file
//	render    write the filtered probe signal of one frequency as WAV
//	probes    list the probe frequencies
//	label     print the pitch label of a note number
//
// Examples:
//
//	filterscope response -t lpf2 -n 69 -c 48 -r 127 --summary
//	filterscope -w 4 response -t -1 -n 60 -c 72 --format csv
//	filterscope batch --config sweep.lua --format json
//	filterscope render -t lpf2 -n 69 -c 60 -r 100 --frequency 440 --output probe.wav
//	filterscope --log-dir /var/log/filterscope -v batch --config sweep.lua
//
// With --log-dir, a rolling log file filterscope.log is kept in that
// directory. --verbose lowers its level to debug and also copies the debug
// messages to stderr.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "dev"

const (
	program     = "filterscope"
	metadataKey = program

	logFile      = program + ".log"
	logFileSize  = 1048576
	logFileCount = 10
)

type metadata struct {
	w       io.Writer
	e       io.Writer
	log     *logger.L // nil without --log-dir
	verbose bool
	workers int
}

// debugf records a diagnostic in the log file and, when verbose, on stderr.
func (m *metadata) debugf(format string, args ...any) {
	if m.log != nil {
		m.log.Debugf(format, args...)
	}

	if m.verbose {
		fmt.Fprintf(m.e, program+": "+format+"\n", args...)
	}
}

func main() {
	app := newApp(os.Stdout, os.Stderr)

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(app.ErrWriter, "%s: %s\n", program, err)
		os.Exit(1)
	}
}

func newApp(w, e io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = program
	app.Usage = "frequency response of one- and two-pole ladder filters"
	app.Version = version
	app.HideVersion = true
	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "print parameters and timings to stderr, log at debug level",
		},
		cli.StringFlag{
			Name:  "log-dir",
			Usage: "keep a rolling log file in the existing `DIR`",
		},
		cli.IntFlag{
			Name:  "workers, w",
			Value: 1,
			Usage: "measure probes on `N` goroutines",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:      "response",
			Usage:     "measure the response of one filter setting",
			ArgsUsage: " ",
			Flags: append(paramFlags(),
				formatFlag(formatTable),
				cli.StringFlag{
					Name:  "method, m",
					Value: methodSine,
					Usage: "measurement `METHOD` [sine|transfer]",
				},
				cli.BoolFlag{
					Name:  "summary",
					Usage: "append peak, passband and edge figures (table and json)",
				},
			),
			Action: runResponse,
		},
		{
			Name:      "batch",
			Usage:     "measure every setting listed in a Lua configuration file",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "config",
					Usage: "Lua configuration `FILE`",
				},
				formatFlag(""),
			},
			Action: runBatch,
		},
		{
			Name:      "render",
			Usage:     "write the filtered probe signal as a 16-bit mono WAV file",
			ArgsUsage: " ",
			Flags: append(paramFlags(),
				cli.Float64Flag{
					Name:  "frequency",
					Value: 440,
					Usage: "probe frequency in `HZ`",
				},
				cli.StringFlag{
					Name:  "output, o",
					Usage: "WAV `FILE` to create",
				},
			),
			Action: runRender,
		},
		{
			Name:   "probes",
			Usage:  "list the probe frequencies",
			Action: runProbes,
		},
		{
			Name:  "label",
			Usage: "print the pitch label of a note number",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "note, n",
					Value: 69,
					Usage: "note `NUMBER` [0..127]",
				},
			},
			Action: runLabel,
		},
	}

	app.Before = func(c *cli.Context) error {
		workers := c.Int("workers")
		if workers < 1 {
			return fmt.Errorf("workers must be at least 1: %d", workers)
		}

		m := &metadata{
			w:       c.App.Writer,
			e:       c.App.ErrWriter,
			verbose: c.Bool("verbose"),
			workers: workers,
		}

		if dir := c.String("log-dir"); dir != "" {
			level := "info"
			if m.verbose {
				level = "debug"
			}

			err := logger.Initialise(logger.Configuration{
				Directory: dir,
				File:      logFile,
				Size:      logFileSize,
				Count:     logFileCount,
				Levels:    map[string]string{logger.DefaultTag: level},
			})
			if err != nil {
				return fmt.Errorf("logger setup: %w", err)
			}

			m.log = logger.New(program)
			m.log.Infof("version: %s  workers: %d", version, workers)
		}

		c.App.Metadata[metadataKey] = m

		return nil
	}

	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata[metadataKey].(*metadata)
		if !ok || m.log == nil {
			return nil
		}

		m.log.Info("finished")
		logger.Finalise()
		m.log = nil

		return nil
	}

	return app
}

func meta(c *cli.Context) *metadata {
	return c.App.Metadata[metadataKey].(*metadata)
}

func paramFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "type, t",
			Value: "lpf1",
			Usage: "filter `TYPE` [lpf1|hpf1|lpf2|hpf2 or 1|-1|2|-2]",
		},
		cli.StringFlag{
			Name:  "note, n",
			Value: "69",
			Usage: "note `NUMBER` [0..127]",
		},
		cli.StringFlag{
			Name:  "detune, d",
			Value: "0",
			Usage: "detune in `CENTS` [-99..99]",
		},
		cli.StringFlag{
			Name:  "cutoff, c",
			Value: "69",
			Usage: "cut-off `NOTE` [0..127]",
		},
		cli.StringFlag{
			Name:  "resonance, r",
			Value: "0",
			Usage: "`RESONANCE` [0..127]",
		},
	}
}

func formatFlag(def string) cli.Flag {
	return cli.StringFlag{
		Name:  "format, f",
		Value: def,
		Usage: "output `FORMAT` [table|csv|json]",
	}
}
