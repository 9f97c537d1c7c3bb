package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli"

	"github.com/cwbudde/algo-filterscope/measure/response"
)

func runBatch(c *cli.Context) error {
	m := meta(c)

	fileName := c.String("config")
	if fileName == "" {
		return errors.New("missing --config file")
	}

	cfg, err := readConfig(fileName)
	if err != nil {
		return err
	}

	params, err := cfg.params()
	if err != nil {
		return err
	}

	// command line wins over the file, the file over the defaults
	format := c.String("format")
	if format == "" {
		format = cfg.Format
	}

	format, err = parseFormat(format)
	if err != nil {
		return err
	}

	method := cfg.Method
	if method == "" {
		method = methodSine
	}

	if method != methodSine && method != methodTransfer {
		return fmt.Errorf("config %s: unknown method %q", fileName, method)
	}

	workers := m.workers
	if cfg.Workers > 0 && !c.GlobalIsSet("workers") {
		workers = cfg.Workers
	}

	m.debugf("batch config=%s analyses=%d format=%s workers=%d", fileName, len(params), format, workers)

	results := make([]result, len(params))
	for i, p := range params {
		results[i], err = measure(m, p, method, workers)
		if err != nil {
			return fmt.Errorf("analysis %d: %w", i+1, err)
		}

		if cfg.Analyses[i].Summary {
			s := response.Summarize(p.Type, results[i].Points)
			results[i].Summary = &s
		}
	}

	return writeResults(m.w, format, true, results)
}
