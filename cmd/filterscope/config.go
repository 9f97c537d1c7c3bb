package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/cwbudde/algo-filterscope/measure/response"
)

// batchConfig is the table returned by a batch configuration file.
type batchConfig struct {
	Workers  int             `gluamapper:"workers"`
	Format   string          `gluamapper:"format"`
	Method   string          `gluamapper:"method"`
	Analyses []analysisEntry `gluamapper:"analyses"`
}

// analysisEntry keeps the numeric fields as the raw Lua values so that they
// go through the same parsing as command line text. A missing field is nil.
type analysisEntry struct {
	Type      string `gluamapper:"type"`
	Note      any    `gluamapper:"note"`
	Detune    any    `gluamapper:"detune"`
	Cutoff    any    `gluamapper:"cutoff"`
	Resonance any    `gluamapper:"resonance"`
	Summary   bool   `gluamapper:"summary"`
}

// readConfig executes a Lua file and maps the table it returns onto a
// batchConfig. The script sees its own path as arg[0]. Unknown keys are
// rejected.
func readConfig(fileName string) (*batchConfig, error) {
	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	if err := L.DoFile(fileName); err != nil {
		return nil, fmt.Errorf("config %s: %w", fileName, err)
	}

	tbl, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return nil, fmt.Errorf("config %s: must return a table", fileName)
	}

	mapper := gluamapper.Mapper{Option: gluamapper.Option{
		NameFunc:    func(s string) string { return s },
		TagName:     "gluamapper",
		ErrorUnused: true,
	}}

	cfg := &batchConfig{}
	if err := mapper.Map(tbl, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", fileName, err)
	}

	return cfg, nil
}

// params validates every entry and reports all failures, each prefixed with
// the 1-based entry index. Note and cutoff are required, detune and
// resonance default to 0, and fractional numbers are rejected.
func (cfg *batchConfig) params() ([]response.Params, error) {
	if len(cfg.Analyses) == 0 {
		return nil, errors.New("config lists no analyses")
	}

	out := make([]response.Params, len(cfg.Analyses))

	var errs []error

	for i, a := range cfg.Analyses {
		p, err := response.ParseParams(a.Type,
			fieldText(a.Note, ""),
			fieldText(a.Detune, ""),
			fieldText(a.Cutoff, ""),
			fieldText(a.Resonance, "0"),
		)
		for _, fe := range response.FieldErrors(err) {
			errs = append(errs, fmt.Errorf("analysis %d: %w", i+1, fe))
		}

		out[i] = p
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return out, nil
}

// fieldText renders a mapped Lua value as the text ParseParams expects. Lua
// numbers arrive as float64 and keep their fraction, so 69.5 stays invalid.
func fieldText(v any, missing string) string {
	switch v := v.(type) {
	case nil:
		return missing
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
