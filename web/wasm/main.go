//go:build js && wasm

package main

import (
	"runtime"
	"strconv"
	"syscall/js"

	"github.com/cwbudde/algo-filterscope/internal/webdemo"
)

var (
	engine = webdemo.NewEngine(runtime.NumCPU())
	funcs  []js.Func
)

func main() {
	api := js.Global().Get("Object").New()

	// response(type, note, detune, cutoff, resonance) -> {title, points} | {errors}
	api.Set("response", export(func(args []js.Value) any {
		form := webdemo.Form{
			Type:      argString(args, 0),
			Note:      argString(args, 1),
			Detune:    argString(args, 2),
			Cutoff:    argString(args, 3),
			Resonance: argString(args, 4),
		}

		chart := engine.Draw(form)
		if len(chart.Errors) > 0 {
			errs := make([]any, len(chart.Errors))
			for i, msg := range chart.Errors {
				errs[i] = msg
			}

			return map[string]any{"errors": errs}
		}

		points := make([]any, len(chart.Points))
		for i, p := range chart.Points {
			points[i] = []any{p[0], p[1]}
		}

		return map[string]any{"title": chart.Title, "points": points}
	}))

	api.Set("noteLabel", export(func(args []js.Value) any {
		label, ok := webdemo.NoteLabel(argString(args, 0))
		if !ok {
			return js.Null()
		}

		return label
	}))

	api.Set("viewMinDB", webdemo.ViewMinDB)
	api.Set("viewMaxDB", webdemo.ViewMaxDB)

	js.Global().Set("filterscope", api)
	select {}
}

// argString reads argument i as the text a form field would hold.
func argString(args []js.Value, i int) string {
	if i >= len(args) {
		return ""
	}

	switch v := args[i]; v.Type() {
	case js.TypeString:
		return v.String()
	case js.TypeNumber:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	default:
		return ""
	}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
