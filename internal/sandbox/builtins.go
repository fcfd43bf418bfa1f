package sandbox

import (
	"fmt"
	"math"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// universeNames are the builtin names taken directly from the Starlark
// universe. Together with the Go-implemented builtins below they form the
// complete allow-list; no other name is reachable from learner code.
var universeNames = []string{
	"print", "len", "range", "str", "int", "float", "bool",
	"list", "dict", "set", "tuple", "max", "min",
	"sorted", "enumerate", "zip", "reversed", "all", "any",
}

// predeclared builds the execution environment: allow-listed builtins plus
// the test-case input bound as the string `stdin`.
func (s *Sandbox) predeclared(stdin string) starlark.StringDict {
	env := make(starlark.StringDict, len(universeNames)+6)
	for _, name := range universeNames {
		if v, ok := starlark.Universe[name]; ok {
			env[name] = v
		}
	}
	env["sum"] = starlark.NewBuiltin("sum", sumFn)
	env["abs"] = starlark.NewBuiltin("abs", absFn)
	env["round"] = starlark.NewBuiltin("round", roundFn)
	env["map"] = starlark.NewBuiltin("map", mapFn)
	env["filter"] = starlark.NewBuiltin("filter", filterFn)
	env["stdin"] = starlark.String(stdin)
	return env
}

func sumFn(_ *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var iterable starlark.Iterable
	var start starlark.Value
	if err := starlark.UnpackPositionalArgs("sum", args, kwargs, 1, &iterable, &start); err != nil {
		return nil, err
	}
	total := start
	if total == nil {
		total = starlark.MakeInt(0)
	}
	it := iterable.Iterate()
	defer it.Done()
	var x starlark.Value
	for it.Next(&x) {
		v, err := starlark.Binary(syntax.PLUS, total, x)
		if err != nil {
			return nil, err
		}
		total = v
	}
	return total, nil
}

func absFn(_ *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x starlark.Value
	if err := starlark.UnpackPositionalArgs("abs", args, kwargs, 1, &x); err != nil {
		return nil, err
	}
	switch v := x.(type) {
	case starlark.Float:
		return starlark.Float(math.Abs(float64(v))), nil
	case starlark.Int:
		if v.Sign() >= 0 {
			return v, nil
		}
		return starlark.Binary(syntax.MINUS, starlark.MakeInt(0), v)
	default:
		return nil, startypeError("abs", x)
	}
}

func roundFn(_ *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x starlark.Value
	var ndigits starlark.Value
	if err := starlark.UnpackPositionalArgs("round", args, kwargs, 1, &x, &ndigits); err != nil {
		return nil, err
	}
	switch v := x.(type) {
	case starlark.Int:
		return v, nil
	case starlark.Float:
		if ndigits == nil {
			// Like Python, round to the nearest integer.
			return starlark.NumberToInt(starlark.Float(math.Round(float64(v))))
		}
		n, err := starlark.AsInt32(ndigits)
		if err != nil {
			return nil, err
		}
		pow := math.Pow(10, float64(n))
		return starlark.Float(math.Round(float64(v)*pow) / pow), nil
	default:
		return nil, startypeError("round", x)
	}
}

func mapFn(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var fn starlark.Callable
	var iterable starlark.Iterable
	if err := starlark.UnpackPositionalArgs("map", args, kwargs, 2, &fn, &iterable); err != nil {
		return nil, err
	}
	var out []starlark.Value
	it := iterable.Iterate()
	defer it.Done()
	var x starlark.Value
	for it.Next(&x) {
		v, err := starlark.Call(thread, fn, starlark.Tuple{x}, nil)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return starlark.NewList(out), nil
}

func filterFn(thread *starlark.Thread, _ *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var fn starlark.Callable
	var iterable starlark.Iterable
	if err := starlark.UnpackPositionalArgs("filter", args, kwargs, 2, &fn, &iterable); err != nil {
		return nil, err
	}
	var out []starlark.Value
	it := iterable.Iterate()
	defer it.Done()
	var x starlark.Value
	for it.Next(&x) {
		keep, err := starlark.Call(thread, fn, starlark.Tuple{x}, nil)
		if err != nil {
			return nil, err
		}
		if keep.Truth() {
			out = append(out, x)
		}
	}
	return starlark.NewList(out), nil
}

func startypeError(fn string, got starlark.Value) error {
	return fmt.Errorf("%s: got %s, want number", fn, got.Type())
}
