package sandbox

import (
	"errors"
	"fmt"
	"strings"

	"go.starlark.net/resolve"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// classify turns an interpreter error into a "<ErrorCategory>: <message>"
// string. Categories mirror the Python exception names learners see in the
// lesson material, so hint remediation keys on the same substrings.
func classify(err error) string {
	msg := errMessage(err)

	var syntaxErr syntax.Error
	var resolveErrs resolve.ErrorList
	var resolveErr resolve.Error

	switch {
	case strings.Contains(msg, "cancelled"), strings.Contains(msg, "timed out"):
		return "TimeoutError: execution took too long"
	case strings.Contains(msg, "undefined:"):
		return fmt.Sprintf("NameError: %s", msg)
	case containsAny(msg, "indent", "unindent"):
		return fmt.Sprintf("IndentationError: %s", msg)
	case errors.As(err, &syntaxErr), errors.As(err, &resolveErrs), errors.As(err, &resolveErr):
		return fmt.Sprintf("SyntaxError: %s", msg)
	case containsAny(msg, "division by zero", "modulo by zero"):
		return fmt.Sprintf("ZeroDivisionError: %s", msg)
	case containsAny(msg, "out of range", "index"):
		return fmt.Sprintf("IndexError: %s", msg)
	case containsAny(msg, "key", "not in dict"):
		return fmt.Sprintf("KeyError: %s", msg)
	case containsAny(msg, "cannot convert", "invalid literal", "not a valid", "cannot be parsed"):
		return fmt.Sprintf("ValueError: %s", msg)
	case containsAny(msg, "unknown binary op", "unsupported binary op", "not iterable",
		"unhashable", "got ", "want ", "invalid ", "not callable", "has no ", "missing argument"):
		return fmt.Sprintf("TypeError: %s", msg)
	default:
		return fmt.Sprintf("RuntimeError: %s", msg)
	}
}

// errMessage extracts the interpreter message without positional noise where
// possible.
func errMessage(err error) string {
	var evalErr *starlark.EvalError
	if errors.As(err, &evalErr) {
		return evalErr.Msg
	}
	var syntaxErr syntax.Error
	if errors.As(err, &syntaxErr) {
		return syntaxErr.Msg
	}
	var list resolve.ErrorList
	if errors.As(err, &list) && len(list) > 0 {
		return list[0].Msg
	}
	var re resolve.Error
	if errors.As(err, &re) {
		return re.Msg
	}
	return err.Error()
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
