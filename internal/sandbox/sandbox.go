// Package sandbox runs untrusted learner code in a restricted interpreter.
//
// Code is screened against a denylist first, then executed with only an
// enumerated allow-list of builtin names available. Nothing escapes the
// sandbox boundary as an error: every outcome is reported as a Result.
package sandbox

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Result is the outcome of a single execution.
type Result struct {
	Success bool
	Stdout  string
	Err     string // "<ErrorCategory>: <message>" when Success is false
}

// Config controls execution limits.
type Config struct {
	// ExecTimeout is the wall-clock deadline for a single execution.
	ExecTimeout time.Duration

	// MaxOutput is the captured-output cap in characters; output beyond
	// it is truncated and marked.
	MaxOutput int

	// MaxSteps bounds interpreter work independently of wall-clock time.
	MaxSteps uint64
}

// DefaultConfig returns the standard limits.
func DefaultConfig() Config {
	return Config{
		ExecTimeout: 5 * time.Second,
		MaxOutput:   1000,
		MaxSteps:    10_000_000,
	}
}

// denylist contains names that would allow file, process, or introspection
// access. Matched case-insensitively as substrings, before execution.
var denylist = []string{
	"__import__", "eval", "exec", "compile", "open", "input",
	"file", "os", "sys", "subprocess", "globals", "locals",
	"vars", "dir", "__builtins__",
}

const truncationMarker = "\n... (truncated)"

// Sandbox executes learner code snippets.
type Sandbox struct {
	cfg Config
}

// New creates a Sandbox with the given config.
func New(cfg Config) *Sandbox {
	if cfg.MaxOutput <= 0 {
		cfg.MaxOutput = DefaultConfig().MaxOutput
	}
	if cfg.MaxSteps == 0 {
		cfg.MaxSteps = DefaultConfig().MaxSteps
	}
	return &Sandbox{cfg: cfg}
}

// fileOpts enables the language features learner snippets rely on:
// while loops, top-level if/for, reassignment, sets, and recursion.
var fileOpts = &syntax.FileOptions{
	Set:               true,
	While:             true,
	TopLevelControl:   true,
	GlobalReassign:    true,
	Recursion:         true,
	LoadBindsGlobally: false,
}

// Execute runs code with stdin bound as the predeclared string `stdin`.
// The denylist is checked before anything executes; a hit never runs the code.
func (s *Sandbox) Execute(ctx context.Context, code, stdin string) Result {
	if banned := s.screen(code); banned != "" {
		if banned == "import" {
			return Result{Err: "SecurityViolation: import statements are not allowed in exercises"}
		}
		return Result{Err: fmt.Sprintf("SecurityViolation: restricted keyword: %s", banned)}
	}

	if s.cfg.ExecTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.ExecTimeout)
		defer cancel()
	}

	var out strings.Builder
	thread := &starlark.Thread{
		Name: "exercise",
		Print: func(_ *starlark.Thread, msg string) {
			out.WriteString(msg)
			out.WriteByte('\n')
		},
	}
	thread.SetMaxExecutionSteps(s.cfg.MaxSteps)

	// Propagate context cancellation into the interpreter.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			thread.Cancel("execution timed out")
		case <-done:
		}
	}()

	_, err := starlark.ExecFileOptions(fileOpts, thread, "exercise", code, s.predeclared(stdin))

	stdout := out.String()
	if len(stdout) > s.cfg.MaxOutput {
		stdout = truncate(stdout, s.cfg.MaxOutput) + truncationMarker
	}

	if err != nil {
		return Result{Stdout: stdout, Err: classify(err)}
	}
	return Result{Success: true, Stdout: stdout}
}

// truncate cuts s to at most n bytes without splitting a rune. Lesson
// content prints emoji, so the cut point backs up to a rune boundary.
func truncate(s string, n int) string {
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// screen returns the first denylisted token found in code, or "" if clean.
func (s *Sandbox) screen(code string) string {
	lower := strings.ToLower(code)
	for _, banned := range denylist {
		if strings.Contains(lower, banned) {
			return banned
		}
	}
	if strings.Contains(lower, "import") {
		return "import"
	}
	return ""
}
