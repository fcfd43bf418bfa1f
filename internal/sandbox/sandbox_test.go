package sandbox

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func newTestSandbox() *Sandbox {
	return New(DefaultConfig())
}

func TestExecute_CapturesOutput(t *testing.T) {
	sb := newTestSandbox()

	res := sb.Execute(context.Background(), "print(1 + 2)", "")

	if !res.Success {
		t.Fatalf("Success = false, Err = %q", res.Err)
	}
	if res.Stdout != "3\n" {
		t.Errorf("Stdout = %q, want %q", res.Stdout, "3\n")
	}
}

func TestExecute_MultilineProgram(t *testing.T) {
	sb := newTestSandbox()
	code := "x = 10\ny = 20\nx = y\nprint(x)"

	res := sb.Execute(context.Background(), code, "")

	if !res.Success {
		t.Fatalf("Success = false, Err = %q", res.Err)
	}
	if strings.TrimSpace(res.Stdout) != "20" {
		t.Errorf("Stdout = %q, want 20", res.Stdout)
	}
}

func TestExecute_DenylistNeverSucceeds(t *testing.T) {
	sb := newTestSandbox()

	cases := []string{
		"open('/etc/passwd')",
		"print(open('x'))",
		"x = eval('1+1')",
		"import json",
		"OS.getcwd()",
		"__builtins__",
		"print(globals())",
	}
	for _, code := range cases {
		res := sb.Execute(context.Background(), code, "")
		if res.Success {
			t.Errorf("Execute(%q) succeeded, want denylist rejection", code)
		}
		if !strings.HasPrefix(res.Err, "SecurityViolation:") {
			t.Errorf("Execute(%q) Err = %q, want SecurityViolation", code, res.Err)
		}
		if res.Stdout != "" {
			t.Errorf("Execute(%q) produced output %q, code must never run", code, res.Stdout)
		}
	}
}

func TestExecute_NameError(t *testing.T) {
	sb := newTestSandbox()

	res := sb.Execute(context.Background(), "x = 5\nprint(X)", "")

	if res.Success {
		t.Fatal("expected failure for undefined name")
	}
	if !strings.HasPrefix(res.Err, "NameError:") {
		t.Errorf("Err = %q, want NameError prefix", res.Err)
	}
}

func TestExecute_SyntaxError(t *testing.T) {
	sb := newTestSandbox()

	res := sb.Execute(context.Background(), "for i in range(5)\n    print(i)", "")

	if res.Success {
		t.Fatal("expected failure for missing colon")
	}
	if !strings.HasPrefix(res.Err, "SyntaxError:") && !strings.HasPrefix(res.Err, "IndentationError:") {
		t.Errorf("Err = %q, want SyntaxError category", res.Err)
	}
}

func TestExecute_StdinBound(t *testing.T) {
	sb := newTestSandbox()

	res := sb.Execute(context.Background(), "print(int(stdin) * 2)", "21")

	if !res.Success {
		t.Fatalf("Success = false, Err = %q", res.Err)
	}
	if strings.TrimSpace(res.Stdout) != "42" {
		t.Errorf("Stdout = %q, want 42", res.Stdout)
	}
}

func TestExecute_TruncatesLongOutput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxOutput = 50
	sb := New(cfg)

	res := sb.Execute(context.Background(), "for i in range(100):\n    print('aaaaaaaaaa')", "")

	if !res.Success {
		t.Fatalf("Success = false, Err = %q", res.Err)
	}
	if !strings.HasSuffix(res.Stdout, truncationMarker) {
		t.Errorf("Stdout missing truncation marker: %q", res.Stdout)
	}
	if len(res.Stdout) != 50+len(truncationMarker) {
		t.Errorf("len(Stdout) = %d, want %d", len(res.Stdout), 50+len(truncationMarker))
	}
}

func TestExecute_TruncationKeepsRunesWhole(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxOutput = 50
	sb := New(cfg)

	// Each line is 13 bytes, so the 50-byte cut lands inside an emoji.
	res := sb.Execute(context.Background(), "for i in range(20):\n    print('🔥🔥🔥')", "")

	if !res.Success {
		t.Fatalf("Success = false, Err = %q", res.Err)
	}
	if !strings.HasSuffix(res.Stdout, truncationMarker) {
		t.Fatalf("Stdout missing truncation marker: %q", res.Stdout)
	}
	if !utf8.ValidString(res.Stdout) {
		t.Errorf("truncated output is not valid UTF-8: %q", res.Stdout)
	}
	if len(res.Stdout) > 50+len(truncationMarker) {
		t.Errorf("len(Stdout) = %d, want at most %d", len(res.Stdout), 50+len(truncationMarker))
	}
}

func TestExecute_InfiniteLoopTimesOut(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ExecTimeout = 100 * time.Millisecond
	sb := New(cfg)

	start := time.Now()
	res := sb.Execute(context.Background(), "while True:\n    x = 1", "")
	elapsed := time.Since(start)

	if res.Success {
		t.Fatal("infinite loop must not succeed")
	}
	if !strings.HasPrefix(res.Err, "TimeoutError:") {
		t.Errorf("Err = %q, want TimeoutError", res.Err)
	}
	if elapsed > 5*time.Second {
		t.Errorf("execution took %v, deadline not enforced", elapsed)
	}
}

func TestExecute_StepLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ExecTimeout = 0 // no wall clock; steps only
	cfg.MaxSteps = 1000
	sb := New(cfg)

	res := sb.Execute(context.Background(), "while True:\n    x = 1", "")

	if res.Success {
		t.Fatal("step-limited loop must not succeed")
	}
}

func TestExecute_AllowedBuiltins(t *testing.T) {
	sb := newTestSandbox()

	code := "nums = [3, 1, 2]\n" +
		"print(sum(nums))\n" +
		"print(max(nums), min(nums))\n" +
		"print(sorted(nums))\n" +
		"print(abs(-4))\n" +
		"print(round(2.7))\n" +
		"print(list(map(lambda x: x * 2, nums)))\n" +
		"print(list(filter(lambda x: x > 1, nums)))\n" +
		"print(all([True, True]), any([False, True]))"

	res := sb.Execute(context.Background(), code, "")

	if !res.Success {
		t.Fatalf("Success = false, Err = %q", res.Err)
	}
	want := []string{"6", "3 1", "[1, 2, 3]", "4", "3"}
	lines := strings.Split(strings.TrimSpace(res.Stdout), "\n")
	for i, w := range want {
		if i >= len(lines) || lines[i] != w {
			t.Errorf("line %d = %q, want %q (full output %q)", i, lines[i], w, res.Stdout)
		}
	}
}

func TestExecute_FunctionDefinition(t *testing.T) {
	sb := newTestSandbox()

	code := "def double(n):\n    return n * 2\n\nprint(double(7))"
	res := sb.Execute(context.Background(), code, "")

	if !res.Success {
		t.Fatalf("Success = false, Err = %q", res.Err)
	}
	if strings.TrimSpace(res.Stdout) != "14" {
		t.Errorf("Stdout = %q, want 14", res.Stdout)
	}
}
