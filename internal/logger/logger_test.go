package logger

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
	"time"
)

type staticChecker bool

func (s staticChecker) IsVerbose() bool { return bool(s) }

func TestVerboseGating(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		want    []string
		notWant []string
	}{
		{
			name:    "quiet",
			verbose: false,
			want:    []string{"WARN", "careful", "ERROR", "broken"},
			notWant: []string{"DEBUG", "INFO"},
		},
		{
			name:    "verbose",
			verbose: true,
			want:    []string{"DEBUG", "tick 3", "INFO", "started", "WARN", "ERROR"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewWithWriter("driver", staticChecker(tt.verbose), &buf)

			l.Debug("tick %d", 3)
			l.Info("started")
			l.Warn("careful")
			l.Error("broken")

			out := buf.String()
			for _, s := range tt.want {
				if !strings.Contains(out, s) {
					t.Errorf("Expected output to contain %q, got:\n%s", s, out)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(out, s) {
					t.Errorf("Expected output not to contain %q, got:\n%s", s, out)
				}
			}
		})
	}
}

func TestFieldsAndComponent(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("cli", staticChecker(true), &buf).WithComponent("session")

	l.InfoWithFields("run finished", []Field{
		F("algorithm", "bubble"),
		Count(3),
		Duration(2 * time.Second),
		Error(errors.New("none")),
	})

	out := buf.String()
	for _, s := range []string{"[session]", "run finished", "algorithm", "bubble", "count", "duration"} {
		if !strings.Contains(out, s) {
			t.Errorf("Expected output to contain %q, got:\n%s", s, out)
		}
	}
}

func TestSetOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	New("ui", nil).Warn("redirected")
	if !strings.Contains(buf.String(), "redirected") {
		t.Errorf("Expected log to go to the configured output, got %q", buf.String())
	}
}

func TestCallbackChecker(t *testing.T) {
	verbose := false
	l := NewWithCallback("cli", func() bool { return verbose })
	if l.verbose() {
		t.Errorf("Expected callback logger to start quiet")
	}
	verbose = true
	if !l.verbose() {
		t.Errorf("Expected callback logger to follow the callback")
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error("dropped")
	if err := l.Sync(); err != nil {
		t.Errorf("Unexpected sync error: %v", err)
	}
}
