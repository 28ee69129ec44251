package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestTerminalText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"explicit answer", "my-app\n", "my-app"},
		{"trimmed", "  my-app  \n", "my-app"},
		{"blank selects default", "\n", "."},
		{"final line without newline", "last", "last"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			term := NewTerminal(strings.NewReader(tt.input), &out)

			got, err := term.Text("Project directory", ".")
			if err != nil {
				t.Fatalf("Text: %v", err)
			}
			if got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
			if !strings.Contains(out.String(), "Project directory (.)") {
				t.Errorf("prompt not written: %q", out.String())
			}
		})
	}
}

func TestTerminalTextCancelled(t *testing.T) {
	term := NewTerminal(strings.NewReader(""), &bytes.Buffer{})
	if _, err := term.Text("Project directory", "."); !errors.Is(err, ErrCancelled) {
		t.Errorf("Text() error = %v, want ErrCancelled", err)
	}
}

func TestTerminalConfirm(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		defaultValue bool
		want         bool
	}{
		{"yes", "y\n", false, true},
		{"YES", "YES\n", false, true},
		{"no", "no\n", true, false},
		{"blank default true", "\n", true, true},
		{"blank default false", "\n", false, false},
		{"retry after nonsense", "maybe\ny\n", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			term := NewTerminal(strings.NewReader(tt.input), &out)

			got, err := term.Confirm("Initialize git?", tt.defaultValue)
			if err != nil {
				t.Fatalf("Confirm: %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTerminalConfirmRetryMessage(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("maybe\nn\n"), &out)

	if _, err := term.Confirm("Install?", true); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if !strings.Contains(out.String(), "Please answer yes or no.") {
		t.Errorf("expected retry message, got %q", out.String())
	}
	if !strings.Contains(out.String(), "[Y/n]") {
		t.Errorf("expected default hint, got %q", out.String())
	}
}

func TestTerminalConfirmCancelled(t *testing.T) {
	term := NewTerminal(strings.NewReader("maybe\n"), &bytes.Buffer{})
	if _, err := term.Confirm("Install?", true); !errors.Is(err, ErrCancelled) {
		t.Errorf("Confirm() error = %v, want ErrCancelled", err)
	}
}

func TestScripted(t *testing.T) {
	s := &Scripted{Answers: []any{"", true, ErrCancelled}}

	got, err := s.Text("dir", ".")
	if err != nil || got != "." {
		t.Errorf("Text() = %q, %v; want \".\"", got, err)
	}
	ok, err := s.Confirm("git?", false)
	if err != nil || !ok {
		t.Errorf("Confirm() = %v, %v; want true", ok, err)
	}
	if _, err := s.Confirm("install?", true); !errors.Is(err, ErrCancelled) {
		t.Errorf("Confirm() error = %v, want ErrCancelled", err)
	}
	if _, err := s.Text("more?", ""); !errors.Is(err, ErrCancelled) {
		t.Errorf("exhausted queue should cancel, got %v", err)
	}
	if len(s.Asked) != 4 {
		t.Errorf("Asked = %v, want 4 questions", s.Asked)
	}
}
