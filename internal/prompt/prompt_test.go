package prompt

import (
	"bytes"
	"strings"
	"testing"
)

// A strings.Reader is not a terminal, so Select exercises the numbered
// fallback path.
func TestSelect_Numbered(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		options []string
		want    int
		wantErr bool
	}{
		{"first option", "1\n", []string{"a", "b", "c"}, 0, false},
		{"last option", "3\n", []string{"a", "b", "c"}, 2, false},
		{"retries after junk", "x\n0\n9\n2\n", []string{"a", "b", "c"}, 1, false},
		{"eof", "", []string{"a", "b"}, 0, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := &Prompter{In: strings.NewReader(tt.in), Out: &out}

			got, err := p.Select("Choose", tt.options)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got index %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("selected index %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSelect_RendersAllOptions(t *testing.T) {
	var out bytes.Buffer
	p := &Prompter{In: strings.NewReader("2\n"), Out: &out}

	if _, err := p.Select("Choose a hashing algorithm", []string{"SHA-256", "MD5"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rendered := out.String()
	for _, want := range []string{"Choose a hashing algorithm", "1) SHA-256", "2) MD5"} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("output missing %q:\n%s", want, rendered)
		}
	}
}

func TestSelect_NoOptions(t *testing.T) {
	p := &Prompter{In: strings.NewReader("1\n"), Out: &bytes.Buffer{}}
	if _, err := p.Select("Choose", nil); err == nil {
		t.Fatalf("expected error for empty option list")
	}
}

func TestReadLine(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"trims", "  hello world \n", "hello world", false},
		{"no trailing newline", "partial", "partial", false},
		{"empty input", "", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := &Prompter{In: strings.NewReader(tt.in), Out: &out}

			got, err := p.ReadLine("Enter text")
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("line %q, want %q", got, tt.want)
			}
			if !strings.Contains(out.String(), "Enter text: ") {
				t.Fatalf("prompt label not rendered: %q", out.String())
			}
		})
	}
}

// Consecutive reads share one buffered reader; a Select must not swallow
// input meant for a following ReadLine.
func TestSequentialPrompts(t *testing.T) {
	var out bytes.Buffer
	p := &Prompter{In: strings.NewReader("2\nsome input\n"), Out: &out}

	idx, err := p.Select("Mode", []string{"Text", "File"})
	if err != nil {
		t.Fatalf("select: %v", err)
	}
	if idx != 1 {
		t.Fatalf("selected index %d, want 1", idx)
	}

	line, err := p.ReadLine("Enter file path")
	if err != nil {
		t.Fatalf("readline: %v", err)
	}
	if line != "some input" {
		t.Fatalf("line %q, want %q", line, "some input")
	}
}
