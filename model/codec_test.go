package model

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestDecodeEncode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"glider", "__*\n*_*\n_**\n", "__*\n*_*\n_**\n"},
		{"no trailing newline", "**\n**", "**\n**\n"},
		{"crlf", "*_\r\n_*\r\n", "*_\n_*\n"},
		{"empty", "", ""},
		{"single dead", "_\n", "_\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := Decode(strings.NewReader(tt.input), DefaultSymbols())
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if got := Encode(g, DefaultSymbols()); got != tt.want {
				t.Fatalf("Encode = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDecodeCustomSymbols(t *testing.T) {
	sym := Symbols{Dead: '.', Alive: 'O'}
	g, err := Decode(strings.NewReader(".O\nO.\n"), sym)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !g.Get(1, 0) || !g.Get(0, 1) || g.Get(0, 0) {
		t.Fatal("cells decoded with the wrong symbols")
	}
	if got := Encode(g, DefaultSymbols()); got != "_*\n*_\n" {
		t.Fatalf("Encode = %q", got)
	}
}

func TestDecodeFormatErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
		ragged   bool
		char     byte
	}{
		{"longer line", "__*\n*_*\n_**_\n", 3, true, 0},
		{"shorter line", "__*\n*_\n_**\n", 2, true, 0},
		{"empty first line", "\n*\n", 2, true, 0},
		{"bad char", "__*\n*#*\n_**\n", 2, false, '#'},
		{"space", "* \n", 1, false, ' '},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input), DefaultSymbols())

			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("expected *FormatError, got %v", err)
			}
			if fe.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", fe.Line, tt.wantLine)
			}
			if fe.Ragged != tt.ragged {
				t.Errorf("Ragged = %v, want %v", fe.Ragged, tt.ragged)
			}
			if !tt.ragged && fe.Char != tt.char {
				t.Errorf("Char = %q, want %q", fe.Char, tt.char)
			}
		})
	}
}

func TestFormatErrorMessage(t *testing.T) {
	char := &FormatError{Line: 4, Char: '#'}
	if msg := char.Error(); !strings.Contains(msg, "'#'") || !strings.Contains(msg, "line 4") {
		t.Errorf("unexpected message %q", msg)
	}

	ragged := &FormatError{Line: 2, Ragged: true, Width: 3, Got: 4}
	if msg := ragged.Error(); !strings.Contains(msg, "line 2") {
		t.Errorf("unexpected message %q", msg)
	}
}
