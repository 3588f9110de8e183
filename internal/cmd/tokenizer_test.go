package cmd

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"stem /a/b/file.tar.gz", []string{"stem", "/a/b/file.tar.gz"}},
		{"  join   /a\tb  ", []string{"join", "/a", "b"}},
		{`stem "/my docs/a.txt"`, []string{"stem", "/my docs/a.txt"}},
		{`stem '/it"s/x'`, []string{"stem", `/it"s/x`}},
		{`stem /my\ docs/a`, []string{"stem", "/my docs/a"}},
		{`parent ""`, []string{"parent", ""}},
		{`component /a/b -1`, []string{"component", "/a/b", "-1"}},
		{`with-suffix 'a b'.txt md`, []string{"with-suffix", "a b.txt", "md"}},
	}

	for _, tt := range tests {
		got, err := Tokenize(tt.line)
		if err != nil {
			t.Fatalf("Tokenize(%q): %v", tt.line, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.line, diff)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	for _, line := range []string{`stem "open`, `stem 'open`, `stem trailing\`} {
		if _, err := Tokenize(line); err == nil {
			t.Errorf("Tokenize(%q): expected error", line)
		}
	}
}
