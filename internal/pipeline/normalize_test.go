package pipeline

import (
	"strings"
	"testing"
)

func TestNormalizeLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"Bye\nNow", `Bye\nNow`},
		{"a\n\nb\n", `a\n\nb\n`},
		{"tab\there", "tab\there"},
		{"crlf\r\nline", "crlf\r\\nline"},
	}

	for _, tt := range tests {
		if got := NormalizeLine(tt.in); got != tt.want {
			t.Errorf("NormalizeLine(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeLine_RoundTrip(t *testing.T) {
	original := "first line\nsecond line\nthird"
	got := strings.Split(NormalizeLine(original), `\n`)
	want := strings.Split(original, "\n")

	if len(got) != len(want) {
		t.Fatalf("got %d segments, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestNormalizeLinePtr_Nil(t *testing.T) {
	if got := NormalizeLinePtr(nil); got != "" {
		t.Errorf("NormalizeLinePtr(nil) = %q, want empty", got)
	}
	s := "x\ny"
	if got := NormalizeLinePtr(&s); got != `x\ny` {
		t.Errorf("NormalizeLinePtr(%q) = %q", s, got)
	}
}

func TestNormalize_Corpus(t *testing.T) {
	c := &Corpus{
		Source: []string{"a\nb", "c"},
		Target: []string{"d", "e\nf"},
	}
	Normalize(c)

	if c.Source[0] != `a\nb` || c.Target[1] != `e\nf` {
		t.Errorf("unexpected corpus after Normalize: %q / %q", c.Source, c.Target)
	}
	for i, p := range c.Pairs() {
		if strings.Contains(p.Source, "\n") || strings.Contains(p.Target, "\n") {
			t.Errorf("pair %d still contains a newline: %+v", i, p)
		}
	}
}
