package rtf

import (
	"errors"
	"strings"
	"testing"
)

// A two-run payload in the shape captured from real documents: the style
// anchor precedes each literal run and the separator carries its own
// formatting directives.
const twoRunPayload = `{\rtf0\ansi\ansicpg1252{\fonttbl\f0\fnil Arial;}` +
	`\pard\qc\fs120\cf1\nosupersub\ulc0` +
	`Old first line` +
	`\par\pard\qc\fs120\cf1\nosupersub\ulc0` +
	`Old second line}`

func TestRewrite_FullMatch(t *testing.T) {
	got, err := Rewrite(twoRunPayload, "Hello", "World")
	if err != nil {
		t.Fatalf("Rewrite() error: %v", err)
	}

	wantPreamble := `{\rtf0\ansi\ansicpg1252{\fonttbl\f0\fnil Arial;}\pard\qc\fs120\cf1\nosupersub\ulc0`
	wantSeparator := `\par\pard\qc\fs120\cf1\nosupersub\ulc0`
	want := wantPreamble + "Hello" + wantSeparator + "World" + "}"
	if got != want {
		t.Errorf("Rewrite() = %q, want %q", got, want)
	}
	if strings.Contains(got, "Old") {
		t.Error("Rewrite() left original text in place")
	}
}

func TestRewrite_FullMatchEmptySecondLine(t *testing.T) {
	got, err := Rewrite(twoRunPayload, "Only", "")
	if err != nil {
		t.Fatalf("Rewrite() error: %v", err)
	}
	if !strings.Contains(got, `\ulc0Only\par`) {
		t.Errorf("Rewrite() = %q, want first run followed by preserved separator", got)
	}
	if strings.Contains(got, "Old") {
		t.Error("Rewrite() left original text in place")
	}
}

func TestRewrite_ReducedMatch(t *testing.T) {
	payload := `{\rtf0\ansi\pard\qc\fs120\ulc0Single run}`

	got, err := Rewrite(payload, "One", "Two")
	if err != nil {
		t.Fatalf("Rewrite() error: %v", err)
	}
	want := `{\rtf0\ansi\pard\qc\fs120\ulc0One` + defaultSeparator + `Two}`
	if got != want {
		t.Errorf("Rewrite() = %q, want %q", got, want)
	}
}

func TestRewrite_ReducedMatchNoSecondLine(t *testing.T) {
	payload := `{\rtf0\ansi\pard\qc\fs120\ulc0Single run}`

	got, err := Rewrite(payload, "One", "")
	if err != nil {
		t.Fatalf("Rewrite() error: %v", err)
	}
	want := `{\rtf0\ansi\pard\qc\fs120\ulc0One}`
	if got != want {
		t.Errorf("Rewrite() = %q, want %q", got, want)
	}
}

func TestRewrite_ReducedMatchReusesSeparator(t *testing.T) {
	payload := `{\rtf0\ansi\par\pard\qc\ulc0Single run}`

	got, err := Rewrite(payload, "One", "Two")
	if err != nil {
		t.Fatalf("Rewrite() error: %v", err)
	}
	if !strings.Contains(got, `One\parTwo`) {
		t.Errorf("Rewrite() = %q, want original paragraph marker reused as separator", got)
	}
}

func TestRewrite_BracedRunDoesNotLeakOriginalText(t *testing.T) {
	// Escaped braces in a literal run (our own Escape produces them) defeat
	// the full split. The reduced path must still drop the whole original
	// content instead of keeping the first run inside the preamble.
	payload := `{\rtf0\ansi\pard\qc\fs120\ulc0` +
		`Old one \{x\}` +
		`\par\pard\qc\fs120\ulc0` +
		`Old two}`

	got, err := Rewrite(payload, "Hello", "World")
	if err != nil {
		t.Fatalf("Rewrite() error: %v", err)
	}
	if strings.Contains(got, "Old") {
		t.Errorf("Rewrite() = %q, original text left in place", got)
	}
	want := `{\rtf0\ansi\pard\qc\fs120\ulc0Hello\parWorld}`
	if got != want {
		t.Errorf("Rewrite() = %q, want %q", got, want)
	}
}

func TestRewrite_Fallback(t *testing.T) {
	for _, payload := range []string{"", "no anchors here", `{\rtf0\ansi no anchor}`} {
		got, err := Rewrite(payload, "Hello", "World")
		if !errors.Is(err, ErrNoStructure) {
			t.Errorf("Rewrite(%q) error = %v, want ErrNoStructure", payload, err)
		}
		if want := DefaultPayload("Hello", "World"); got != want {
			t.Errorf("Rewrite(%q) = %q, want default payload", payload, got)
		}
	}
}

func TestRewrite_RoundTripOnSynthesized(t *testing.T) {
	// A payload we produced ourselves must stay editable.
	first := DefaultPayload("alpha", "beta")

	got, err := Rewrite(first, "gamma", "delta")
	if err != nil {
		t.Fatalf("Rewrite() error: %v", err)
	}
	if got != DefaultPayload("gamma", "delta") {
		t.Errorf("Rewrite() = %q, want %q", got, DefaultPayload("gamma", "delta"))
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, `plain`},
		{`a{b}c`, `a\{b\}c`},
		{`back\slash`, `back\\slash`},
		{`\{`, `\\\{`},
	}
	for _, tt := range tests {
		if got := Escape(tt.in); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRewrite_EscapesInjectedText(t *testing.T) {
	got, err := Rewrite(twoRunPayload, `brace {here}`, `slash \ there`)
	if err != nil {
		t.Fatalf("Rewrite() error: %v", err)
	}
	if !strings.Contains(got, `brace \{here\}`) {
		t.Errorf("Rewrite() = %q, want escaped braces", got)
	}
	if !strings.Contains(got, `slash \\ there`) {
		t.Errorf("Rewrite() = %q, want escaped backslash", got)
	}
}

func TestDefaultPayload_Structure(t *testing.T) {
	got := DefaultPayload("L1", "L2")

	if !strings.HasPrefix(got, `{\rtf0\ansi\ansicpg1252`) || !strings.HasSuffix(got, "}") {
		t.Errorf("DefaultPayload() = %q, want template-framed payload", got)
	}
	if !strings.Contains(got, `\ulc0L1\par\nL2}`) {
		t.Errorf("DefaultPayload() = %q, want both lines around the default separator", got)
	}
}
