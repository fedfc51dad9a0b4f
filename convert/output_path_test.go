package convert

import (
	"strings"
	"testing"
	"unicode"
)

func TestOutputFileName(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Amazing Grace", "Amazing_Grace.pro"},
		{"  Amazing Grace  ", "Amazing_Grace.pro"},
		{"Untitled", "Untitled.pro"},
		{"How Great Thou Art", "How_Great_Thou_Art.pro"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := OutputFileName(tt.title, false); got != tt.want {
				t.Errorf("OutputFileName(%q, false) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestOutputFileName_Transliterated(t *testing.T) {
	got := OutputFileName("Великая Благодать", true)

	if !strings.HasSuffix(got, ".pro") {
		t.Fatalf("OutputFileName() = %q, want .pro extension", got)
	}
	for _, r := range got {
		if r > unicode.MaxASCII {
			t.Errorf("OutputFileName() = %q, want ASCII only", got)
			break
		}
	}
	if strings.ContainsAny(got, " ") {
		t.Errorf("OutputFileName() = %q, want no spaces", got)
	}
}
