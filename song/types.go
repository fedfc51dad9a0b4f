// Package song implements parsing of the plain-text lyrics format into a
// structured model used by document generation.
package song

import "strings"

// Input format markers.
const (
	// TitleMarker starts the line carrying the song title.
	TitleMarker = "# Song Title:"
	// DefaultTitle is used when input carries no title line.
	DefaultTitle = "Untitled"
	// DefaultSectionName is used for the synthesized section when input has
	// neither section headers nor a usable title.
	DefaultSectionName = "Lyrics"
)

// Slide is one or two lines of lyric text destined for a single on-screen cue.
// Either line may be empty, never absent.
type Slide struct {
	Line1 string
	Line2 string
}

// Section is a named group of consecutive slides ("Verse 1", "Chorus"...).
type Section struct {
	Name   string
	Slides []Slide
}

// Song is the parsed representation of one lyrics file. Sections keep input
// order and never contain zero slides.
type Song struct {
	Title    string
	Sections []Section
}

// SlideCount returns total number of slides across all sections.
func (s *Song) SlideCount() int {
	n := 0
	for i := range s.Sections {
		n += len(s.Sections[i].Slides)
	}
	return n
}

// String renders the song back into the input text format. Parsing the result
// yields an equal model as long as section names do not contain brackets.
func (s *Song) String() string {
	var b strings.Builder
	b.WriteString(TitleMarker)
	b.WriteByte(' ')
	b.WriteString(s.Title)
	b.WriteByte('\n')
	for i := range s.Sections {
		b.WriteByte('\n')
		b.WriteByte('[')
		b.WriteString(s.Sections[i].Name)
		b.WriteString("]\n")
		for j, sl := range s.Sections[i].Slides {
			if j > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(sl.Line1)
			b.WriteByte('\n')
			if len(sl.Line2) > 0 {
				b.WriteString(sl.Line2)
				b.WriteByte('\n')
			}
		}
	}
	return b.String()
}
