package song

import "strings"

// Parse converts raw lyrics text into a Song. It is total - malformed input
// degrades to a smaller (possibly empty) model instead of failing.
//
// Rules, applied line by line:
//   - title marker line sets the title, first occurrence wins;
//   - a line fully wrapped in brackets starts a new section, flushing
//     whatever was accumulated for the previous one (sections without slides
//     are dropped);
//   - a blank line completes the slide being accumulated;
//   - any other line is trimmed and buffered, every two buffered lines become
//     one slide.
//
// When input has no section headers at all every parsed slide goes into one
// synthesized section named after the title.
func Parse(text string) *Song {
	lines := strings.Split(text, "\n")

	s := &Song{Title: DefaultTitle}
	for _, line := range lines {
		if strings.HasPrefix(line, TitleMarker) {
			s.Title = strings.TrimSpace(strings.TrimPrefix(line, TitleMarker))
			break
		}
	}

	var (
		name      string
		inSection bool
		sawHeader bool
		slides    []Slide
		pending   []string
	)

	flush := func() {
		switch len(pending) {
		case 1:
			slides = append(slides, Slide{Line1: pending[0]})
		case 2:
			slides = append(slides, Slide{Line1: pending[0], Line2: pending[1]})
		}
		pending = pending[:0]
	}

	for _, line := range lines {
		if strings.HasPrefix(line, TitleMarker) {
			continue
		}

		trimmed := strings.TrimSpace(line)

		if len(trimmed) > 1 && strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			flush()
			if inSection && len(slides) > 0 {
				s.Sections = append(s.Sections, Section{Name: name, Slides: slides})
			}
			name = strings.TrimSpace(trimmed[1 : len(trimmed)-1])
			inSection, sawHeader = true, true
			slides = nil
			continue
		}

		if len(trimmed) == 0 {
			// slide boundary, not a section boundary
			flush()
			continue
		}

		pending = append(pending, trimmed)
		if len(pending) == 2 {
			flush()
		}
	}

	flush()
	if inSection && len(slides) > 0 {
		s.Sections = append(s.Sections, Section{Name: name, Slides: slides})
	}

	if !sawHeader && len(slides) > 0 {
		// headerless input - the whole file becomes one section
		name := s.Title
		if name == DefaultTitle {
			name = DefaultSectionName
		}
		s.Sections = append(s.Sections, Section{Name: name, Slides: slides})
	}

	return s
}
