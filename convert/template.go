package convert

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"prosong/convert/rtf"
	"prosong/prodoc"
	"prosong/song"
)

type templateGenerator struct {
	data []byte
	opt  options
}

// NewTemplate returns the clone strategy: the first cue and first group of an
// existing document serve as style exemplars and are stamped out once per
// slide and section with fresh identifiers and rewritten text.
func NewTemplate(data []byte, opts ...Option) Generator {
	return &templateGenerator{data: data, opt: newOptions(opts...)}
}

func (g *templateGenerator) Generate(ctx context.Context, s *song.Song) (*prodoc.Presentation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, err := prodoc.Unmarshal(g.data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadTemplate, err)
	}
	if len(p.Cues) == 0 || len(p.CueGroups) == 0 {
		return nil, fmt.Errorf("%w: no cues or groups to clone", ErrBadTemplate)
	}

	cueExemplar := p.Cues[0]
	groupExemplar := p.CueGroups[0]
	p.Cues, p.CueGroups = nil, nil
	g.opt.stampMetadata(p, s.Title)

	for i := range s.Sections {
		sec := &s.Sections[i]
		if len(sec.Slides) == 0 {
			continue
		}

		group := g.cloneGroup(groupExemplar, sec.Name)
		for _, sl := range sec.Slides {
			cue := g.cloneCue(cueExemplar, sl, sec.Name)
			p.Cues = append(p.Cues, cue)
			group.CueIdentifiers = append(group.CueIdentifiers, &prodoc.UUID{Value: cue.UUID.Value})
		}
		p.CueGroups = append(p.CueGroups, group)
	}

	g.opt.log.Debug("Document built from template",
		zap.String("title", s.Title),
		zap.Int("groups", len(p.CueGroups)),
		zap.Int("cues", len(p.Cues)))
	return p, nil
}

// cloneGroup copies the exemplar's styling and replaces its identity with the
// section's.
func (g *templateGenerator) cloneGroup(exemplar *prodoc.CueGroup, name string) *prodoc.CueGroup {
	group := exemplar.Clone()
	if group.Group == nil {
		group.Group = &prodoc.Group{}
	}
	color := colorFor(name)
	group.Group.UUID = g.opt.freshUUID()
	group.Group.Name = name
	group.Group.Color = &color
	group.Group.ApplicationGroupIdentifier = g.opt.freshUUID()
	group.Group.ApplicationGroupName = name
	group.CueIdentifiers = nil
	return group
}

// cloneCue copies the exemplar cue, regenerates identifiers at every level
// and injects the slide's text into the first styled text element. A payload
// that defeats the editor keeps the exemplar's original text; the cue is
// still emitted.
func (g *templateGenerator) cloneCue(exemplar *prodoc.Cue, sl song.Slide, section string) *prodoc.Cue {
	cue := exemplar.Clone()
	cue.UUID = g.opt.freshUUID()
	for _, a := range cue.Actions {
		a.UUID = g.opt.freshUUID()
		if a.Slide == nil || a.Slide.Presentation == nil || a.Slide.Presentation.BaseSlide == nil {
			continue
		}
		base := a.Slide.Presentation.BaseSlide
		base.UUID = g.opt.freshUUID()
		for _, se := range base.Elements {
			if se.Element != nil {
				se.Element.UUID = g.opt.freshUUID()
			}
		}
	}

	el := cue.FirstTextElement()
	if el == nil {
		g.opt.log.Warn("Template cue carries no text element, emitting clone unchanged",
			zap.String("section", section), zap.String("line1", sl.Line1))
		return cue
	}

	edited, err := rtf.Rewrite(el.Text.RTFData, sl.Line1, sl.Line2)
	if err != nil {
		g.opt.log.Warn("Unable to rewrite text payload, keeping template text",
			zap.String("section", section), zap.String("line1", sl.Line1), zap.Error(err))
		return cue
	}
	el.Text.RTFData = edited

	// the injected text must show verbatim
	if attr := el.Text.Attributes; attr != nil && attr.Capitalization == prodoc.CapitalizationUpper {
		attr.Capitalization = prodoc.CapitalizationNone
	}
	return cue
}
