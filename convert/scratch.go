package convert

import (
	"context"

	"go.uber.org/zap"

	"prosong/convert/rtf"
	"prosong/prodoc"
	"prosong/song"
)

// Fixed canvas geometry: full HD slide with the lyrics band anchored to the
// top, text centered within it by vertical alignment.
const (
	canvasWidth  = 1920
	canvasHeight = 1080
	lyricsHeight = 540
)

// slideElementInfo is the build info flag value observed on text elements in
// captured documents.
const slideElementInfo = 3

// notesPayload is the empty presenter notes blob captured from real
// documents, verbatim.
const notesPayload = `{\rtf0\ansi\ansicpg1252` +
	`{\fonttbl\f0\fnil ArialMT;}` +
	`{\colortbl;\red0\green0\blue0;\red255\green255\blue255;\red255\green255\blue255;}` +
	`{\*\expandedcolortbl;\csgenericrgb\c0\c0\c0\c100000;\csgenericrgb\c100000\c100000\c100000\c100000;\csgenericrgb\c100000\c100000\c100000\c0;}` +
	`{\*\listtable}{\*\listoverridetable}` +
	`\uc1\paperw12240\margl0\margr0\margt0\margb0` +
	`\pard\li0\fi0\ri0\ql\sb0\sa0\sl240\slmult1\slleading0` +
	`\f0\b0\i0\ul0\strike0\fs100\expnd0\expndtw0` +
	`\CocoaLigature1\cf1\strokewidth0\strokec2\nosupersub\ulc0\highlight3\cb3}`

type scratchGenerator struct {
	opt options
}

// NewScratch returns the from-scratch strategy: a complete document with
// fixed default styling, no external inputs. It only fails on cancellation.
func NewScratch(opts ...Option) Generator {
	return &scratchGenerator{opt: newOptions(opts...)}
}

func (g *scratchGenerator) Generate(ctx context.Context, s *song.Song) (*prodoc.Presentation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p := &prodoc.Presentation{
		ApplicationInfo: defaultApplicationInfo(),
		Background:      &prodoc.Background{Color: &prodoc.Color{Alpha: 1}},
	}
	g.opt.stampMetadata(p, s.Title)
	p.SelectedArrangement = g.opt.freshUUID()

	for i := range s.Sections {
		sec := &s.Sections[i]
		if len(sec.Slides) == 0 {
			continue
		}

		color := colorFor(sec.Name)
		group := &prodoc.CueGroup{
			Group: &prodoc.Group{
				UUID:                       g.opt.freshUUID(),
				Name:                       sec.Name,
				Color:                      &color,
				ApplicationGroupIdentifier: g.opt.freshUUID(),
				ApplicationGroupName:       sec.Name,
			},
		}
		for _, sl := range sec.Slides {
			cue := g.buildCue(sl)
			p.Cues = append(p.Cues, cue)
			group.CueIdentifiers = append(group.CueIdentifiers, &prodoc.UUID{Value: cue.UUID.Value})
		}
		p.CueGroups = append(p.CueGroups, group)
	}

	g.opt.log.Debug("Document built from scratch",
		zap.String("title", s.Title),
		zap.Int("groups", len(p.CueGroups)),
		zap.Int("cues", len(p.Cues)))
	return p, nil
}

func defaultApplicationInfo() *prodoc.ApplicationInfo {
	return &prodoc.ApplicationInfo{
		Platform:           prodoc.PlatformMacOS,
		PlatformVersion:    &prodoc.Version{Major: 14},
		Application:        prodoc.ApplicationProPresenter,
		ApplicationVersion: &prodoc.Version{Major: 7, Minor: 16, Build: "118766559"},
	}
}

func (g *scratchGenerator) buildCue(sl song.Slide) *prodoc.Cue {
	return &prodoc.Cue{
		UUID:                 g.opt.freshUUID(),
		CompletionTargetUUID: &prodoc.UUID{Value: zeroID},
		CompletionActionType: prodoc.CompletionActionTypeLast,
		CompletionActionUUID: &prodoc.UUID{Value: zeroID},
		IsEnabled:            true,
		Actions: []*prodoc.Action{
			{
				UUID:      g.opt.freshUUID(),
				Type:      prodoc.ActionTypePresentationSlide,
				IsEnabled: true,
				Slide: &prodoc.ActionSlide{
					Presentation: &prodoc.PresentationSlide{
						BaseSlide: g.buildSlide(sl),
						Notes:     defaultNotes(),
					},
				},
			},
		},
	}
}

func (g *scratchGenerator) buildSlide(sl song.Slide) *prodoc.Slide {
	return &prodoc.Slide{
		Elements: []*prodoc.SlideElement{
			{
				Element: g.buildTextElement(sl.Line1, sl.Line2),
				Info:    slideElementInfo,
			},
		},
		Size:            &prodoc.Size{Width: canvasWidth, Height: canvasHeight},
		UUID:            g.opt.freshUUID(),
		BackgroundColor: &prodoc.Color{Alpha: 1},
	}
}

func (g *scratchGenerator) buildTextElement(line1, line2 string) *prodoc.Element {
	return &prodoc.Element{
		UUID:    g.opt.freshUUID(),
		Name:    "Line one...",
		Bounds:  &prodoc.Rect{Origin: &prodoc.Point{X: 0, Y: 0}, Size: &prodoc.Size{Width: canvasWidth, Height: lyricsHeight}},
		Opacity: 1,
		Path:    unitRectPath(),
		Fill:    &prodoc.Fill{Color: &prodoc.Color{Red: 0.117647059, Green: 0.564705908, Blue: 1, Alpha: 1}},
		Stroke:  &prodoc.Stroke{Width: 3, Color: &prodoc.Color{Red: 1, Green: 1, Blue: 1, Alpha: 1}},
		Shadow:  &prodoc.Shadow{Angle: 315, Offset: 5, Radius: 5, Color: &prodoc.Color{Alpha: 1}, Opacity: 0.75},
		Feather: &prodoc.Feather{Radius: 0.05},
		Text: &prodoc.Text{
			Attributes: &prodoc.TextAttributes{
				Font:           &prodoc.Font{Name: "Arial", Size: 60, Family: "Arial", Face: "Regular"},
				TextSolidFill:  &prodoc.Color{Red: 1, Green: 1, Blue: 1, Alpha: 1},
				ParagraphStyle: &prodoc.ParagraphStyle{Alignment: prodoc.AlignmentCenter, LineHeightMultiple: 1},
				StrokeColor:    &prodoc.Color{Red: 1, Green: 1, Blue: 1, Alpha: 1},
			},
			RTFData:                   rtf.DefaultPayload(line1, line2),
			VerticalAlignment:         prodoc.VerticalAlignmentMiddle,
			IsSuperscriptStandardized: true,
			TransformDelimiter:        "  •  ",
		},
	}
}

// unitRectPath is the closed rectangle in normalized coordinates every shape
// element carries.
func unitRectPath() *prodoc.Path {
	corners := []prodoc.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	p := &prodoc.Path{
		Closed: true,
		Shape:  &prodoc.Shape{Type: prodoc.ShapeTypeRectangle},
	}
	for _, c := range corners {
		p.Points = append(p.Points, &prodoc.PathPoint{
			Point: &prodoc.Point{X: c.X, Y: c.Y},
			Q0:    &prodoc.Point{X: c.X, Y: c.Y},
			Q1:    &prodoc.Point{X: c.X, Y: c.Y},
		})
	}
	return p
}

func defaultNotes() *prodoc.Text {
	return &prodoc.Text{
		Attributes: &prodoc.TextAttributes{
			Font:           &prodoc.Font{Name: "ArialMT", Size: 50, Family: "Arial", Face: "Regular"},
			TextSolidFill:  &prodoc.Color{Alpha: 1},
			ParagraphStyle: &prodoc.ParagraphStyle{LineHeightMultiple: 1},
			StrokeColor:    &prodoc.Color{Red: 1, Green: 1, Blue: 1, Alpha: 1},
		},
		RTFData: notesPayload,
	}
}
