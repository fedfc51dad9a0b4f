package prodoc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/encoding/protowire"
)

func samplePresentation() *Presentation {
	return &Presentation{
		ApplicationInfo: &ApplicationInfo{
			Platform:           PlatformMacOS,
			PlatformVersion:    &Version{Major: 14},
			Application:        ApplicationProPresenter,
			ApplicationVersion: &Version{Major: 7, Minor: 16, Build: "118766559"},
		},
		UUID:             &UUID{Value: "0E3F1E2C-6B2B-4E5E-8F2B-3D4C5A6B7C8D"},
		Name:             "Amazing Grace",
		LastDateUsed:     &Timestamp{Seconds: 1700000000},
		LastModifiedDate: &Timestamp{Seconds: 1700000001},
		Background:       &Background{Color: &Color{Alpha: 1}},
		CueGroups: []*CueGroup{
			{
				Group: &Group{
					UUID:  &UUID{Value: "11111111-1111-1111-1111-111111111111"},
					Name:  "Verse 1",
					Color: &Color{Green: 0.46666667, Blue: 0.8, Alpha: 1},
				},
				CueIdentifiers: []*UUID{{Value: "22222222-2222-2222-2222-222222222222"}},
			},
		},
		Cues: []*Cue{
			{
				UUID:                 &UUID{Value: "22222222-2222-2222-2222-222222222222"},
				CompletionTargetUUID: &UUID{Value: "00000000-0000-0000-0000-000000000000"},
				CompletionActionType: CompletionActionTypeLast,
				CompletionActionUUID: &UUID{Value: "00000000-0000-0000-0000-000000000000"},
				IsEnabled:            true,
				Actions: []*Action{
					{
						UUID:      &UUID{Value: "33333333-3333-3333-3333-333333333333"},
						Type:      ActionTypePresentationSlide,
						IsEnabled: true,
						Slide: &ActionSlide{
							Presentation: &PresentationSlide{
								BaseSlide: &Slide{
									Elements: []*SlideElement{
										{
											Element: &Element{
												UUID:    &UUID{Value: "44444444-4444-4444-4444-444444444444"},
												Name:    "Lyrics",
												Bounds:  &Rect{Origin: &Point{Y: 270}, Size: &Size{Width: 1920, Height: 540}},
												Opacity: 1,
												Path: &Path{
													Closed: true,
													Points: []*PathPoint{
														{Point: &Point{}, Q0: &Point{}, Q1: &Point{}},
														{Point: &Point{X: 1}, Q0: &Point{X: 1}, Q1: &Point{X: 1}},
													},
													Shape: &Shape{Type: ShapeTypeRectangle},
												},
												Fill:    &Fill{Color: &Color{}},
												Stroke:  &Stroke{Width: 3, Color: &Color{Red: 1, Green: 1, Blue: 1, Alpha: 1}},
												Shadow:  &Shadow{Angle: 315, Offset: 5, Radius: 5, Color: &Color{Alpha: 1}, Opacity: 0.75},
												Feather: &Feather{Radius: 0.05},
												Text: &Text{
													Attributes: &TextAttributes{
														Font:           &Font{Name: "Arial", Size: 60, Family: "Arial"},
														TextSolidFill:  &Color{Red: 1, Green: 1, Blue: 1, Alpha: 1},
														ParagraphStyle: &ParagraphStyle{Alignment: AlignmentCenter, LineHeightMultiple: 1},
													},
													RTFData:           `{\rtf0\ansi line one\par` + "\n" + `line two}`,
													VerticalAlignment: VerticalAlignmentMiddle,
												},
											},
											Info: 3,
										},
									},
									Size: &Size{Width: 1920, Height: 1080},
									UUID: &UUID{Value: "55555555-5555-5555-5555-555555555555"},
								},
							},
						},
					},
				},
			},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	want := samplePresentation()

	data := want.Marshal()
	if len(data) == 0 {
		t.Fatal("Marshal() produced no data")
	}

	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundTrip_Stable(t *testing.T) {
	p := samplePresentation()
	first := p.Marshal()

	q, err := Unmarshal(first)
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	second := q.Marshal()

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("re-marshal not byte stable (-first +second):\n%s", diff)
	}
}

func TestUnmarshal_PreservesUnknownFields(t *testing.T) {
	// A document written by a newer producer: modeled fields plus ones this
	// package knows nothing about.
	var uuid []byte
	uuid = protowire.AppendTag(uuid, 1, protowire.BytesType)
	uuid = protowire.AppendString(uuid, "AAAA")
	uuid = protowire.AppendTag(uuid, 7, protowire.VarintType)
	uuid = protowire.AppendVarint(uuid, 42)

	var doc []byte
	doc = protowire.AppendTag(doc, 2, protowire.BytesType)
	doc = protowire.AppendBytes(doc, uuid)
	doc = protowire.AppendTag(doc, 3, protowire.BytesType)
	doc = protowire.AppendString(doc, "With extras")
	doc = protowire.AppendTag(doc, 100, protowire.BytesType)
	doc = protowire.AppendString(doc, "opaque blob")

	p, err := Unmarshal(doc)
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if p.UUID == nil || p.UUID.Value != "AAAA" {
		t.Fatalf("UUID = %+v, want value AAAA", p.UUID)
	}
	if len(p.Unknown) == 0 || len(p.UUID.Unknown) == 0 {
		t.Fatal("unknown fields were not captured")
	}

	out := p.Marshal()
	q, err := Unmarshal(out)
	if err != nil {
		t.Fatalf("Unmarshal(Marshal()) error: %v", err)
	}
	if diff := cmp.Diff(p, q); diff != "" {
		t.Errorf("unknown fields lost in round trip (-want +got):\n%s", diff)
	}
}

func TestUnmarshal_Truncated(t *testing.T) {
	data := samplePresentation().Marshal()
	if _, err := Unmarshal(data[:len(data)-3]); err == nil {
		t.Error("Unmarshal() of truncated data succeeded, want error")
	}
}

func TestClone_Independent(t *testing.T) {
	orig := samplePresentation()
	c := orig.Clone()

	if diff := cmp.Diff(orig, c); diff != "" {
		t.Fatalf("Clone() mismatch (-orig +clone):\n%s", diff)
	}

	el := c.Cues[0].FirstTextElement()
	if el == nil {
		t.Fatal("FirstTextElement() = nil on clone")
	}
	el.Text.RTFData = "changed"
	el.UUID.Value = "changed"
	c.Cues[0].UUID.Value = "changed"

	if got := orig.Cues[0].FirstTextElement().Text.RTFData; got == "changed" {
		t.Error("mutating clone changed original text payload")
	}
	if orig.Cues[0].UUID.Value == "changed" {
		t.Error("mutating clone changed original cue identity")
	}
}

func TestFirstTextElement(t *testing.T) {
	p := samplePresentation()
	if el := p.Cues[0].FirstTextElement(); el == nil || el.Name != "Lyrics" {
		t.Errorf("FirstTextElement() = %+v, want the lyrics element", el)
	}

	empty := &Cue{Actions: []*Action{{Type: ActionTypePresentationSlide}}}
	if el := empty.FirstTextElement(); el != nil {
		t.Errorf("FirstTextElement() on textless cue = %+v, want nil", el)
	}
}
