// Package prodoc implements the subset of the presentation document schema
// the converter reads and writes. The schema is an external contract: the
// host application both produces and consumes these files, so the wire format
// is protobuf and field numbers are transcribed from captured documents -
// they must never change here.
//
// Only fields the converter actually touches are modeled. Every message keeps
// the raw bytes of all other fields in Unknown and re-emits them verbatim on
// Marshal, so cloning a template preserves styling we do not interpret.
package prodoc

// Platform identifies OS the document was authored on.
type Platform int32

const (
	PlatformUnknown Platform = 0
	PlatformMacOS   Platform = 1
	PlatformWindows Platform = 2
)

// Application identifies authoring application.
type Application int32

const (
	ApplicationUnknown      Application = 0
	ApplicationProPresenter Application = 1
)

// ActionType discriminates cue actions. The converter only ever emits slide
// presentation actions.
type ActionType int32

const (
	ActionTypeUnknown           ActionType = 0
	ActionTypePresentationSlide ActionType = 1
)

// CompletionActionType controls what happens when cue playback completes.
type CompletionActionType int32

const (
	CompletionActionTypeFirst CompletionActionType = 0
	CompletionActionTypeLast  CompletionActionType = 1
)

// Alignment is horizontal paragraph alignment.
type Alignment int32

const (
	AlignmentLeft   Alignment = 0
	AlignmentRight  Alignment = 1
	AlignmentCenter Alignment = 2
)

// VerticalAlignment positions text block inside its element.
type VerticalAlignment int32

const (
	VerticalAlignmentTop    VerticalAlignment = 0
	VerticalAlignmentMiddle VerticalAlignment = 1
	VerticalAlignmentBottom VerticalAlignment = 2
)

// ShapeType is the element path shape.
type ShapeType int32

const (
	ShapeTypeUnknown   ShapeType = 0
	ShapeTypeRectangle ShapeType = 1
	ShapeTypeEllipse   ShapeType = 2
)

// Capitalization is the display-time text transform. Injected text must be
// shown verbatim, so the template strategy resets CapitalizationUpper.
type Capitalization int32

const (
	CapitalizationNone  Capitalization = 0
	CapitalizationUpper Capitalization = 1
	CapitalizationLower Capitalization = 2
	CapitalizationTitle Capitalization = 3
)

// UUID wraps a textual identifier the way the schema does.
type UUID struct {
	Value string

	Unknown []byte
}

// Timestamp is seconds since Unix epoch.
type Timestamp struct {
	Seconds int64

	Unknown []byte
}

// Color is RGBA with components in [0, 1].
type Color struct {
	Red   float32
	Green float32
	Blue  float32
	Alpha float32

	Unknown []byte
}

// Version is a dotted application or platform version.
type Version struct {
	Major uint32
	Minor uint32
	Patch uint32
	Build string

	Unknown []byte
}

// ApplicationInfo records what produced the document.
type ApplicationInfo struct {
	Platform           Platform
	PlatformVersion    *Version
	Application        Application
	ApplicationVersion *Version

	Unknown []byte
}

type Point struct {
	X float64
	Y float64

	Unknown []byte
}

type Size struct {
	Width  float64
	Height float64

	Unknown []byte
}

type Rect struct {
	Origin *Point
	Size   *Size

	Unknown []byte
}

// PathPoint is one vertex of an element path with its control points.
type PathPoint struct {
	Point *Point
	Q0    *Point
	Q1    *Point

	Unknown []byte
}

type Shape struct {
	Type ShapeType

	Unknown []byte
}

type Path struct {
	Closed bool
	Points []*PathPoint
	Shape  *Shape

	Unknown []byte
}

type Fill struct {
	Color *Color

	Unknown []byte
}

type Stroke struct {
	Width float64
	Color *Color

	Unknown []byte
}

type Shadow struct {
	Angle   float64
	Offset  float64
	Radius  float64
	Color   *Color
	Opacity float64

	Unknown []byte
}

type Feather struct {
	Radius float64

	Unknown []byte
}

type Font struct {
	Name   string
	Size   float64
	Family string
	Face   string

	Unknown []byte
}

type ParagraphStyle struct {
	Alignment          Alignment
	LineHeightMultiple float64

	Unknown []byte
}

type TextAttributes struct {
	Font           *Font
	TextSolidFill  *Color
	ParagraphStyle *ParagraphStyle
	StrokeColor    *Color
	Capitalization Capitalization

	Unknown []byte
}

// Text is the styled text payload of an element (or of presentation notes).
// RTFData is the opaque styling blob the payload editor operates on.
type Text struct {
	Attributes                *TextAttributes
	RTFData                   string
	VerticalAlignment         VerticalAlignment
	IsSuperscriptStandardized bool
	TransformDelimiter        string

	Unknown []byte
}

// Element is one visual object on a slide.
type Element struct {
	UUID    *UUID
	Name    string
	Bounds  *Rect
	Opacity float64
	Path    *Path
	Fill    *Fill
	Stroke  *Stroke
	Shadow  *Shadow
	Feather *Feather
	Text    *Text

	Unknown []byte
}

// SlideElement wraps an element together with its build info flags.
type SlideElement struct {
	Element *Element
	Info    uint32

	Unknown []byte
}

type Slide struct {
	Elements        []*SlideElement
	Size            *Size
	UUID            *UUID
	BackgroundColor *Color

	Unknown []byte
}

// PresentationSlide carries the displayable slide plus its notes.
type PresentationSlide struct {
	BaseSlide *Slide
	Notes     *Text

	Unknown []byte
}

// ActionSlide is the slide payload of a presentation action.
type ActionSlide struct {
	Presentation *PresentationSlide

	Unknown []byte
}

type Action struct {
	UUID      *UUID
	Type      ActionType
	IsEnabled bool
	Slide     *ActionSlide

	Unknown []byte
}

type Cue struct {
	UUID                 *UUID
	CompletionTargetUUID *UUID
	CompletionActionType CompletionActionType
	CompletionActionUUID *UUID
	IsEnabled            bool
	Actions              []*Action

	Unknown []byte
}

// Group is the named, colored identity of a cue group.
type Group struct {
	UUID                       *UUID
	Name                       string
	Color                      *Color
	ApplicationGroupIdentifier *UUID
	ApplicationGroupName       string

	Unknown []byte
}

// CueGroup binds a group to its member cues by identifier.
type CueGroup struct {
	Group          *Group
	CueIdentifiers []*UUID

	Unknown []byte
}

type Background struct {
	Color *Color

	Unknown []byte
}

// Presentation is the document root: metadata, ordered cue groups and ordered
// cues.
type Presentation struct {
	ApplicationInfo     *ApplicationInfo
	UUID                *UUID
	Name                string
	LastDateUsed        *Timestamp
	LastModifiedDate    *Timestamp
	Background          *Background
	CueGroups           []*CueGroup
	Cues                []*Cue
	SelectedArrangement *UUID

	Unknown []byte
}

// FirstTextElement returns the first element of the cue that carries a styled
// text payload, walking actions and slide elements in order. Returns nil when
// the cue has none.
func (c *Cue) FirstTextElement() *Element {
	for _, a := range c.Actions {
		if a == nil || a.Slide == nil || a.Slide.Presentation == nil || a.Slide.Presentation.BaseSlide == nil {
			continue
		}
		for _, se := range a.Slide.Presentation.BaseSlide.Elements {
			if se != nil && se.Element != nil && se.Element.Text != nil {
				return se.Element
			}
		}
	}
	return nil
}
