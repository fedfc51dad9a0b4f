package prodoc

// Deep copies. The template strategy stamps out one cue per slide from a
// single donor cue, so every message in the cue subtree must clone cleanly,
// unknown bytes included.

func cloneBytes(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

func (x *UUID) Clone() *UUID {
	if x == nil {
		return nil
	}
	out := *x
	out.Unknown = cloneBytes(x.Unknown)
	return &out
}

func (x *Timestamp) Clone() *Timestamp {
	if x == nil {
		return nil
	}
	out := *x
	out.Unknown = cloneBytes(x.Unknown)
	return &out
}

func (x *Color) Clone() *Color {
	if x == nil {
		return nil
	}
	out := *x
	out.Unknown = cloneBytes(x.Unknown)
	return &out
}

func (x *Version) Clone() *Version {
	if x == nil {
		return nil
	}
	out := *x
	out.Unknown = cloneBytes(x.Unknown)
	return &out
}

func (x *ApplicationInfo) Clone() *ApplicationInfo {
	if x == nil {
		return nil
	}
	out := *x
	out.PlatformVersion = x.PlatformVersion.Clone()
	out.ApplicationVersion = x.ApplicationVersion.Clone()
	out.Unknown = cloneBytes(x.Unknown)
	return &out
}

func (x *Point) Clone() *Point {
	if x == nil {
		return nil
	}
	out := *x
	out.Unknown = cloneBytes(x.Unknown)
	return &out
}

func (x *Size) Clone() *Size {
	if x == nil {
		return nil
	}
	out := *x
	out.Unknown = cloneBytes(x.Unknown)
	return &out
}

func (x *Rect) Clone() *Rect {
	if x == nil {
		return nil
	}
	out := *x
	out.Origin = x.Origin.Clone()
	out.Size = x.Size.Clone()
	out.Unknown = cloneBytes(x.Unknown)
	return &out
}

func (x *PathPoint) Clone() *PathPoint {
	if x == nil {
		return nil
	}
	out := *x
	out.Point = x.Point.Clone()
	out.Q0 = x.Q0.Clone()
	out.Q1 = x.Q1.Clone()
	out.Unknown = cloneBytes(x.Unknown)
	return &out
}

func (x *Shape) Clone() *Shape {
	if x == nil {
		return nil
	}
	out := *x
	out.Unknown = cloneBytes(x.Unknown)
	return &out
}

func (x *Path) Clone() *Path {
	if x == nil {
		return nil
	}
	out := *x
	if x.Points != nil {
		out.Points = make([]*PathPoint, len(x.Points))
		for i, p := range x.Points {
			out.Points[i] = p.Clone()
		}
	}
	out.Shape = x.Shape.Clone()
	out.Unknown = cloneBytes(x.Unknown)
	return &out
}

func (x *Fill) Clone() *Fill {
	if x == nil {
		return nil
	}
	out := *x
	out.Color = x.Color.Clone()
	out.Unknown = cloneBytes(x.Unknown)
	return &out
}

func (x *Stroke) Clone() *Stroke {
	if x == nil {
		return nil
	}
	out := *x
	out.Color = x.Color.Clone()
	out.Unknown = cloneBytes(x.Unknown)
	return &out
}

func (x *Shadow) Clone() *Shadow {
	if x == nil {
		return nil
	}
	out := *x
	out.Color = x.Color.Clone()
	out.Unknown = cloneBytes(x.Unknown)
	return &out
}

func (x *Feather) Clone() *Feather {
	if x == nil {
		return nil
	}
	out := *x
	out.Unknown = cloneBytes(x.Unknown)
	return &out
}

func (x *Font) Clone() *Font {
	if x == nil {
		return nil
	}
	out := *x
	out.Unknown = cloneBytes(x.Unknown)
	return &out
}

func (x *ParagraphStyle) Clone() *ParagraphStyle {
	if x == nil {
		return nil
	}
	out := *x
	out.Unknown = cloneBytes(x.Unknown)
	return &out
}

func (x *TextAttributes) Clone() *TextAttributes {
	if x == nil {
		return nil
	}
	out := *x
	out.Font = x.Font.Clone()
	out.TextSolidFill = x.TextSolidFill.Clone()
	out.ParagraphStyle = x.ParagraphStyle.Clone()
	out.StrokeColor = x.StrokeColor.Clone()
	out.Unknown = cloneBytes(x.Unknown)
	return &out
}

func (x *Text) Clone() *Text {
	if x == nil {
		return nil
	}
	out := *x
	out.Attributes = x.Attributes.Clone()
	out.Unknown = cloneBytes(x.Unknown)
	return &out
}

func (x *Element) Clone() *Element {
	if x == nil {
		return nil
	}
	out := *x
	out.UUID = x.UUID.Clone()
	out.Bounds = x.Bounds.Clone()
	out.Path = x.Path.Clone()
	out.Fill = x.Fill.Clone()
	out.Stroke = x.Stroke.Clone()
	out.Shadow = x.Shadow.Clone()
	out.Feather = x.Feather.Clone()
	out.Text = x.Text.Clone()
	out.Unknown = cloneBytes(x.Unknown)
	return &out
}

func (x *SlideElement) Clone() *SlideElement {
	if x == nil {
		return nil
	}
	out := *x
	out.Element = x.Element.Clone()
	out.Unknown = cloneBytes(x.Unknown)
	return &out
}

func (x *Slide) Clone() *Slide {
	if x == nil {
		return nil
	}
	out := *x
	if x.Elements != nil {
		out.Elements = make([]*SlideElement, len(x.Elements))
		for i, e := range x.Elements {
			out.Elements[i] = e.Clone()
		}
	}
	out.Size = x.Size.Clone()
	out.UUID = x.UUID.Clone()
	out.BackgroundColor = x.BackgroundColor.Clone()
	out.Unknown = cloneBytes(x.Unknown)
	return &out
}

func (x *PresentationSlide) Clone() *PresentationSlide {
	if x == nil {
		return nil
	}
	out := *x
	out.BaseSlide = x.BaseSlide.Clone()
	out.Notes = x.Notes.Clone()
	out.Unknown = cloneBytes(x.Unknown)
	return &out
}

func (x *ActionSlide) Clone() *ActionSlide {
	if x == nil {
		return nil
	}
	out := *x
	out.Presentation = x.Presentation.Clone()
	out.Unknown = cloneBytes(x.Unknown)
	return &out
}

func (x *Action) Clone() *Action {
	if x == nil {
		return nil
	}
	out := *x
	out.UUID = x.UUID.Clone()
	out.Slide = x.Slide.Clone()
	out.Unknown = cloneBytes(x.Unknown)
	return &out
}

func (x *Cue) Clone() *Cue {
	if x == nil {
		return nil
	}
	out := *x
	out.UUID = x.UUID.Clone()
	out.CompletionTargetUUID = x.CompletionTargetUUID.Clone()
	out.CompletionActionUUID = x.CompletionActionUUID.Clone()
	if x.Actions != nil {
		out.Actions = make([]*Action, len(x.Actions))
		for i, a := range x.Actions {
			out.Actions[i] = a.Clone()
		}
	}
	out.Unknown = cloneBytes(x.Unknown)
	return &out
}

func (x *Group) Clone() *Group {
	if x == nil {
		return nil
	}
	out := *x
	out.UUID = x.UUID.Clone()
	out.Color = x.Color.Clone()
	out.ApplicationGroupIdentifier = x.ApplicationGroupIdentifier.Clone()
	out.Unknown = cloneBytes(x.Unknown)
	return &out
}

func (x *CueGroup) Clone() *CueGroup {
	if x == nil {
		return nil
	}
	out := *x
	out.Group = x.Group.Clone()
	if x.CueIdentifiers != nil {
		out.CueIdentifiers = make([]*UUID, len(x.CueIdentifiers))
		for i, id := range x.CueIdentifiers {
			out.CueIdentifiers[i] = id.Clone()
		}
	}
	out.Unknown = cloneBytes(x.Unknown)
	return &out
}

func (x *Background) Clone() *Background {
	if x == nil {
		return nil
	}
	out := *x
	out.Color = x.Color.Clone()
	out.Unknown = cloneBytes(x.Unknown)
	return &out
}

func (x *Presentation) Clone() *Presentation {
	if x == nil {
		return nil
	}
	out := *x
	out.ApplicationInfo = x.ApplicationInfo.Clone()
	out.UUID = x.UUID.Clone()
	out.LastDateUsed = x.LastDateUsed.Clone()
	out.LastModifiedDate = x.LastModifiedDate.Clone()
	out.Background = x.Background.Clone()
	if x.CueGroups != nil {
		out.CueGroups = make([]*CueGroup, len(x.CueGroups))
		for i, g := range x.CueGroups {
			out.CueGroups[i] = g.Clone()
		}
	}
	if x.Cues != nil {
		out.Cues = make([]*Cue, len(x.Cues))
		for i, c := range x.Cues {
			out.Cues[i] = c.Clone()
		}
	}
	out.SelectedArrangement = x.SelectedArrangement.Clone()
	out.Unknown = cloneBytes(x.Unknown)
	return &out
}
