package prodoc

// Hand-rolled protobuf framing. The document schema is fixed upstream and the
// converter touches only a small part of it, so instead of dragging generated
// bindings around we read and write the wire format directly and keep
// everything we do not model as raw bytes. Fields are emitted in ascending
// number order followed by preserved unknown fields; protobuf readers do not
// care about ordering.

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Unmarshal decodes a complete presentation document.
func Unmarshal(data []byte) (*Presentation, error) {
	p := &Presentation{}
	if err := p.unmarshal(data); err != nil {
		return nil, fmt.Errorf("presentation document: %w", err)
	}
	return p, nil
}

// Marshal encodes a complete presentation document.
func (p *Presentation) Marshal() []byte {
	return p.marshal(nil)
}

// walkFields drives a single pass over one message body. Scalar values are
// pre-consumed into val, length-delimited payloads into payload and raw spans
// (tag included) are handed over for unknown field preservation.
func walkFields(b []byte, fn func(num protowire.Number, typ protowire.Type, val uint64, payload, raw []byte) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		rest := b[n:]
		var (
			val     uint64
			payload []byte
			m       int
		)
		switch typ {
		case protowire.VarintType:
			val, m = protowire.ConsumeVarint(rest)
		case protowire.Fixed32Type:
			var v32 uint32
			v32, m = protowire.ConsumeFixed32(rest)
			val = uint64(v32)
		case protowire.Fixed64Type:
			val, m = protowire.ConsumeFixed64(rest)
		case protowire.BytesType:
			payload, m = protowire.ConsumeBytes(rest)
		default:
			m = protowire.ConsumeFieldValue(num, typ, rest)
		}
		if m < 0 {
			return protowire.ParseError(m)
		}
		if err := fn(num, typ, val, payload, b[:n+m]); err != nil {
			return err
		}
		b = b[n+m:]
	}
	return nil
}

func appendMsg(b []byte, num protowire.Number, body []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, body)
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if len(s) == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	if !v {
		return b
	}
	return appendVarint(b, num, 1)
}

func appendFloat32(b []byte, num protowire.Number, v float32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, math.Float32bits(v))
}

func appendFloat64(b []byte, num protowire.Number, v float64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(v))
}

func asFloat32(val uint64) float32 { return math.Float32frombits(uint32(val)) }
func asFloat64(val uint64) float64 { return math.Float64frombits(val) }

// UUID

func (x *UUID) marshal(b []byte) []byte {
	var body []byte
	body = appendString(body, 1, x.Value)
	body = append(body, x.Unknown...)
	return body[:len(body):len(body)]
}

func (x *UUID) emit(b []byte, num protowire.Number) []byte {
	return appendMsg(b, num, x.marshal(nil))
}

func (x *UUID) unmarshal(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, _ uint64, payload, raw []byte) error {
		if num == 1 && typ == protowire.BytesType {
			x.Value = string(payload)
		} else {
			x.Unknown = append(x.Unknown, raw...)
		}
		return nil
	})
}

// Timestamp

func (x *Timestamp) marshal(_ []byte) []byte {
	var body []byte
	body = appendVarint(body, 1, uint64(x.Seconds))
	return append(body, x.Unknown...)
}

func (x *Timestamp) unmarshal(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, val uint64, _, raw []byte) error {
		if num == 1 && typ == protowire.VarintType {
			x.Seconds = int64(val)
		} else {
			x.Unknown = append(x.Unknown, raw...)
		}
		return nil
	})
}

// Color

func (x *Color) marshal(_ []byte) []byte {
	var body []byte
	body = appendFloat32(body, 1, x.Red)
	body = appendFloat32(body, 2, x.Green)
	body = appendFloat32(body, 3, x.Blue)
	body = appendFloat32(body, 4, x.Alpha)
	return append(body, x.Unknown...)
}

func (x *Color) unmarshal(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, val uint64, _, raw []byte) error {
		if typ != protowire.Fixed32Type || num < 1 || num > 4 {
			x.Unknown = append(x.Unknown, raw...)
			return nil
		}
		switch num {
		case 1:
			x.Red = asFloat32(val)
		case 2:
			x.Green = asFloat32(val)
		case 3:
			x.Blue = asFloat32(val)
		case 4:
			x.Alpha = asFloat32(val)
		}
		return nil
	})
}

// Version

func (x *Version) marshal(_ []byte) []byte {
	var body []byte
	body = appendVarint(body, 1, uint64(x.Major))
	body = appendVarint(body, 2, uint64(x.Minor))
	body = appendVarint(body, 3, uint64(x.Patch))
	body = appendString(body, 4, x.Build)
	return append(body, x.Unknown...)
}

func (x *Version) unmarshal(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, val uint64, payload, raw []byte) error {
		switch {
		case num == 1 && typ == protowire.VarintType:
			x.Major = uint32(val)
		case num == 2 && typ == protowire.VarintType:
			x.Minor = uint32(val)
		case num == 3 && typ == protowire.VarintType:
			x.Patch = uint32(val)
		case num == 4 && typ == protowire.BytesType:
			x.Build = string(payload)
		default:
			x.Unknown = append(x.Unknown, raw...)
		}
		return nil
	})
}

// ApplicationInfo

func (x *ApplicationInfo) marshal(_ []byte) []byte {
	var body []byte
	body = appendVarint(body, 1, uint64(x.Platform))
	if x.PlatformVersion != nil {
		body = appendMsg(body, 2, x.PlatformVersion.marshal(nil))
	}
	body = appendVarint(body, 3, uint64(x.Application))
	if x.ApplicationVersion != nil {
		body = appendMsg(body, 4, x.ApplicationVersion.marshal(nil))
	}
	return append(body, x.Unknown...)
}

func (x *ApplicationInfo) unmarshal(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, val uint64, payload, raw []byte) error {
		switch {
		case num == 1 && typ == protowire.VarintType:
			x.Platform = Platform(val)
		case num == 2 && typ == protowire.BytesType:
			x.PlatformVersion = &Version{}
			return x.PlatformVersion.unmarshal(payload)
		case num == 3 && typ == protowire.VarintType:
			x.Application = Application(val)
		case num == 4 && typ == protowire.BytesType:
			x.ApplicationVersion = &Version{}
			return x.ApplicationVersion.unmarshal(payload)
		default:
			x.Unknown = append(x.Unknown, raw...)
		}
		return nil
	})
}

// Geometry

func (x *Point) marshal(_ []byte) []byte {
	var body []byte
	body = appendFloat64(body, 1, x.X)
	body = appendFloat64(body, 2, x.Y)
	return append(body, x.Unknown...)
}

func (x *Point) unmarshal(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, val uint64, _, raw []byte) error {
		switch {
		case num == 1 && typ == protowire.Fixed64Type:
			x.X = asFloat64(val)
		case num == 2 && typ == protowire.Fixed64Type:
			x.Y = asFloat64(val)
		default:
			x.Unknown = append(x.Unknown, raw...)
		}
		return nil
	})
}

func (x *Size) marshal(_ []byte) []byte {
	var body []byte
	body = appendFloat64(body, 1, x.Width)
	body = appendFloat64(body, 2, x.Height)
	return append(body, x.Unknown...)
}

func (x *Size) unmarshal(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, val uint64, _, raw []byte) error {
		switch {
		case num == 1 && typ == protowire.Fixed64Type:
			x.Width = asFloat64(val)
		case num == 2 && typ == protowire.Fixed64Type:
			x.Height = asFloat64(val)
		default:
			x.Unknown = append(x.Unknown, raw...)
		}
		return nil
	})
}

func (x *Rect) marshal(_ []byte) []byte {
	var body []byte
	if x.Origin != nil {
		body = appendMsg(body, 1, x.Origin.marshal(nil))
	}
	if x.Size != nil {
		body = appendMsg(body, 2, x.Size.marshal(nil))
	}
	return append(body, x.Unknown...)
}

func (x *Rect) unmarshal(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, _ uint64, payload, raw []byte) error {
		switch {
		case num == 1 && typ == protowire.BytesType:
			x.Origin = &Point{}
			return x.Origin.unmarshal(payload)
		case num == 2 && typ == protowire.BytesType:
			x.Size = &Size{}
			return x.Size.unmarshal(payload)
		default:
			x.Unknown = append(x.Unknown, raw...)
		}
		return nil
	})
}

func (x *PathPoint) marshal(_ []byte) []byte {
	var body []byte
	if x.Point != nil {
		body = appendMsg(body, 1, x.Point.marshal(nil))
	}
	if x.Q0 != nil {
		body = appendMsg(body, 2, x.Q0.marshal(nil))
	}
	if x.Q1 != nil {
		body = appendMsg(body, 3, x.Q1.marshal(nil))
	}
	return append(body, x.Unknown...)
}

func (x *PathPoint) unmarshal(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, _ uint64, payload, raw []byte) error {
		if typ != protowire.BytesType || num < 1 || num > 3 {
			x.Unknown = append(x.Unknown, raw...)
			return nil
		}
		p := &Point{}
		if err := p.unmarshal(payload); err != nil {
			return err
		}
		switch num {
		case 1:
			x.Point = p
		case 2:
			x.Q0 = p
		case 3:
			x.Q1 = p
		}
		return nil
	})
}

func (x *Shape) marshal(_ []byte) []byte {
	var body []byte
	body = appendVarint(body, 1, uint64(x.Type))
	return append(body, x.Unknown...)
}

func (x *Shape) unmarshal(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, val uint64, _, raw []byte) error {
		if num == 1 && typ == protowire.VarintType {
			x.Type = ShapeType(val)
		} else {
			x.Unknown = append(x.Unknown, raw...)
		}
		return nil
	})
}

func (x *Path) marshal(_ []byte) []byte {
	var body []byte
	body = appendBool(body, 1, x.Closed)
	for _, p := range x.Points {
		body = appendMsg(body, 2, p.marshal(nil))
	}
	if x.Shape != nil {
		body = appendMsg(body, 3, x.Shape.marshal(nil))
	}
	return append(body, x.Unknown...)
}

func (x *Path) unmarshal(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, val uint64, payload, raw []byte) error {
		switch {
		case num == 1 && typ == protowire.VarintType:
			x.Closed = val != 0
		case num == 2 && typ == protowire.BytesType:
			p := &PathPoint{}
			if err := p.unmarshal(payload); err != nil {
				return err
			}
			x.Points = append(x.Points, p)
		case num == 3 && typ == protowire.BytesType:
			x.Shape = &Shape{}
			return x.Shape.unmarshal(payload)
		default:
			x.Unknown = append(x.Unknown, raw...)
		}
		return nil
	})
}

// Styling

func (x *Fill) marshal(_ []byte) []byte {
	var body []byte
	if x.Color != nil {
		body = appendMsg(body, 1, x.Color.marshal(nil))
	}
	return append(body, x.Unknown...)
}

func (x *Fill) unmarshal(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, _ uint64, payload, raw []byte) error {
		if num == 1 && typ == protowire.BytesType {
			x.Color = &Color{}
			return x.Color.unmarshal(payload)
		}
		x.Unknown = append(x.Unknown, raw...)
		return nil
	})
}

func (x *Stroke) marshal(_ []byte) []byte {
	var body []byte
	body = appendFloat64(body, 1, x.Width)
	if x.Color != nil {
		body = appendMsg(body, 2, x.Color.marshal(nil))
	}
	return append(body, x.Unknown...)
}

func (x *Stroke) unmarshal(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, val uint64, payload, raw []byte) error {
		switch {
		case num == 1 && typ == protowire.Fixed64Type:
			x.Width = asFloat64(val)
		case num == 2 && typ == protowire.BytesType:
			x.Color = &Color{}
			return x.Color.unmarshal(payload)
		default:
			x.Unknown = append(x.Unknown, raw...)
		}
		return nil
	})
}

func (x *Shadow) marshal(_ []byte) []byte {
	var body []byte
	body = appendFloat64(body, 1, x.Angle)
	body = appendFloat64(body, 2, x.Offset)
	body = appendFloat64(body, 3, x.Radius)
	if x.Color != nil {
		body = appendMsg(body, 4, x.Color.marshal(nil))
	}
	body = appendFloat64(body, 5, x.Opacity)
	return append(body, x.Unknown...)
}

func (x *Shadow) unmarshal(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, val uint64, payload, raw []byte) error {
		switch {
		case num == 1 && typ == protowire.Fixed64Type:
			x.Angle = asFloat64(val)
		case num == 2 && typ == protowire.Fixed64Type:
			x.Offset = asFloat64(val)
		case num == 3 && typ == protowire.Fixed64Type:
			x.Radius = asFloat64(val)
		case num == 4 && typ == protowire.BytesType:
			x.Color = &Color{}
			return x.Color.unmarshal(payload)
		case num == 5 && typ == protowire.Fixed64Type:
			x.Opacity = asFloat64(val)
		default:
			x.Unknown = append(x.Unknown, raw...)
		}
		return nil
	})
}

func (x *Feather) marshal(_ []byte) []byte {
	var body []byte
	body = appendFloat64(body, 1, x.Radius)
	return append(body, x.Unknown...)
}

func (x *Feather) unmarshal(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, val uint64, _, raw []byte) error {
		if num == 1 && typ == protowire.Fixed64Type {
			x.Radius = asFloat64(val)
		} else {
			x.Unknown = append(x.Unknown, raw...)
		}
		return nil
	})
}

func (x *Font) marshal(_ []byte) []byte {
	var body []byte
	body = appendString(body, 1, x.Name)
	body = appendFloat64(body, 2, x.Size)
	body = appendString(body, 3, x.Family)
	body = appendString(body, 4, x.Face)
	return append(body, x.Unknown...)
}

func (x *Font) unmarshal(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, val uint64, payload, raw []byte) error {
		switch {
		case num == 1 && typ == protowire.BytesType:
			x.Name = string(payload)
		case num == 2 && typ == protowire.Fixed64Type:
			x.Size = asFloat64(val)
		case num == 3 && typ == protowire.BytesType:
			x.Family = string(payload)
		case num == 4 && typ == protowire.BytesType:
			x.Face = string(payload)
		default:
			x.Unknown = append(x.Unknown, raw...)
		}
		return nil
	})
}

func (x *ParagraphStyle) marshal(_ []byte) []byte {
	var body []byte
	body = appendVarint(body, 1, uint64(x.Alignment))
	body = appendFloat64(body, 2, x.LineHeightMultiple)
	return append(body, x.Unknown...)
}

func (x *ParagraphStyle) unmarshal(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, val uint64, _, raw []byte) error {
		switch {
		case num == 1 && typ == protowire.VarintType:
			x.Alignment = Alignment(val)
		case num == 2 && typ == protowire.Fixed64Type:
			x.LineHeightMultiple = asFloat64(val)
		default:
			x.Unknown = append(x.Unknown, raw...)
		}
		return nil
	})
}

func (x *TextAttributes) marshal(_ []byte) []byte {
	var body []byte
	if x.Font != nil {
		body = appendMsg(body, 1, x.Font.marshal(nil))
	}
	if x.TextSolidFill != nil {
		body = appendMsg(body, 2, x.TextSolidFill.marshal(nil))
	}
	if x.ParagraphStyle != nil {
		body = appendMsg(body, 3, x.ParagraphStyle.marshal(nil))
	}
	if x.StrokeColor != nil {
		body = appendMsg(body, 4, x.StrokeColor.marshal(nil))
	}
	body = appendVarint(body, 5, uint64(x.Capitalization))
	return append(body, x.Unknown...)
}

func (x *TextAttributes) unmarshal(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, val uint64, payload, raw []byte) error {
		switch {
		case num == 1 && typ == protowire.BytesType:
			x.Font = &Font{}
			return x.Font.unmarshal(payload)
		case num == 2 && typ == protowire.BytesType:
			x.TextSolidFill = &Color{}
			return x.TextSolidFill.unmarshal(payload)
		case num == 3 && typ == protowire.BytesType:
			x.ParagraphStyle = &ParagraphStyle{}
			return x.ParagraphStyle.unmarshal(payload)
		case num == 4 && typ == protowire.BytesType:
			x.StrokeColor = &Color{}
			return x.StrokeColor.unmarshal(payload)
		case num == 5 && typ == protowire.VarintType:
			x.Capitalization = Capitalization(val)
		default:
			x.Unknown = append(x.Unknown, raw...)
		}
		return nil
	})
}

func (x *Text) marshal(_ []byte) []byte {
	var body []byte
	if x.Attributes != nil {
		body = appendMsg(body, 1, x.Attributes.marshal(nil))
	}
	body = appendString(body, 2, x.RTFData)
	body = appendVarint(body, 3, uint64(x.VerticalAlignment))
	body = appendBool(body, 4, x.IsSuperscriptStandardized)
	body = appendString(body, 5, x.TransformDelimiter)
	return append(body, x.Unknown...)
}

func (x *Text) unmarshal(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, val uint64, payload, raw []byte) error {
		switch {
		case num == 1 && typ == protowire.BytesType:
			x.Attributes = &TextAttributes{}
			return x.Attributes.unmarshal(payload)
		case num == 2 && typ == protowire.BytesType:
			x.RTFData = string(payload)
		case num == 3 && typ == protowire.VarintType:
			x.VerticalAlignment = VerticalAlignment(val)
		case num == 4 && typ == protowire.VarintType:
			x.IsSuperscriptStandardized = val != 0
		case num == 5 && typ == protowire.BytesType:
			x.TransformDelimiter = string(payload)
		default:
			x.Unknown = append(x.Unknown, raw...)
		}
		return nil
	})
}

// Slides

func (x *Element) marshal(_ []byte) []byte {
	var body []byte
	if x.UUID != nil {
		body = x.UUID.emit(body, 1)
	}
	body = appendString(body, 2, x.Name)
	if x.Bounds != nil {
		body = appendMsg(body, 3, x.Bounds.marshal(nil))
	}
	body = appendFloat64(body, 4, x.Opacity)
	if x.Path != nil {
		body = appendMsg(body, 5, x.Path.marshal(nil))
	}
	if x.Fill != nil {
		body = appendMsg(body, 6, x.Fill.marshal(nil))
	}
	if x.Stroke != nil {
		body = appendMsg(body, 7, x.Stroke.marshal(nil))
	}
	if x.Shadow != nil {
		body = appendMsg(body, 8, x.Shadow.marshal(nil))
	}
	if x.Feather != nil {
		body = appendMsg(body, 9, x.Feather.marshal(nil))
	}
	if x.Text != nil {
		body = appendMsg(body, 10, x.Text.marshal(nil))
	}
	return append(body, x.Unknown...)
}

func (x *Element) unmarshal(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, val uint64, payload, raw []byte) error {
		switch {
		case num == 1 && typ == protowire.BytesType:
			x.UUID = &UUID{}
			return x.UUID.unmarshal(payload)
		case num == 2 && typ == protowire.BytesType:
			x.Name = string(payload)
		case num == 3 && typ == protowire.BytesType:
			x.Bounds = &Rect{}
			return x.Bounds.unmarshal(payload)
		case num == 4 && typ == protowire.Fixed64Type:
			x.Opacity = asFloat64(val)
		case num == 5 && typ == protowire.BytesType:
			x.Path = &Path{}
			return x.Path.unmarshal(payload)
		case num == 6 && typ == protowire.BytesType:
			x.Fill = &Fill{}
			return x.Fill.unmarshal(payload)
		case num == 7 && typ == protowire.BytesType:
			x.Stroke = &Stroke{}
			return x.Stroke.unmarshal(payload)
		case num == 8 && typ == protowire.BytesType:
			x.Shadow = &Shadow{}
			return x.Shadow.unmarshal(payload)
		case num == 9 && typ == protowire.BytesType:
			x.Feather = &Feather{}
			return x.Feather.unmarshal(payload)
		case num == 10 && typ == protowire.BytesType:
			x.Text = &Text{}
			return x.Text.unmarshal(payload)
		default:
			x.Unknown = append(x.Unknown, raw...)
		}
		return nil
	})
}

func (x *SlideElement) marshal(_ []byte) []byte {
	var body []byte
	if x.Element != nil {
		body = appendMsg(body, 1, x.Element.marshal(nil))
	}
	body = appendVarint(body, 2, uint64(x.Info))
	return append(body, x.Unknown...)
}

func (x *SlideElement) unmarshal(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, val uint64, payload, raw []byte) error {
		switch {
		case num == 1 && typ == protowire.BytesType:
			x.Element = &Element{}
			return x.Element.unmarshal(payload)
		case num == 2 && typ == protowire.VarintType:
			x.Info = uint32(val)
		default:
			x.Unknown = append(x.Unknown, raw...)
		}
		return nil
	})
}

func (x *Slide) marshal(_ []byte) []byte {
	var body []byte
	for _, e := range x.Elements {
		body = appendMsg(body, 1, e.marshal(nil))
	}
	if x.Size != nil {
		body = appendMsg(body, 2, x.Size.marshal(nil))
	}
	if x.UUID != nil {
		body = x.UUID.emit(body, 3)
	}
	if x.BackgroundColor != nil {
		body = appendMsg(body, 4, x.BackgroundColor.marshal(nil))
	}
	return append(body, x.Unknown...)
}

func (x *Slide) unmarshal(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, _ uint64, payload, raw []byte) error {
		switch {
		case num == 1 && typ == protowire.BytesType:
			e := &SlideElement{}
			if err := e.unmarshal(payload); err != nil {
				return err
			}
			x.Elements = append(x.Elements, e)
		case num == 2 && typ == protowire.BytesType:
			x.Size = &Size{}
			return x.Size.unmarshal(payload)
		case num == 3 && typ == protowire.BytesType:
			x.UUID = &UUID{}
			return x.UUID.unmarshal(payload)
		case num == 4 && typ == protowire.BytesType:
			x.BackgroundColor = &Color{}
			return x.BackgroundColor.unmarshal(payload)
		default:
			x.Unknown = append(x.Unknown, raw...)
		}
		return nil
	})
}

func (x *PresentationSlide) marshal(_ []byte) []byte {
	var body []byte
	if x.BaseSlide != nil {
		body = appendMsg(body, 1, x.BaseSlide.marshal(nil))
	}
	if x.Notes != nil {
		body = appendMsg(body, 2, x.Notes.marshal(nil))
	}
	return append(body, x.Unknown...)
}

func (x *PresentationSlide) unmarshal(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, _ uint64, payload, raw []byte) error {
		switch {
		case num == 1 && typ == protowire.BytesType:
			x.BaseSlide = &Slide{}
			return x.BaseSlide.unmarshal(payload)
		case num == 2 && typ == protowire.BytesType:
			x.Notes = &Text{}
			return x.Notes.unmarshal(payload)
		default:
			x.Unknown = append(x.Unknown, raw...)
		}
		return nil
	})
}

func (x *ActionSlide) marshal(_ []byte) []byte {
	var body []byte
	if x.Presentation != nil {
		body = appendMsg(body, 1, x.Presentation.marshal(nil))
	}
	return append(body, x.Unknown...)
}

func (x *ActionSlide) unmarshal(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, _ uint64, payload, raw []byte) error {
		if num == 1 && typ == protowire.BytesType {
			x.Presentation = &PresentationSlide{}
			return x.Presentation.unmarshal(payload)
		}
		x.Unknown = append(x.Unknown, raw...)
		return nil
	})
}

// Cues

func (x *Action) marshal(_ []byte) []byte {
	var body []byte
	if x.UUID != nil {
		body = x.UUID.emit(body, 1)
	}
	body = appendVarint(body, 2, uint64(x.Type))
	body = appendBool(body, 3, x.IsEnabled)
	if x.Slide != nil {
		body = appendMsg(body, 4, x.Slide.marshal(nil))
	}
	return append(body, x.Unknown...)
}

func (x *Action) unmarshal(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, val uint64, payload, raw []byte) error {
		switch {
		case num == 1 && typ == protowire.BytesType:
			x.UUID = &UUID{}
			return x.UUID.unmarshal(payload)
		case num == 2 && typ == protowire.VarintType:
			x.Type = ActionType(val)
		case num == 3 && typ == protowire.VarintType:
			x.IsEnabled = val != 0
		case num == 4 && typ == protowire.BytesType:
			x.Slide = &ActionSlide{}
			return x.Slide.unmarshal(payload)
		default:
			x.Unknown = append(x.Unknown, raw...)
		}
		return nil
	})
}

func (x *Cue) marshal(_ []byte) []byte {
	var body []byte
	if x.UUID != nil {
		body = x.UUID.emit(body, 1)
	}
	if x.CompletionTargetUUID != nil {
		body = x.CompletionTargetUUID.emit(body, 2)
	}
	body = appendVarint(body, 3, uint64(x.CompletionActionType))
	if x.CompletionActionUUID != nil {
		body = x.CompletionActionUUID.emit(body, 4)
	}
	body = appendBool(body, 5, x.IsEnabled)
	for _, a := range x.Actions {
		body = appendMsg(body, 6, a.marshal(nil))
	}
	return append(body, x.Unknown...)
}

func (x *Cue) unmarshal(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, val uint64, payload, raw []byte) error {
		switch {
		case num == 1 && typ == protowire.BytesType:
			x.UUID = &UUID{}
			return x.UUID.unmarshal(payload)
		case num == 2 && typ == protowire.BytesType:
			x.CompletionTargetUUID = &UUID{}
			return x.CompletionTargetUUID.unmarshal(payload)
		case num == 3 && typ == protowire.VarintType:
			x.CompletionActionType = CompletionActionType(val)
		case num == 4 && typ == protowire.BytesType:
			x.CompletionActionUUID = &UUID{}
			return x.CompletionActionUUID.unmarshal(payload)
		case num == 5 && typ == protowire.VarintType:
			x.IsEnabled = val != 0
		case num == 6 && typ == protowire.BytesType:
			a := &Action{}
			if err := a.unmarshal(payload); err != nil {
				return err
			}
			x.Actions = append(x.Actions, a)
		default:
			x.Unknown = append(x.Unknown, raw...)
		}
		return nil
	})
}

// Groups

func (x *Group) marshal(_ []byte) []byte {
	var body []byte
	if x.UUID != nil {
		body = x.UUID.emit(body, 1)
	}
	body = appendString(body, 2, x.Name)
	if x.Color != nil {
		body = appendMsg(body, 3, x.Color.marshal(nil))
	}
	if x.ApplicationGroupIdentifier != nil {
		body = x.ApplicationGroupIdentifier.emit(body, 4)
	}
	body = appendString(body, 5, x.ApplicationGroupName)
	return append(body, x.Unknown...)
}

func (x *Group) unmarshal(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, _ uint64, payload, raw []byte) error {
		switch {
		case num == 1 && typ == protowire.BytesType:
			x.UUID = &UUID{}
			return x.UUID.unmarshal(payload)
		case num == 2 && typ == protowire.BytesType:
			x.Name = string(payload)
		case num == 3 && typ == protowire.BytesType:
			x.Color = &Color{}
			return x.Color.unmarshal(payload)
		case num == 4 && typ == protowire.BytesType:
			x.ApplicationGroupIdentifier = &UUID{}
			return x.ApplicationGroupIdentifier.unmarshal(payload)
		case num == 5 && typ == protowire.BytesType:
			x.ApplicationGroupName = string(payload)
		default:
			x.Unknown = append(x.Unknown, raw...)
		}
		return nil
	})
}

func (x *CueGroup) marshal(_ []byte) []byte {
	var body []byte
	if x.Group != nil {
		body = appendMsg(body, 1, x.Group.marshal(nil))
	}
	for _, id := range x.CueIdentifiers {
		body = id.emit(body, 2)
	}
	return append(body, x.Unknown...)
}

func (x *CueGroup) unmarshal(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, _ uint64, payload, raw []byte) error {
		switch {
		case num == 1 && typ == protowire.BytesType:
			x.Group = &Group{}
			return x.Group.unmarshal(payload)
		case num == 2 && typ == protowire.BytesType:
			id := &UUID{}
			if err := id.unmarshal(payload); err != nil {
				return err
			}
			x.CueIdentifiers = append(x.CueIdentifiers, id)
		default:
			x.Unknown = append(x.Unknown, raw...)
		}
		return nil
	})
}

func (x *Background) marshal(_ []byte) []byte {
	var body []byte
	if x.Color != nil {
		body = appendMsg(body, 1, x.Color.marshal(nil))
	}
	return append(body, x.Unknown...)
}

func (x *Background) unmarshal(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, _ uint64, payload, raw []byte) error {
		if num == 1 && typ == protowire.BytesType {
			x.Color = &Color{}
			return x.Color.unmarshal(payload)
		}
		x.Unknown = append(x.Unknown, raw...)
		return nil
	})
}

// Presentation

func (x *Presentation) marshal(_ []byte) []byte {
	var body []byte
	if x.ApplicationInfo != nil {
		body = appendMsg(body, 1, x.ApplicationInfo.marshal(nil))
	}
	if x.UUID != nil {
		body = x.UUID.emit(body, 2)
	}
	body = appendString(body, 3, x.Name)
	if x.LastDateUsed != nil {
		body = appendMsg(body, 4, x.LastDateUsed.marshal(nil))
	}
	if x.LastModifiedDate != nil {
		body = appendMsg(body, 5, x.LastModifiedDate.marshal(nil))
	}
	if x.Background != nil {
		body = appendMsg(body, 8, x.Background.marshal(nil))
	}
	for _, g := range x.CueGroups {
		body = appendMsg(body, 9, g.marshal(nil))
	}
	for _, c := range x.Cues {
		body = appendMsg(body, 10, c.marshal(nil))
	}
	if x.SelectedArrangement != nil {
		body = x.SelectedArrangement.emit(body, 11)
	}
	return append(body, x.Unknown...)
}

func (x *Presentation) unmarshal(b []byte) error {
	return walkFields(b, func(num protowire.Number, typ protowire.Type, _ uint64, payload, raw []byte) error {
		switch {
		case num == 1 && typ == protowire.BytesType:
			x.ApplicationInfo = &ApplicationInfo{}
			return x.ApplicationInfo.unmarshal(payload)
		case num == 2 && typ == protowire.BytesType:
			x.UUID = &UUID{}
			return x.UUID.unmarshal(payload)
		case num == 3 && typ == protowire.BytesType:
			x.Name = string(payload)
		case num == 4 && typ == protowire.BytesType:
			x.LastDateUsed = &Timestamp{}
			return x.LastDateUsed.unmarshal(payload)
		case num == 5 && typ == protowire.BytesType:
			x.LastModifiedDate = &Timestamp{}
			return x.LastModifiedDate.unmarshal(payload)
		case num == 8 && typ == protowire.BytesType:
			x.Background = &Background{}
			return x.Background.unmarshal(payload)
		case num == 9 && typ == protowire.BytesType:
			g := &CueGroup{}
			if err := g.unmarshal(payload); err != nil {
				return err
			}
			x.CueGroups = append(x.CueGroups, g)
		case num == 10 && typ == protowire.BytesType:
			c := &Cue{}
			if err := c.unmarshal(payload); err != nil {
				return err
			}
			x.Cues = append(x.Cues, c)
		case num == 11 && typ == protowire.BytesType:
			x.SelectedArrangement = &UUID{}
			return x.SelectedArrangement.unmarshal(payload)
		default:
			x.Unknown = append(x.Unknown, raw...)
		}
		return nil
	})
}
