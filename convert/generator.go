// Package convert turns parsed songs into presentation documents. Two
// generation strategies are available: building a fully styled document from
// fixed defaults and cloning the styling of an existing document. Both
// produce the whole document in memory; nothing is written until generation
// has completed.
package convert

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"prosong/prodoc"
	"prosong/song"
)

// zeroID is the completion target the host application stores on cues that
// have no explicit completion link.
const zeroID = "00000000-0000-0000-0000-000000000000"

// IDGen produces document identifiers. Production uses random UUIDs, tests
// substitute fixed sequences to get deterministic documents.
type IDGen func() string

// Generator builds a complete presentation document from a parsed song.
type Generator interface {
	Generate(ctx context.Context, s *song.Song) (*prodoc.Presentation, error)
}

type options struct {
	ids IDGen
	now func() time.Time
	log *zap.Logger
}

// Option customizes a generator.
type Option func(*options)

func WithIDGen(ids IDGen) Option {
	return func(o *options) { o.ids = ids }
}

func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

func newOptions(opts ...Option) options {
	o := options{
		ids: func() string { return strings.ToUpper(uuid.NewString()) },
		now: time.Now,
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o *options) freshUUID() *prodoc.UUID {
	return &prodoc.UUID{Value: o.ids()}
}

// stampMetadata sets document identity: name, fresh identifier and both
// timestamps.
func (o *options) stampMetadata(p *prodoc.Presentation, title string) {
	p.UUID = o.freshUUID()
	p.Name = title
	now := o.now().Unix()
	p.LastDateUsed = &prodoc.Timestamp{Seconds: now}
	p.LastModifiedDate = &prodoc.Timestamp{Seconds: now}
}

// Convert runs the whole pipeline in memory: parse the raw text, generate a
// document and encode it. A nil template selects the from-scratch strategy,
// otherwise template must be an encoded document to clone styling from.
func Convert(ctx context.Context, text string, template []byte, opts ...Option) ([]byte, error) {
	s := song.Parse(text)
	if s.SlideCount() == 0 {
		return nil, ErrEmptySong
	}

	var g Generator
	if template == nil {
		g = NewScratch(opts...)
	} else {
		g = NewTemplate(template, opts...)
	}

	p, err := g.Generate(ctx, s)
	if err != nil {
		return nil, err
	}
	return p.Marshal(), nil
}
