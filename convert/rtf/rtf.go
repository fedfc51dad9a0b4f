// Package rtf rewrites the styled-text payload embedded in slide elements.
// The payload is never parsed as a grammar: it is split into byte ranges
// around structural anchors and reassembled with new literal text runs, so
// whatever styling a template carries survives the edit untouched.
package rtf

import (
	"errors"
	"strings"
)

// ErrNoStructure is reported when the payload does not expose the expected
// anchors and a complete default payload was synthesized instead. The result
// is still usable; callers decide whether the degradation is worth logging.
var ErrNoStructure = errors.New("no recognizable payload structure")

// anchor is the last style directive of a run preamble in every payload
// captured so far. parMarker starts the between-lines separator.
const (
	anchor    = `\ulc0`
	parMarker = `\par`
	closing   = `}`

	// defaultSeparator is the line break the fixed template uses.
	defaultSeparator = `\par\n`
)

// defaultPreamble is the fixed formatting template: 1252 codepage, Arial,
// white, centered, font size 60 in half-points. Taken verbatim from captured
// documents, do not reflow.
const defaultPreamble = `{\rtf0\ansi\ansicpg1252` +
	`{\fonttbl\f0\fnil Arial;}` +
	`{\colortbl;\red255\green255\blue255;}` +
	`{\*\expandedcolortbl;\csgenericrgb\c100000\c100000\c100000\c100000;}` +
	`{\*\listtable}{\*\listoverridetable}` +
	`\uc1\paperw38400\margl0\margr0\margt0\margb0` +
	`\pard\li0\fi0\ri0\qc\sb0\sa0\sl240\slmult1\slleading0` +
	`\f0\b0\i0\ul0\strike0\fs120\expnd0\expndtw0` +
	`\CocoaLigature1\cf1\strokewidth0\strokec1\nosupersub\ulc0`

var escaper = strings.NewReplacer(`\`, `\\`, `{`, `\{`, `}`, `\}`)

// Escape protects the three structurally significant payload characters in a
// literal text run.
func Escape(s string) string {
	return escaper.Replace(s)
}

// DefaultPayload synthesizes a complete payload from the fixed formatting
// template with both lines injected.
func DefaultPayload(line1, line2 string) string {
	return defaultPreamble + Escape(line1) + defaultSeparator + Escape(line2) + closing
}

// Rewrite replaces the literal text runs of payload with line1 and line2,
// preserving the surrounding styling bytes. Matching strategies are tried in
// order: full (preamble, run, separator, run, closing), reduced (preamble and
// closing only) and finally synthesis from the fixed template. Synthesis
// always succeeds and is reported with ErrNoStructure alongside the result.
func Rewrite(payload, line1, line2 string) (string, error) {
	if out, ok := rewriteFull(payload, line1, line2); ok {
		return out, nil
	}
	if out, ok := rewriteReduced(payload, line1, line2); ok {
		return out, nil
	}
	return DefaultPayload(line1, line2), ErrNoStructure
}

// rewriteFull handles payloads carrying two runs: the separator between them
// repeats the anchor, so the payload splits into five ranges.
func rewriteFull(payload, line1, line2 string) (string, bool) {
	i := strings.Index(payload, anchor)
	if i < 0 {
		return "", false
	}
	preamble := payload[:i+len(anchor)]
	rest := payload[i+len(anchor):]

	p := strings.Index(rest, parMarker)
	if p < 0 {
		return "", false
	}
	run1 := rest[:p]

	q := strings.Index(rest[p:], anchor)
	if q < 0 {
		return "", false
	}
	separator := rest[p : p+q+len(anchor)]
	remainder := rest[p+q+len(anchor):]

	c := strings.LastIndex(remainder, closing)
	if c < 0 {
		return "", false
	}
	run2 := remainder[:c]

	if !plainRun(run1) || !plainRun(run2) {
		return "", false
	}
	return preamble + Escape(line1) + separator + Escape(line2) + remainder[c:], true
}

// rewriteReduced handles payloads where the full split cannot be trusted:
// only the preamble and the closing brace are located and everything between
// them is replaced, a separator is reused from the original content or
// synthesized when a second line must be injected. The preamble ends at the
// FIRST anchor: on multi-run payloads later anchors belong to separators and
// anchoring on them would keep the original first run alive.
func rewriteReduced(payload, line1, line2 string) (string, bool) {
	i := strings.Index(payload, anchor)
	if i < 0 {
		return "", false
	}
	preamble := payload[:i+len(anchor)]
	rest := payload[i+len(anchor):]

	c := strings.LastIndex(rest, closing)
	if c < 0 {
		return "", false
	}

	if len(line2) == 0 {
		return preamble + Escape(line1) + rest[c:], true
	}
	separator := defaultSeparator
	if !strings.Contains(payload, defaultSeparator) && strings.Contains(payload, parMarker) {
		separator = parMarker
	}
	return preamble + Escape(line1) + separator + Escape(line2) + rest[c:], true
}

// plainRun reports whether a candidate text run is free of group delimiters.
// Runs containing braces mean the anchors landed inside nested styling groups
// and the split cannot be trusted.
func plainRun(run string) bool {
	return !strings.ContainsAny(run, "{}")
}
