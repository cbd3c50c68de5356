package convert

import (
	"strings"
	"unicode"
)

// Kind is the block classification of a single line.
type Kind int

const (
	// KindBlank is a line that is empty after trimming whitespace.
	KindBlank Kind = iota

	// KindPlain is any contentful line that is not a heading or list item.
	KindPlain

	// KindHeading is a line whose first non-space character is '#' followed
	// by a marker run and at least one token of text.
	KindHeading

	// KindUnordered is a line starting with "* ".
	KindUnordered

	// KindOrdered is a line starting with "- ".
	KindOrdered
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBlank:
		return "blank"
	case KindPlain:
		return "plain"
	case KindHeading:
		return "heading"
	case KindUnordered:
		return "unordered"
	case KindOrdered:
		return "ordered"
	default:
		return "unknown"
	}
}

// Line markers.
const (
	HeadingMarker   = '#'
	UnorderedMarker = "* "
	OrderedMarker   = "- "
)

// MaxHeadingLevel is the deepest heading tag emitted.
const MaxHeadingLevel = 6

// Classification is the result of classifying one line.
type Classification struct {
	// Kind is the block kind of the line.
	Kind Kind

	// Level is the heading depth (1..6). Zero for non-headings.
	Level int

	// Text is the line content with markers and surrounding whitespace removed.
	Text string

	// Malformed is set on a KindPlain line that looked like a heading but
	// carried no text after its marker.
	Malformed bool
}

// Classify assigns a classification to a single raw line. Only the line's
// leading characters are inspected.
func Classify(line string) Classification {
	text := TrimTerminator(line)
	trimmed := strings.TrimSpace(text)

	if trimmed == "" {
		return Classification{Kind: KindBlank}
	}

	if trimmed[0] == HeadingMarker {
		level, body, ok := splitHeading(trimmed)
		if !ok {
			return Classification{Kind: KindPlain, Text: trimmed, Malformed: true}
		}
		return Classification{Kind: KindHeading, Level: level, Text: body}
	}

	if rest, ok := strings.CutPrefix(text, UnorderedMarker); ok {
		return Classification{Kind: KindUnordered, Text: strings.TrimSpace(rest)}
	}

	if rest, ok := strings.CutPrefix(text, OrderedMarker); ok {
		return Classification{Kind: KindOrdered, Text: strings.TrimSpace(rest)}
	}

	return Classification{Kind: KindPlain, Text: trimmed}
}

// ParseHeading splits a heading line into its depth and text.
// lineNum is the 1-based line number used in the returned error.
// A line that is not '#'-prefixed, or has no text after the marker,
// returns a *MalformedHeadingError.
func ParseHeading(line string, lineNum int) (int, string, error) {
	trimmed := strings.TrimSpace(TrimTerminator(line))
	if trimmed == "" || trimmed[0] != HeadingMarker {
		return 0, "", &MalformedHeadingError{Line: lineNum, Text: trimmed}
	}

	level, body, ok := splitHeading(trimmed)
	if !ok {
		return 0, "", &MalformedHeadingError{Line: lineNum, Text: trimmed}
	}

	return level, body, nil
}

// HeadingDepth maps a marker to a heading depth. Markers of 1-6 '#'
// characters map to their length; anything else maps to depth 1.
func HeadingDepth(marker string) int {
	if len(marker) < 1 || len(marker) > MaxHeadingLevel {
		return 1
	}
	for i := range len(marker) {
		if marker[i] != HeadingMarker {
			return 1
		}
	}
	return len(marker)
}

// splitHeading splits trimmed on its first whitespace run.
// ok is false when nothing follows the marker.
func splitHeading(trimmed string) (int, string, bool) {
	idx := strings.IndexFunc(trimmed, unicode.IsSpace)
	if idx < 0 {
		return 0, "", false
	}

	body := strings.TrimSpace(trimmed[idx:])
	if body == "" {
		return 0, "", false
	}

	return HeadingDepth(trimmed[:idx]), body, true
}
