package convert

import (
	"context"
	"fmt"
	"strings"
)

// blockState is the fold state of the document layout.
type blockState int

const (
	stateNone blockState = iota
	stateParagraph
	stateUnordered
	stateOrdered
)

// closeTag returns the tag that ends the open block, or "" if none is open.
func (s blockState) closeTag() string {
	switch s {
	case stateParagraph:
		return TagParagraphClose
	case stateUnordered:
		return TagUnorderedClose
	case stateOrdered:
		return TagOrderedClose
	default:
		return ""
	}
}

// fold is the per-call state of a document-order conversion.
type fold struct {
	opts  Options
	owned map[Kind]bool
	state blockState
	out   []string
}

func (f *fold) closeBlock() {
	if tag := f.state.closeTag(); tag != "" {
		f.out = append(f.out, tag)
	}
	f.state = stateNone
}

func (f *fold) enter(state blockState, openTag string) {
	if f.state == state {
		return
	}
	f.closeBlock()
	f.out = append(f.out, openTag)
	f.state = state
}

// foldDocument classifies each line once and emits blocks in source order.
// Blank lines and headings close the open block. Kinds whose rule is
// disabled are handled as plain text; plain text without an enabled
// paragraph rule passes through trimmed.
func (e *Engine) foldDocument(
	ctx context.Context,
	doc *Document,
	blocks []ResolvedRule,
	opts Options,
	result *Result,
) ([]string, error) {
	f := &fold{
		opts:  opts,
		owned: make(map[Kind]bool),
		out:   []string{},
	}

	for _, rr := range blocks {
		kr, ok := rr.Rule.(KindRule)
		if !ok {
			continue
		}
		for _, kind := range kr.Kinds() {
			f.owned[kind] = true
		}
		result.Rules = append(result.Rules, rr.Rule.ID())
	}

	for idx, line := range doc.Lines {
		if idx%256 == 0 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("conversion cancelled: %w", ctx.Err())
			default:
			}
		}

		c := Classify(line)

		if c.Malformed && f.owned[KindHeading] {
			if opts.StrictHeadings {
				return nil, &MalformedHeadingError{Line: idx + 1, Text: c.Text}
			}
			result.MalformedHeadings = append(result.MalformedHeadings, idx+1)
		}

		kind := c.Kind
		if kind != KindBlank && !f.owned[kind] {
			kind = KindPlain
			c.Text = strings.TrimSpace(TrimTerminator(line))
		}

		switch kind {
		case KindBlank:
			f.closeBlock()
			f.out = append(f.out, "")
		case KindHeading:
			f.closeBlock()
			f.out = append(f.out, HeadingTag(c.Level, c.Text))
		case KindUnordered:
			f.enter(stateUnordered, TagUnorderedOpen)
			f.out = append(f.out, ListItem(opts.Indent, c.Text))
		case KindOrdered:
			f.enter(stateOrdered, TagOrderedOpen)
			f.out = append(f.out, ListItem(opts.Indent, c.Text))
		default:
			if !f.owned[KindPlain] {
				f.closeBlock()
				f.out = append(f.out, c.Text)
				continue
			}
			f.enter(stateParagraph, TagParagraphOpen)
			f.out = append(f.out, ParagraphLine(opts.Indent, c.Text))
		}
	}

	f.closeBlock()
	return f.out, nil
}
