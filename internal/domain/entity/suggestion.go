package entity

import (
	"html"
	"strings"
)

// SegmentStyle is how a piece of a suggestion description is rendered.
type SegmentStyle string

const (
	SegmentPlain SegmentStyle = ""
	SegmentDim   SegmentStyle = "dim"
	SegmentMatch SegmentStyle = "match"
)

// DescriptionSegment is a run of text sharing one style.
type DescriptionSegment struct {
	Text  string
	Style SegmentStyle
}

// SuggestionDescription is a styled, single-line suggestion label.
type SuggestionDescription []DescriptionSegment

// Markup renders the description in omnibox XML markup,
// e.g. <dim>localhost:</dim><match>3000</match>.
func (d SuggestionDescription) Markup() string {
	var b strings.Builder
	for _, seg := range d {
		text := html.EscapeString(seg.Text)
		if seg.Style == SegmentPlain {
			b.WriteString(text)
			continue
		}
		b.WriteString("<" + string(seg.Style) + ">")
		b.WriteString(text)
		b.WriteString("</" + string(seg.Style) + ">")
	}
	return b.String()
}

// Text returns the description without styling.
func (d SuggestionDescription) Text() string {
	var b strings.Builder
	for _, seg := range d {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// Suggestion is a candidate completion offered while the user types.
type Suggestion struct {
	Content     string
	Description SuggestionDescription
	Deletable   bool
}

// NewPortSuggestion builds the suggestion for a stored port.
// The host is dimmed and the first occurrence of typed inside the port is
// highlighted; an empty or absent typed highlights the whole port.
func NewPortSuggestion(p Port, host, typed string) Suggestion {
	if host == "" {
		host = DefaultHost
	}
	desc := SuggestionDescription{{Text: host + ":", Style: SegmentDim}}

	portText := p.String()
	idx := -1
	if typed != "" {
		idx = strings.Index(portText, typed)
	}
	if idx < 0 {
		desc = append(desc, DescriptionSegment{Text: portText, Style: SegmentMatch})
	} else {
		if idx > 0 {
			desc = append(desc, DescriptionSegment{Text: portText[:idx]})
		}
		desc = append(desc, DescriptionSegment{Text: typed, Style: SegmentMatch})
		if rest := portText[idx+len(typed):]; rest != "" {
			desc = append(desc, DescriptionSegment{Text: rest})
		}
	}

	return Suggestion{
		Content:     portText,
		Description: desc,
		Deletable:   true,
	}
}

// Highlighted returns the concatenated text of the match segments.
func (d SuggestionDescription) Highlighted() string {
	var b strings.Builder
	for _, seg := range d {
		if seg.Style == SegmentMatch {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}
