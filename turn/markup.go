package turn

import "strings"

// Inline markup recognized inside turn content. No other tag vocabulary is parsed.
const (
	OpenTag  = "<tool_call>"
	CloseTag = "</tool_call>"
)

// SegmentKind tags a parsed content segment.
type SegmentKind string

const (
	SegmentText      SegmentKind = "text"
	SegmentToolBlock SegmentKind = "tool-block"
)

// Segment is one piece of a turn's content: either plain text or the inner
// body of an embedded <tool_call> block.
type Segment struct {
	Kind SegmentKind
	Text string
}

// ParseContent splits content into alternating text and tool-block segments,
// scanning left to right for non-overlapping <tool_call>...</tool_call> pairs.
// Unclosed or malformed tags are not matched and degrade to plain text; empty
// content yields no segments.
func ParseContent(content string) []Segment {
	segments := []Segment{}
	rest := content
	for {
		open := strings.Index(rest, OpenTag)
		if open < 0 {
			break
		}
		close := strings.Index(rest[open+len(OpenTag):], CloseTag)
		if close < 0 {
			// Unclosed tag, leave the remainder as text.
			break
		}
		if before := strings.TrimSpace(rest[:open]); before != "" {
			segments = append(segments, Segment{Kind: SegmentText, Text: before})
		}
		inner := rest[open+len(OpenTag) : open+len(OpenTag)+close]
		segments = append(segments, Segment{Kind: SegmentToolBlock, Text: strings.TrimSpace(inner)})
		rest = rest[open+len(OpenTag)+close+len(CloseTag):]
	}
	if tail := strings.TrimSpace(rest); tail != "" {
		segments = append(segments, Segment{Kind: SegmentText, Text: tail})
	}
	return segments
}
