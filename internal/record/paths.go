// Package record applies confidence-scored field proposals onto the partial
// resume record and detects denials that contradict already-collected data.
package record

import (
	"fmt"
	"strconv"
	"strings"
)

// SegmentKind discriminates path segment variants.
type SegmentKind string

// Path segment kinds.
const (
	SegmentKey   SegmentKind = "key"
	SegmentIndex SegmentKind = "index"
)

// Segment is one step of a parsed field path: either an object key or an
// array index.
type Segment struct {
	Kind  SegmentKind
	Name  string
	Index int
}

// ParsePath parses dotted/bracket notation ("workExperience[0].jobTitle")
// into a typed segment sequence.
func ParsePath(path string) ([]Segment, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("empty field path")
	}

	var segments []Segment
	for _, part := range strings.Split(path, ".") {
		if part == "" {
			return nil, fmt.Errorf("invalid field path %q: empty segment", path)
		}
		rest := part
		for {
			open := strings.IndexByte(rest, '[')
			if open < 0 {
				if rest != "" {
					segments = append(segments, Segment{Kind: SegmentKey, Name: rest})
				}
				break
			}
			if open > 0 {
				segments = append(segments, Segment{Kind: SegmentKey, Name: rest[:open]})
			}
			closing := strings.IndexByte(rest, ']')
			if closing < open {
				return nil, fmt.Errorf("invalid field path %q: unmatched bracket", path)
			}
			idx, err := strconv.Atoi(rest[open+1 : closing])
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("invalid field path %q: bad index %q", path, rest[open+1:closing])
			}
			segments = append(segments, Segment{Kind: SegmentIndex, Index: idx})
			rest = rest[closing+1:]
		}
	}

	if len(segments) == 0 {
		return nil, fmt.Errorf("invalid field path %q", path)
	}
	if segments[0].Kind != SegmentKey {
		return nil, fmt.Errorf("invalid field path %q: must start with a key", path)
	}
	return segments, nil
}
