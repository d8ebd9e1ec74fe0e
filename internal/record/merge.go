package record

import (
	"fmt"

	"github.com/jonathan/resume-interviewer/internal/types"
)

// ConfidenceThreshold is the minimum confidence a proposal needs to be
// merged. Proposals below it are dropped silently; a low-confidence guess is
// not an error.
const ConfidenceThreshold = 0.7

// Apply merges all proposals at or above the confidence threshold onto a
// copy of the record. The input record is never mutated. Proposals with
// unparsable paths are skipped; deterministic rule output upstream keeps
// those rare.
func Apply(rec types.Record, proposals []types.FieldProposal) types.Record {
	merged := rec.Clone()
	for _, proposal := range proposals {
		if proposal.Confidence < ConfidenceThreshold {
			continue
		}
		segments, err := ParsePath(proposal.Path)
		if err != nil {
			continue
		}
		if err := setPath(merged, segments, proposal.Value); err != nil {
			continue
		}
	}
	return merged
}

// setPath assigns value at the segment sequence, creating missing
// intermediate objects and arrays on demand.
func setPath(root types.Record, segments []Segment, value any) error {
	if len(segments) == 0 {
		return fmt.Errorf("no segments")
	}
	head := segments[0]
	child, err := assign(root[head.Name], segments[1:], value)
	if err != nil {
		return err
	}
	root[head.Name] = child
	return nil
}

// assign walks the remaining segments inside container, replacing
// wrongly-typed intermediates rather than failing the whole merge.
func assign(container any, segments []Segment, value any) (any, error) {
	if len(segments) == 0 {
		return value, nil
	}

	seg := segments[0]
	switch seg.Kind {
	case SegmentKey:
		m, ok := container.(map[string]any)
		if !ok {
			m = make(map[string]any)
		}
		child, err := assign(m[seg.Name], segments[1:], value)
		if err != nil {
			return nil, err
		}
		m[seg.Name] = child
		return m, nil

	case SegmentIndex:
		arr, ok := container.([]any)
		if !ok {
			arr = nil
		}
		for len(arr) <= seg.Index {
			arr = append(arr, nil)
		}
		child, err := assign(arr[seg.Index], segments[1:], value)
		if err != nil {
			return nil, err
		}
		arr[seg.Index] = child
		return arr, nil

	default:
		return nil, fmt.Errorf("unknown segment kind %q", seg.Kind)
	}
}

// Get reads the value at a dotted/bracket path. The second return reports
// whether the full path resolved.
func Get(rec types.Record, path string) (any, bool) {
	segments, err := ParsePath(path)
	if err != nil {
		return nil, false
	}
	var current any = map[string]any(rec)
	for _, seg := range segments {
		switch seg.Kind {
		case SegmentKey:
			m, ok := current.(map[string]any)
			if !ok {
				return nil, false
			}
			current, ok = m[seg.Name]
			if !ok {
				return nil, false
			}
		case SegmentIndex:
			arr, ok := current.([]any)
			if !ok || seg.Index >= len(arr) {
				return nil, false
			}
			current = arr[seg.Index]
		}
	}
	return current, true
}
