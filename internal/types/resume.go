// Package types defines the shared data model for the interview core:
// the resume record, field proposals, conversation state, and auth types.
package types

import "encoding/json"

// Record is the partial resume being assembled. It is a tree with fixed
// top-level keys (personalInfo, workExperience, education, volunteering,
// skills, references) plus boolean gate flags such as hasWorkExperience.
// The generic shape exists so the merge engine can set arbitrary
// dotted/bracket paths without per-field plumbing.
type Record map[string]any

// NewRecord returns an empty resume record.
func NewRecord() Record {
	return Record{}
}

// Clone returns a deep copy of the record. Mutating the copy never affects
// the original.
func (r Record) Clone() Record {
	if r == nil {
		return NewRecord()
	}
	return Record(deepCopyMap(map[string]any(r)))
}

// Array returns the entry list at a top-level key, or nil when absent or not
// a list.
func (r Record) Array(key string) []any {
	if r == nil {
		return nil
	}
	arr, _ := r[key].([]any)
	return arr
}

// Flag returns the boolean value of a top-level gate flag. Absent or
// non-boolean values read as false.
func (r Record) Flag(key string) bool {
	if r == nil {
		return false
	}
	v, _ := r[key].(bool)
	return v
}

// String returns the string value at a top-level key, or "".
func (r Record) String(key string) string {
	if r == nil {
		return ""
	}
	s, _ := r[key].(string)
	return s
}

// MarshalJSON round-trips the record as a plain JSON object.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any(r))
}

// UnmarshalJSON parses a JSON object into the record.
func (r *Record) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*r = Record(m)
	return nil
}

func deepCopyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		return deepCopyMap(tv)
	case Record:
		return deepCopyMap(map[string]any(tv))
	case []any:
		out := make([]any, len(tv))
		for i, e := range tv {
			out[i] = deepCopyValue(e)
		}
		return out
	case []string:
		out := make([]string, len(tv))
		copy(out, tv)
		return out
	default:
		return v
	}
}
