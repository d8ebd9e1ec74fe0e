package questions

import (
	"github.com/jonathan/resume-interviewer/internal/sections"
	"github.com/jonathan/resume-interviewer/internal/types"
)

// Next returns the next unskipped question in the same section after
// currentID, driven purely by each definition's skip predicate over the
// record. A nil return means the section is complete. An empty currentID
// starts from the beginning of the catalog.
func Next(record types.Record, currentID string) *Definition {
	start := 0
	var current *Definition
	if currentID != "" {
		idx := indexOf(currentID)
		if idx < 0 {
			return nil
		}
		current = &Catalog[idx]
		start = idx + 1
	}

	for i := start; i < len(Catalog); i++ {
		q := Catalog[i]
		if current != nil && q.Category != current.Category {
			return nil
		}
		if q.Skip != nil && q.Skip(record) {
			continue
		}
		return &Catalog[i]
	}
	return nil
}

// FirstInSection returns the first unskipped question of a section, or nil
// when every question in it is skipped.
func FirstInSection(record types.Record, section sections.Section) *Definition {
	for i := range Catalog {
		q := Catalog[i]
		if q.Category != section {
			continue
		}
		if q.Skip != nil && q.Skip(record) {
			continue
		}
		return &Catalog[i]
	}
	return nil
}

// ByID looks a question up by its identifier.
func ByID(id string) *Definition {
	idx := indexOf(id)
	if idx < 0 {
		return nil
	}
	return &Catalog[idx]
}

func indexOf(id string) int {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return i
		}
	}
	return -1
}
