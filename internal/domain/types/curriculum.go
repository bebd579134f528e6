package types

import "github.com/shopspring/decimal"

// Subject is a taught subject and its weight in the general average.
type Subject struct {
	Name        string  `json:"name"`
	Coefficient float64 `json:"coefficient"`
}

// Key returns the comparison key of the subject name.
func (s Subject) Key() string { return NameKey(s.Name) }

// Class is a school class with a flat tuition fee and its curriculum.
// Subjects are only ever appended.
type Class struct {
	ID       ClassID         `json:"id"`
	Name     string          `json:"name"`
	Fee      decimal.Decimal `json:"fee"`
	Subjects []Subject       `json:"subjects"`
}

// Subject looks up a subject by name, ignoring case.
func (c Class) Subject(name string) (Subject, bool) {
	key := NameKey(name)
	for _, s := range c.Subjects {
		if s.Key() == key {
			return s, true
		}
	}
	return Subject{}, false
}

// Clone returns a copy that shares no slices with c.
func (c Class) Clone() Class {
	out := c
	out.Subjects = append([]Subject(nil), c.Subjects...)
	return out
}
