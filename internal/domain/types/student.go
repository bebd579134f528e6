package types

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Sex is recorded as its one-letter code, "M" or "F".
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// ParseSex accepts "M" or "F" in either case, surrounding blanks ignored.
func ParseSex(s string) (Sex, bool) {
	switch Sex(strings.ToUpper(strings.TrimSpace(s))) {
	case SexMale:
		return SexMale, true
	case SexFemale:
		return SexFemale, true
	}
	return "", false
}

// Valid reports whether s is one of the two known codes.
func (s Sex) Valid() bool { return s == SexMale || s == SexFemale }

// Label returns the long form used in listings.
func (s Sex) Label() string {
	switch s {
	case SexMale:
		return "Male"
	case SexFemale:
		return "Female"
	}
	return string(s)
}

// Student is an enrolled student. ClassID refers into the class collection;
// class data is never copied onto the student.
//
// Grades is keyed by the subject's NameKey.
type Student struct {
	ID         StudentID            `json:"id"`
	LastName   string               `json:"last_name"`
	FirstName  string               `json:"first_name"`
	Address    string               `json:"address"`
	Sex        Sex                  `json:"sex"`
	ClassID    ClassID              `json:"class_id"`
	Grades     map[string][]float64 `json:"grades"`
	AmountPaid decimal.Decimal      `json:"amount_paid"`
}

// FullName returns "First Last".
func (s Student) FullName() string { return s.FirstName + " " + s.LastName }

// GradesFor returns the recorded grades for subject, or nil.
func (s Student) GradesFor(subject string) []float64 {
	return s.Grades[NameKey(subject)]
}

// Clone returns a deep copy of s.
func (s Student) Clone() Student {
	out := s
	out.Grades = make(map[string][]float64, len(s.Grades))
	for k, v := range s.Grades {
		out.Grades[k] = append([]float64(nil), v...)
	}
	return out
}

// Account derives the tuition position of s against its class fee.
func (s Student) Account(c Class) Account {
	return Account{Due: c.Fee, Paid: s.AmountPaid}
}

// Account is a student's tuition position. It is computed, never stored.
type Account struct {
	Due  decimal.Decimal `json:"due"`
	Paid decimal.Decimal `json:"paid"`
}

// Remaining is Due minus Paid.
func (a Account) Remaining() decimal.Decimal { return a.Due.Sub(a.Paid) }

// InGoodStanding reports whether nothing remains to be paid.
func (a Account) InGoodStanding() bool { return !a.Remaining().IsPositive() }
