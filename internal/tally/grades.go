package tally

import (
	"math"

	"schoolbook/internal/domain"
)

const (
	MinGrade = 0.0
	MaxGrade = 100.0
)

// ValidGrade reports whether g is a finite value in [MinGrade, MaxGrade].
func ValidGrade(g float64) bool {
	return !math.IsNaN(g) && g >= MinGrade && g <= MaxGrade
}

// SplitGrades keeps input order and separates valid grades from rejected ones.
func SplitGrades(grades []float64) (accepted, rejected []float64) {
	for _, g := range grades {
		if ValidGrade(g) {
			accepted = append(accepted, g)
		} else {
			rejected = append(rejected, g)
		}
	}
	return accepted, rejected
}

// Mean returns the arithmetic mean of xs, or false when xs is empty.
func Mean(xs []float64) (float64, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs)), true
}

// SubjectAverage returns the student's mean grade in subject.
func SubjectAverage(st domain.Student, subject string) (float64, bool) {
	return Mean(st.GradesFor(subject))
}

// GeneralAverage is the coefficient-weighted mean of the student's subject
// averages over the subjects of class that have at least one grade. Subjects
// without grades count in neither the numerator nor the denominator.
//
// Subjects are visited in curriculum order, so the result does not depend on
// the order in which grades were recorded.
func GeneralAverage(class domain.Class, st domain.Student) (float64, bool) {
	var points, weights float64
	for _, subject := range class.Subjects {
		avg, ok := SubjectAverage(st, subject.Name)
		if !ok {
			continue
		}
		points += avg * subject.Coefficient
		weights += subject.Coefficient
	}
	if weights <= 0 {
		return 0, false
	}
	return points / weights, true
}
