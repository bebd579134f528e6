package tally_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolbook/internal/domain"
	"schoolbook/internal/tally"
)

func seconde() domain.Class {
	return domain.Class{
		ID:   1,
		Name: "Seconde",
		Fee:  decimal.NewFromInt(5000),
		Subjects: []domain.Subject{
			{Name: "Math", Coefficient: 2},
			{Name: "French", Coefficient: 1},
		},
	}
}

func TestSplitGrades_DropsOutOfRange(t *testing.T) {
	accepted, rejected := tally.SplitGrades([]float64{150, 50, -10})
	assert.Equal(t, []float64{50}, accepted)
	assert.Equal(t, []float64{150, -10}, rejected)
}

func TestValidGrade_Bounds(t *testing.T) {
	assert.True(t, tally.ValidGrade(0))
	assert.True(t, tally.ValidGrade(100))
	assert.False(t, tally.ValidGrade(100.01))
	assert.False(t, tally.ValidGrade(-0.1))
	assert.False(t, tally.ValidGrade(math.NaN()))
	assert.False(t, tally.ValidGrade(math.Inf(1)))
}

func TestMean_Empty(t *testing.T) {
	_, ok := tally.Mean(nil)
	assert.False(t, ok)
}

func TestGeneralAverage_NoGrades_Undefined(t *testing.T) {
	st := domain.Student{ID: 1, ClassID: 1}
	_, ok := tally.GeneralAverage(seconde(), st)
	assert.False(t, ok)
}

func TestGeneralAverage_Weighted(t *testing.T) {
	st := domain.Student{ID: 1, ClassID: 1, Grades: map[string][]float64{
		domain.NameKey("Math"):   {80, 90},
		domain.NameKey("French"): {60},
	}}

	avg, ok := tally.GeneralAverage(seconde(), st)
	require.True(t, ok)
	assert.InDelta(t, (85.0*2+60.0)/3, avg, 1e-9)
}

func TestGeneralAverage_SingleSubjectEqualsSubjectAverage(t *testing.T) {
	st := domain.Student{ID: 1, ClassID: 1, Grades: map[string][]float64{
		domain.NameKey("French"): {40, 70},
	}}

	avg, ok := tally.GeneralAverage(seconde(), st)
	require.True(t, ok)
	subj, ok := tally.SubjectAverage(st, "french")
	require.True(t, ok)
	assert.Equal(t, subj, avg)
	assert.Equal(t, 55.0, avg)
}

func TestGeneralAverage_IgnoresGradesOutsideCurriculum(t *testing.T) {
	st := domain.Student{ID: 1, ClassID: 1, Grades: map[string][]float64{
		domain.NameKey("Math"):    {70},
		domain.NameKey("Biology"): {10},
	}}

	avg, ok := tally.GeneralAverage(seconde(), st)
	require.True(t, ok)
	assert.Equal(t, 70.0, avg)
}
