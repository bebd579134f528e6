package grading_test

import (
	"testing"

	"github.com/shopspring/decimal"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolbook/internal/domain"
	"schoolbook/internal/services/curriculum"
	"schoolbook/internal/services/grading"
	"schoolbook/internal/store"
)

type fixture struct {
	mem     *store.Memory
	classes *curriculum.Service
	grades  *grading.Service
	class   domain.Class
}

// newFixture builds Seconde (Math coef 2, French coef 1) with no students.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	mem := store.NewMemory()
	classes := curriculum.New(mem, logger)

	class, err := classes.CreateClass("Seconde", decimal.NewFromInt(5000))
	require.NoError(t, err)
	_, err = classes.AddSubject(class.ID, "Math", 2)
	require.NoError(t, err)
	_, err = classes.AddSubject(class.ID, "French", 1)
	require.NoError(t, err)
	class, err = classes.Class(class.ID)
	require.NoError(t, err)

	return &fixture{mem: mem, classes: classes, grades: grading.New(classes, mem, logger), class: class}
}

func (f *fixture) enroll(t *testing.T, last string, classID domain.ClassID) domain.Student {
	t.Helper()
	st, err := f.mem.CreateStudent(domain.Student{
		LastName: last, FirstName: "Test", Address: "Port-au-Prince", Sex: domain.SexFemale, ClassID: classID,
	})
	require.NoError(t, err)
	return st
}

func TestGeneralAverage_Scenario(t *testing.T) {
	f := newFixture(t)
	st := f.enroll(t, "Joseph", f.class.ID)

	_, err := f.grades.RecordGrades(st.ID, "Math", []float64{80, 90})
	require.NoError(t, err)
	avg, ok, err := f.grades.SubjectAverage(st.ID, "Math")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 85.0, avg)

	_, err = f.grades.RecordGrades(st.ID, "French", []float64{60})
	require.NoError(t, err)
	avg, ok, err = f.grades.SubjectAverage(st.ID, "French")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 60.0, avg)

	general, ok, err := f.grades.GeneralAverage(st.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.InDelta(t, 76.6666666, general, 1e-6)
}

func TestGeneralAverage_UndefinedWithoutGrades(t *testing.T) {
	f := newFixture(t)
	st := f.enroll(t, "Joseph", f.class.ID)

	_, ok, err := f.grades.GeneralAverage(st.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = f.grades.SubjectAverage(st.ID, "Math")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGeneralAverage_OrderInvariant(t *testing.T) {
	f := newFixture(t)
	a := f.enroll(t, "A", f.class.ID)
	b := f.enroll(t, "B", f.class.ID)

	_, err := f.grades.RecordGrades(a.ID, "Math", []float64{71.3, 88.9})
	require.NoError(t, err)
	_, err = f.grades.RecordGrades(a.ID, "French", []float64{55.5})
	require.NoError(t, err)

	_, err = f.grades.RecordGrades(b.ID, "French", []float64{55.5})
	require.NoError(t, err)
	_, err = f.grades.RecordGrades(b.ID, "Math", []float64{71.3, 88.9})
	require.NoError(t, err)

	avgA, _, err := f.grades.GeneralAverage(a.ID)
	require.NoError(t, err)
	avgB, _, err := f.grades.GeneralAverage(b.ID)
	require.NoError(t, err)
	assert.Equal(t, avgA, avgB)
}

func TestRecordGrades_DropsOutOfRangeAndOverwrites(t *testing.T) {
	f := newFixture(t)
	st := f.enroll(t, "Joseph", f.class.ID)

	_, err := f.grades.RecordGrades(st.ID, "Math", []float64{10, 20, 30})
	require.NoError(t, err)

	entry, err := f.grades.RecordGrades(st.ID, "math", []float64{150, 50, -10})
	require.NoError(t, err)
	assert.Equal(t, "Math", entry.Subject.Name)
	assert.Equal(t, []float64{50}, entry.Accepted)
	assert.Equal(t, []float64{150, -10}, entry.Rejected)

	// Recording replaces the earlier list rather than appending to it.
	loaded, _, err := f.mem.LoadStudent(st.ID)
	require.NoError(t, err)
	assert.Equal(t, []float64{50}, loaded.GradesFor("Math"))
}

func TestRecordGrades_AllRejectedKeepsPrevious(t *testing.T) {
	f := newFixture(t)
	st := f.enroll(t, "Joseph", f.class.ID)

	_, err := f.grades.RecordGrades(st.ID, "Math", []float64{75})
	require.NoError(t, err)
	entry, err := f.grades.RecordGrades(st.ID, "Math", []float64{101, -1})
	require.NoError(t, err)
	assert.Empty(t, entry.Accepted)

	avg, ok, err := f.grades.SubjectAverage(st.ID, "Math")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 75.0, avg)
}

func TestRecordGrades_Failures(t *testing.T) {
	f := newFixture(t)
	st := f.enroll(t, "Joseph", f.class.ID)

	_, err := f.grades.RecordGrades(42, "Math", []float64{50})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.grades.RecordGrades(st.ID, "Biology", []float64{50})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	empty, err := f.classes.CreateClass("Troisième", decimal.NewFromInt(4000))
	require.NoError(t, err)
	other := f.enroll(t, "Pierre", empty.ID)
	_, err = f.grades.RecordGrades(other.ID, "Math", []float64{50})
	assert.ErrorIs(t, err, domain.ErrEmptyPrerequisite)
}

func TestSubjectReport(t *testing.T) {
	f := newFixture(t)
	a := f.enroll(t, "A", f.class.ID)
	b := f.enroll(t, "B", f.class.ID)
	c := f.enroll(t, "C", f.class.ID)

	other, err := f.classes.CreateClass("Première", decimal.NewFromInt(6000))
	require.NoError(t, err)
	_, err = f.classes.AddSubject(other.ID, "Math", 1)
	require.NoError(t, err)
	outsider := f.enroll(t, "Z", other.ID)

	_, err = f.grades.RecordGrades(a.ID, "Math", []float64{80, 90})
	require.NoError(t, err)
	_, err = f.grades.RecordGrades(c.ID, "Math", []float64{65})
	require.NoError(t, err)
	_, err = f.grades.RecordGrades(outsider.ID, "Math", []float64{0})
	require.NoError(t, err)

	report, err := f.grades.SubjectReport(f.class.ID, "MATH")
	require.NoError(t, err)
	assert.Equal(t, "Math", report.Subject.Name)
	require.Len(t, report.Rows, 3)
	assert.Equal(t, a.ID, report.Rows[0].Student.ID)
	assert.True(t, report.Rows[0].Graded)
	assert.Equal(t, 85.0, report.Rows[0].Average)
	assert.Equal(t, b.ID, report.Rows[1].Student.ID)
	assert.False(t, report.Rows[1].Graded)
	assert.Equal(t, 2, report.GradedCount)
	assert.Equal(t, 3, report.Total)
	require.True(t, report.HasClassAverage)
	assert.Equal(t, 75.0, report.ClassAverage)
}

func TestSubjectReport_NoGrades(t *testing.T) {
	f := newFixture(t)
	f.enroll(t, "A", f.class.ID)

	report, err := f.grades.SubjectReport(f.class.ID, "French")
	require.NoError(t, err)
	assert.False(t, report.HasClassAverage)
	assert.Equal(t, 0, report.GradedCount)
	assert.Equal(t, 1, report.Total)

	_, err = f.grades.SubjectReport(99, "French")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
