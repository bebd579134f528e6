package curriculum_test

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolbook/internal/domain"
	"schoolbook/internal/services/curriculum"
	"schoolbook/internal/store"
)

func newService(t *testing.T) (*curriculum.Service, *logtest.Hook) {
	t.Helper()
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return curriculum.New(store.NewMemory(), logger), hook
}

func TestCreateClass_OK(t *testing.T) {
	svc, hook := newService(t)

	class, err := svc.CreateClass("  Seconde ", decimal.NewFromInt(5000))
	require.NoError(t, err)
	assert.Equal(t, domain.ClassID(1), class.ID)
	assert.Equal(t, "Seconde", class.Name)
	assert.Empty(t, class.Subjects)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "class created", entry.Message)
	assert.Equal(t, domain.ClassID(1), entry.Data["class_id"])
}

func TestCreateClass_DuplicateIgnoresCase(t *testing.T) {
	svc, _ := newService(t)
	_, err := svc.CreateClass("Seconde", decimal.NewFromInt(5000))
	require.NoError(t, err)

	_, err = svc.CreateClass("Seconde", decimal.NewFromInt(4000))
	assert.ErrorIs(t, err, domain.ErrDuplicateName)
	_, err = svc.CreateClass("SECONDE", decimal.NewFromInt(4000))
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	classes, err := svc.Classes()
	require.NoError(t, err)
	assert.Len(t, classes, 1)
}

func TestCreateClass_InvalidInput(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.CreateClass("Seconde", decimal.Zero)
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
	_, err = svc.CreateClass("Seconde", decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
	_, err = svc.CreateClass("   ", decimal.NewFromInt(10))
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
}

func TestAddSubject_OK(t *testing.T) {
	svc, _ := newService(t)
	class, err := svc.CreateClass("Seconde", decimal.NewFromInt(5000))
	require.NoError(t, err)

	_, err = svc.AddSubject(class.ID, "Math", 2)
	require.NoError(t, err)
	_, err = svc.AddSubject(class.ID, "French", 1)
	require.NoError(t, err)

	got, err := svc.Class(class.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.Subject{{Name: "Math", Coefficient: 2}, {Name: "French", Coefficient: 1}}, got.Subjects)
}

func TestAddSubject_Failures(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.AddSubject(1, "Math", 2)
	assert.ErrorIs(t, err, domain.ErrEmptyPrerequisite)

	class, err := svc.CreateClass("Seconde", decimal.NewFromInt(5000))
	require.NoError(t, err)

	_, err = svc.AddSubject(9, "Math", 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.AddSubject(class.ID, "Math", 2)
	require.NoError(t, err)
	_, err = svc.AddSubject(class.ID, "math", 3)
	assert.ErrorIs(t, err, domain.ErrDuplicateName)

	for _, coef := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = svc.AddSubject(class.ID, "French", coef)
		assert.ErrorIs(t, err, domain.ErrInvalidValue, "coefficient %v", coef)
	}

	got, err := svc.Class(class.ID)
	require.NoError(t, err)
	assert.Len(t, got.Subjects, 1)
}

func TestAddSubject_SameNameInOtherClass(t *testing.T) {
	svc, _ := newService(t)
	a, err := svc.CreateClass("Seconde", decimal.NewFromInt(5000))
	require.NoError(t, err)
	b, err := svc.CreateClass("Première", decimal.NewFromInt(6000))
	require.NoError(t, err)

	_, err = svc.AddSubject(a.ID, "Math", 2)
	require.NoError(t, err)
	_, err = svc.AddSubject(b.ID, "Math", 3)
	assert.NoError(t, err)
}
