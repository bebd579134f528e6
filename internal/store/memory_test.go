package store_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolbook/internal/domain"
	"schoolbook/internal/store"
)

func TestMemory_IDsAreSequential(t *testing.T) {
	m := store.NewMemory()

	a, err := m.CreateClass(domain.Class{Name: "Seconde", Fee: decimal.NewFromInt(5000)})
	require.NoError(t, err)
	b, err := m.CreateClass(domain.Class{Name: "Première", Fee: decimal.NewFromInt(6000)})
	require.NoError(t, err)
	assert.Equal(t, domain.ClassID(1), a.ID)
	assert.Equal(t, domain.ClassID(2), b.ID)

	s1, err := m.CreateStudent(domain.Student{LastName: "Joseph", ClassID: a.ID})
	require.NoError(t, err)
	s2, err := m.CreateStudent(domain.Student{LastName: "Pierre", ClassID: b.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.StudentID(1), s1.ID)
	assert.Equal(t, domain.StudentID(2), s2.ID)

	t1, err := m.AppendTransaction(domain.Transaction{Kind: domain.Inflow, Amount: decimal.NewFromInt(1)})
	require.NoError(t, err)
	t2, err := m.AppendTransaction(domain.Transaction{Kind: domain.Outflow, Amount: decimal.NewFromInt(1)})
	require.NoError(t, err)
	assert.Equal(t, domain.TransactionID(1), t1.ID)
	assert.Equal(t, domain.TransactionID(2), t2.ID)
}

func TestMemory_LoadUnknown_NotOK(t *testing.T) {
	m := store.NewMemory()

	_, ok, err := m.LoadClass(1)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = m.LoadStudent(0)
	require.NoError(t, err)
	assert.False(t, ok)

	err = m.SaveStudent(domain.Student{ID: 7})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemory_StudentCopiesDoNotAlias(t *testing.T) {
	m := store.NewMemory()
	st, err := m.CreateStudent(domain.Student{LastName: "Joseph", ClassID: 1})
	require.NoError(t, err)

	st.Grades["math"] = []float64{90}
	loaded, ok, err := m.LoadStudent(st.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Empty(t, loaded.Grades, "caller mutation leaked into the store")

	require.NoError(t, m.SaveStudent(st))
	st.Grades["math"][0] = 10
	loaded, _, _ = m.LoadStudent(st.ID)
	assert.Equal(t, []float64{90}, loaded.Grades["math"])
}

func TestMemory_ClassSubjectsDoNotAlias(t *testing.T) {
	m := store.NewMemory()
	c, err := m.CreateClass(domain.Class{Name: "Seconde", Fee: decimal.NewFromInt(5000)})
	require.NoError(t, err)

	c.Subjects = append(c.Subjects, domain.Subject{Name: "Math", Coefficient: 2})
	list, err := m.ListClasses()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Empty(t, list[0].Subjects)

	require.NoError(t, m.SaveClass(c))
	loaded, ok, err := m.LoadClass(c.ID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, loaded.Subjects, 1)
}
