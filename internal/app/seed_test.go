package app_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolbook/internal/app"
)

func TestSeed(t *testing.T) {
	reg := newRegistry(t)
	require.NoError(t, app.Seed(reg))

	classes, err := reg.Curriculum.Classes()
	require.NoError(t, err)
	require.Len(t, classes, 2)
	assert.Len(t, classes[1].Subjects, 3)

	list, err := reg.Enrollment.ListStudents()
	require.NoError(t, err)
	require.Len(t, list, 3)

	assert.True(t, list[0].HasAverage)
	assert.InDelta(t, 230.0/3, list[0].Average, 1e-9)
	assert.True(t, list[0].Account.Remaining().Equal(decimal.NewFromInt(2000)))
	assert.True(t, list[2].Account.InGoodStanding())

	balance, err := reg.Ledger.CurrentBalance()
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(7000)))

	// A second seed collides on class names.
	assert.Error(t, app.Seed(reg))
}
