package oracle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadav-alali/fairsweep/dataset"
	"github.com/nadav-alali/fairsweep/oracle"
)

func TestNewTopKCap_Validation(t *testing.T) {
	_, err := oracle.NewTopKCap("", 0.3, 0.6)
	assert.ErrorIs(t, err, oracle.ErrEmptyProtectedValue)

	_, err = oracle.NewTopKCap("A", 0, 0.6)
	assert.ErrorIs(t, err, oracle.ErrBadFraction)

	_, err = oracle.NewTopKCap("A", 1.5, 0.6)
	assert.ErrorIs(t, err, oracle.ErrBadFraction)

	_, err = oracle.NewTopKCap("A", 0.3, -0.1)
	assert.ErrorIs(t, err, oracle.ErrBadCap)

	_, err = oracle.NewTopKCap("A", 0.3, 0.6)
	require.NoError(t, err)
}

func TestTopKCap_Evaluate(t *testing.T) {
	o, err := oracle.NewTopKCap("AfricanAmerican", 0.5, 0.5)
	require.NoError(t, err)

	ordering := []*dataset.Item{
		{X: 4, Y: 0, Groups: []string{"AfricanAmerican"}},
		{X: 3, Y: 0, Groups: []string{"AfricanAmerican"}},
		{X: 2, Y: 0, Groups: []string{"Caucasian"}},
		{X: 1, Y: 0, Groups: []string{"Caucasian"}},
	}
	// top_k = floor(4*0.5) = 2, both protected -> fraction 1.0 > 0.5 cap.
	sat, err := o.Evaluate(ordering)
	require.NoError(t, err)
	assert.False(t, sat)

	ordering[0].Groups[0] = "Caucasian"
	// now top-2 has 1 protected out of 2 -> fraction 0.5 <= 0.5 cap.
	sat, err = o.Evaluate(ordering)
	require.NoError(t, err)
	assert.True(t, sat)
}

func TestTopKCap_TopKIsAtLeastOne(t *testing.T) {
	o, err := oracle.NewTopKCap("A", 0.01, 0)
	require.NoError(t, err)

	// n=3, fraction 0.01 -> floor(0.03)=0, clamped up to 1.
	ordering := []*dataset.Item{
		{X: 3, Y: 0, Groups: []string{"B"}},
		{X: 2, Y: 0, Groups: []string{"A"}},
		{X: 1, Y: 0, Groups: []string{"B"}},
	}
	sat, err := o.Evaluate(ordering)
	require.NoError(t, err)
	assert.True(t, sat, "top item is not protected, cap of 0 should still be satisfied")
}

func TestTopKCap_GroupSlot(t *testing.T) {
	o, err := oracle.NewTopKCap("Male", 1.0, 0, oracle.WithGroupSlot(1))
	require.NoError(t, err)

	ordering := []*dataset.Item{
		{X: 2, Y: 0, Groups: []string{"AfricanAmerican", "Female"}},
		{X: 1, Y: 0, Groups: []string{"Caucasian", "Female"}},
	}
	sat, err := o.Evaluate(ordering)
	require.NoError(t, err)
	assert.True(t, sat, "no Male labels in slot 1, a 0-cap must hold")
}
