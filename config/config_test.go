package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetMaxPrecisionWriteOnce(t *testing.T) {
	ResetForTesting()
	defer ResetForTesting()

	require.NoError(t, SetMaxPrecision(10))
	p, ok := MaxPrecision()
	require.True(t, ok)
	require.Equal(t, Precision(10), p)

	// Same value again is fine.
	require.NoError(t, SetMaxPrecision(10))

	// A different value is rejected.
	err := SetMaxPrecision(20)
	require.Error(t, err)
	p, ok = MaxPrecision()
	require.True(t, ok)
	require.Equal(t, Precision(10), p)
}

func TestSetMaxPrecisionRejectsNonPositive(t *testing.T) {
	ResetForTesting()
	defer ResetForTesting()

	require.Error(t, SetMaxPrecision(0))
	require.Error(t, SetMaxPrecision(-1))
	_, ok := MaxPrecision()
	require.False(t, ok)
}

func TestDebugFlags(t *testing.T) {
	require.False(t, Debug("iterator"))
	SetDebug("iterator", true)
	require.True(t, Debug("iterator"))
	SetDebug("iterator", false)
	require.False(t, Debug("iterator"))
}
