package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPCStatusValid(t *testing.T) {
	require.True(t, StatusAvailable.Valid())
	require.True(t, StatusAssigned.Valid())
	require.True(t, StatusInRepair.Valid())
	require.False(t, PCStatus("broken").Valid())
	require.False(t, PCStatus("").Valid())
}

func TestPCStatusCanTransition(t *testing.T) {
	cases := []struct {
		from, to PCStatus
		ok       bool
	}{
		{StatusAvailable, StatusAssigned, true},
		{StatusAvailable, StatusInRepair, true},
		{StatusAssigned, StatusAvailable, true},
		{StatusInRepair, StatusAvailable, true},
		{StatusAssigned, StatusInRepair, false},
		{StatusInRepair, StatusAssigned, false},
		{StatusAssigned, StatusAssigned, false},
		{StatusAvailable, StatusAvailable, false},
		{PCStatus("broken"), StatusAvailable, false},
	}
	for _, c := range cases {
		require.Equal(t, c.ok, c.from.CanTransition(c.to), "%s -> %s", c.from, c.to)
	}
}
