package ioutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckMultiplyOverflow(t *testing.T) {
	require.NoError(t, CheckMultiplyOverflow(10, 20))
	require.NoError(t, CheckMultiplyOverflow(0, math.MaxUint64))
	require.Error(t, CheckMultiplyOverflow(math.MaxUint64, 2))
}

func TestNextPow2(t *testing.T) {
	cases := map[uint64]uint64{
		0: 1, 1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 1023: 1024, 1024: 1024, 1025: 2048,
	}
	for in, want := range cases {
		require.Equal(t, want, NextPow2(in), "NextPow2(%d)", in)
	}
}
