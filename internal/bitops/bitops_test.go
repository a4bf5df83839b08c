package bitops

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCLZCTZ64(t *testing.T) {
	require.Equal(t, 63, CLZ64(1))
	require.Equal(t, 0, CLZ64(1<<63))
	require.Equal(t, 0, CTZ64(1))
	require.Equal(t, 63, CTZ64(1<<63))
}

func TestNibbleCLZ4(t *testing.T) {
	require.Equal(t, 4, NibbleCLZ4(0))
	require.Equal(t, 3, NibbleCLZ4(1))
	require.Equal(t, 0, NibbleCLZ4(8))
	require.Equal(t, 0, NibbleCLZ4(15))
}

func TestIsPow2(t *testing.T) {
	require.True(t, IsPow2(1))
	require.True(t, IsPow2(1024))
	require.False(t, IsPow2(0))
	require.False(t, IsPow2(3))
}
