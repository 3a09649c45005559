package bitops

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetGet(t *testing.T) {
	ary := BitSet(72)
	require.Len(t, ary, 9)

	for _, b := range []uint{0, 7, 8, 35, 71} {
		require.False(t, GetBit(ary, b))
		SetBit(ary, b)
		require.True(t, GetBit(ary, b))
	}
	require.Equal(t, 5, Count(ary, 72))
	require.Equal(t, 3, Count(ary, 9))
}

func TestBitSetRoundsUp(t *testing.T) {
	require.Len(t, BitSet(1), 1)
	require.Len(t, BitSet(8), 1)
	require.Len(t, BitSet(9), 2)
	require.Len(t, BitSet(0), 0)
}
