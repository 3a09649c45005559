package alphabet

import (
	"testing"

	"github.com/bgallie/notecipher/cryptors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSize(t *testing.T) {
	require.Len(t, Symbols, cryptors.AlphabetSize)
}

func TestIndexOfSymbolAt(t *testing.T) {
	for i := 0; i < cryptors.AlphabetSize; i++ {
		idx, ok := IndexOf(rune(SymbolAt(i)))
		require.True(t, ok)
		require.Equal(t, i, idx)
	}
}

func TestOrdering(t *testing.T) {
	cases := []struct {
		r   rune
		idx int
	}{
		{'A', 0},
		{'Z', 25},
		{'a', 26},
		{'z', 51},
		{'0', 52},
		{'9', 61},
		{' ', 62},
		{'-', 71},
	}
	for _, c := range cases {
		idx, ok := IndexOf(c.r)
		require.True(t, ok, "%q", c.r)
		assert.Equal(t, c.idx, idx, "%q", c.r)
	}
}

func TestNonMembers(t *testing.T) {
	for _, r := range []rune{'é', '\n', '\t', '@', '#', '~', 0, -1, 'ÿ', '😀'} {
		assert.False(t, Contains(r), "%q", r)
		_, ok := IndexOf(r)
		assert.False(t, ok, "%q", r)
	}
}

func TestSymbolAtOutOfRange(t *testing.T) {
	require.Panics(t, func() { SymbolAt(-1) })
	require.Panics(t, func() { SymbolAt(cryptors.AlphabetSize) })
}

func TestSpaceIsTransformed(t *testing.T) {
	// Space is a member, so it is enciphered rather than passed through.
	require.True(t, Contains(' '))
}
