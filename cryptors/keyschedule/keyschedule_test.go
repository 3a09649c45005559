package keyschedule

import (
	"math"
	"testing"

	"github.com/bgallie/notecipher/cryptors"
	"github.com/bgallie/notecipher/cryptors/rotor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigits(t *testing.T) {
	cases := []struct {
		code int64
		want string
	}{
		{0, "00000000"},
		{7, "00000007"},
		{-7, "00000007"},
		{12345678, "12345678"},
		{123456789, "123456789"},
		{-123456789012, "123456789012"},
		{math.MinInt64, "9223372036854775808"},
		{math.MaxInt64, "9223372036854775807"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Digits(c.code), "code %d", c.code)
	}
}

func TestRotorSeeds(t *testing.T) {
	// Digits(12345678) = "12345678": digit pairs 12, 34, 56, 78.
	const code = 12345678
	seeds := RotorSeeds(code)
	for setIndex, pair := range []int64{12, 34, 56, 78} {
		setSeed := pair + code
		for rotorIndex := 0; rotorIndex < cryptors.RotorsPerSet; rotorIndex++ {
			want := setSeed*int64(rotorIndex+1) + code*int64(rotorIndex+7)
			require.Equal(t, want, seeds[setIndex][rotorIndex])
		}
	}
}

func TestRotorSeedsNegativeCode(t *testing.T) {
	// The digit pairs come from |code| but the signed code is added.
	seeds := RotorSeeds(-42)
	require.Equal(t, int64(0-42)*1+(-42)*7, seeds[0][0])
	require.Equal(t, int64(42-42)*5+(-42)*11, seeds[3][4])
}

func TestRotorSeedsUsesLeadingDigitsOfLongCodes(t *testing.T) {
	const code = 9876543210
	seeds := RotorSeeds(code)
	require.Equal(t, int64(98+code)+code*7, seeds[0][0])
	require.Equal(t, int64(32+code)+code*7, seeds[3][0])
}

func TestGenerateMatchesSeeds(t *testing.T) {
	for _, code := range []int64{0, 1, -1, 111, 222, math.MinInt64, math.MaxInt64} {
		sets := Generate(code)
		seeds := RotorSeeds(code)
		for s := range sets {
			for r := 0; r < cryptors.RotorsPerSet; r++ {
				got := sets[s].Rotor(r)
				require.Equal(t, seeds[s][r], got.Seed())
				require.Equal(t, rotor.New(seeds[s][r]).Table(), got.Table())
			}
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a, b := Generate(31337), Generate(31337)
	require.Equal(t, a.String(), b.String())
	require.NotEqual(t, a.String(), Generate(31338).String())
}
