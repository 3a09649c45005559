// Package keyschedule expands a code into the rotor sets used by the cipher
// engine.  The expansion is a pure function of the code.
package keyschedule

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/bgallie/notecipher/cryptors"
	"github.com/bgallie/notecipher/cryptors/rotor"
	"github.com/bgallie/notecipher/cryptors/rotorset"
)

// RotorSets is every rotor set derived from one code, in generation order.
type RotorSets [cryptors.NumberRotorSets]*rotorset.RotorSet

// Seeds holds the seed of every rotor, indexed by set then rotor.
type Seeds [cryptors.NumberRotorSets][cryptors.RotorsPerSet]int64

// Digits returns the decimal form of |code| left padded with zeros to
// MinimumCodeWidth characters.  Longer values are not truncated.
func Digits(code int64) string {
	u := uint64(code)
	if code < 0 {
		u = -u
	}

	s := strconv.FormatUint(u, 10)
	if len(s) < cryptors.MinimumCodeWidth {
		s = strings.Repeat("0", cryptors.MinimumCodeWidth-len(s)) + s
	}

	return s
}

// RotorSeeds computes the rotor seeds for code.  Set i is keyed by the digit
// pair at offset 2*i of Digits(code); arithmetic wraps on overflow.
func RotorSeeds(code int64) Seeds {
	var seeds Seeds
	digits := Digits(code)

	for setIndex := range seeds {
		base := setIndex * 2
		digitPair := int64(digits[base]-'0')*10 + int64(digits[base+1]-'0')
		setSeed := digitPair + code

		for rotorIndex := range seeds[setIndex] {
			seeds[setIndex][rotorIndex] = setSeed*int64(rotorIndex+1) + code*int64(rotorIndex+7)
		}
	}

	return seeds
}

// Generate builds the rotor sets for code.
func Generate(code int64) RotorSets {
	var sets RotorSets

	for setIndex, setSeeds := range RotorSeeds(code) {
		var rotors [cryptors.RotorsPerSet]*rotor.Rotor
		for rotorIndex, seed := range setSeeds {
			rotors[rotorIndex] = rotor.New(seed)
		}
		sets[setIndex] = rotorset.New(rotors)
	}

	return sets
}

func (sets RotorSets) String() string {
	var output bytes.Buffer

	for i, s := range sets {
		output.WriteString(fmt.Sprintf("// set %d\n", i))
		output.WriteString(s.String())
		output.WriteString("\n")
	}

	return output.String()
}
