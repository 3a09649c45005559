// rotor
package rotor

import (
	"bytes"
	"fmt"

	"github.com/bgallie/notecipher/cryptors"
	"github.com/bgallie/notecipher/cryptors/bitops"
	"golang.org/x/exp/rand"
)

// Rotor is a permutation of the alphabet indices [0, AlphabetSize) together
// with its inverse.
type Rotor struct {
	seed    int64
	rotor   [cryptors.AlphabetSize]byte
	inverse [cryptors.AlphabetSize]byte
}

// New generates the rotor for seed.  The identity permutation is shuffled
// (Fisher-Yates, last index first) by a PCG generator seeded with seed, so the
// same seed always yields the same rotor.
func New(seed int64) *Rotor {
	var table [cryptors.AlphabetSize]byte
	for i := range table {
		table[i] = byte(i)
	}

	var src rand.PCGSource
	src.Seed(uint64(seed))
	rng := rand.New(&src)

	for i := len(table) - 1; i > 0; i-- {
		j := int(rng.Uint64n(uint64(i + 1)))
		table[i], table[j] = table[j], table[i]
	}

	return FromTable(seed, table)
}

// FromTable builds a rotor from an explicit permutation table.  It panics if
// table is not a bijection on [0, AlphabetSize).
func FromTable(seed int64, table [cryptors.AlphabetSize]byte) *Rotor {
	r := Rotor{seed: seed, rotor: table}
	seen := bitops.BitSet(cryptors.AlphabetSize)

	for i, v := range r.rotor {
		if int(v) >= cryptors.AlphabetSize {
			panic(fmt.Sprintf("rotor %d: value %d at %d is outside the alphabet", seed, v, i))
		}
		if bitops.GetBit(seen, uint(v)) {
			panic(fmt.Sprintf("rotor %d: value %d repeated at %d", seed, v, i))
		}
		bitops.SetBit(seen, uint(v))
		r.inverse[v] = byte(i)
	}

	if bitops.Count(seen, cryptors.AlphabetSize) != cryptors.AlphabetSize {
		panic(fmt.Sprintf("rotor %d: not a permutation of the alphabet", seed))
	}

	return &r
}

// Apply_F maps idx through the rotor turned by shift.  Both idx and shift
// must be in [0, AlphabetSize).
func (r *Rotor) Apply_F(idx, shift int) int {
	return int(r.rotor[(idx+shift)%cryptors.AlphabetSize])
}

// Apply_G returns the unique j with Apply_F(j, shift) == idx.
func (r *Rotor) Apply_G(idx, shift int) int {
	j := int(r.inverse[idx]) - shift
	if j < 0 {
		j += cryptors.AlphabetSize
	}

	if int(r.rotor[(j+shift)%cryptors.AlphabetSize]) != idx {
		panic(fmt.Sprintf("rotor %d: no preimage for %d with shift %d", r.seed, idx, shift))
	}

	return j
}

func (r *Rotor) Seed() int64 {
	return r.seed
}

// Table returns a copy of the permutation table.
func (r *Rotor) Table() [cryptors.AlphabetSize]byte {
	return r.rotor
}

func (r *Rotor) String() string {
	var output bytes.Buffer
	output.WriteString(fmt.Sprintf("rotor.New(%d) [...]byte{\n", r.seed))

	for i := 0; i < cryptors.AlphabetSize; i += 12 {
		output.WriteString("\t")
		for _, k := range r.rotor[i : i+12] {
			output.WriteString(fmt.Sprintf("%2d, ", k))
		}
		output.Truncate(output.Len() - 1)
		output.WriteString("\n")
	}

	output.WriteString("}")
	return output.String()
}
