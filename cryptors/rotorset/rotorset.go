// rotorset project rotorset.go
package rotorset

import (
	"bytes"
	"fmt"

	"github.com/bgallie/notecipher/cryptors"
	"github.com/bgallie/notecipher/cryptors/rotor"
)

// RotorSet is a group of rotors that are applied together to a character.
// Encryption passes the character through the rotors in generation order;
// decryption undoes them in reverse order.
type RotorSet struct {
	rotors [cryptors.RotorsPerSet]*rotor.Rotor
}

// New creates a rotor set from rotors.  Every entry must be non-nil.
func New(rotors [cryptors.RotorsPerSet]*rotor.Rotor) *RotorSet {
	for i, r := range rotors {
		if r == nil {
			panic(fmt.Sprintf("rotor set is missing rotor %d", i))
		}
	}

	return &RotorSet{rotors: rotors}
}

// Rotor returns the i'th rotor of the set.
func (s *RotorSet) Rotor(i int) *rotor.Rotor {
	return s.rotors[i]
}

func (s *RotorSet) Apply_F(idx, shift int) int {
	for _, r := range s.rotors {
		idx = r.Apply_F(idx, shift)
	}

	return idx
}

func (s *RotorSet) Apply_G(idx, shift int) int {
	for i := len(s.rotors) - 1; i >= 0; i-- {
		idx = s.rotors[i].Apply_G(idx, shift)
	}

	return idx
}

func (s *RotorSet) String() string {
	var output bytes.Buffer
	output.WriteString("rotorset.New([...]*rotor.Rotor{\n")

	for _, r := range s.rotors {
		output.WriteString(r.String())
		output.WriteString(",\n")
	}

	output.WriteString("})")
	return output.String()
}
