// cyptor
package cryptors

const (
	AlphabetSize     = 72  // Number of symbols the rotors permute.
	RotorsPerSet     = 5   // Rotors applied in sequence for a single character.
	NumberRotorSets  = 4   // Rotor sets derived from one code.
	PositionCycle    = 997 // Period of the position used for set and shift selection.
	MinimumCodeWidth = 8   // Width the decimal code is zero padded to.
)

// Crypter is implemented by anything that maps an alphabet index to another
// alphabet index (Apply_F) and can undo that mapping (Apply_G) given the same
// shift.
type Crypter interface {
	Apply_F(idx, shift int) int
	Apply_G(idx, shift int) int
}

func Encrypt(ecm Crypter, idx, shift int) int {
	return ecm.Apply_F(idx, shift)
}

func Decrypt(ecm Crypter, idx, shift int) int {
	return ecm.Apply_G(idx, shift)
}

// Mod returns a modulo m in the range [0, m) for any sign of a.
func Mod(a, m int64) int64 {
	r := a % m
	if r < 0 {
		r += m
	}

	return r
}
