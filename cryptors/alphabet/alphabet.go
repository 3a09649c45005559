// Package alphabet defines the ordered symbol table the rotors operate on.
// Both ends of a round trip must use this exact sequence; reordering it
// changes every ciphertext.
package alphabet

import (
	"fmt"

	"github.com/bgallie/notecipher/cryptors"
)

// Symbols is the alphabet in index order: uppercase letters, lowercase
// letters, digits, then space and nine punctuation marks.
const Symbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"0123456789" +
	" !?.,;:'\"-"

var index [128]int8

func init() {
	if len(Symbols) != cryptors.AlphabetSize {
		panic(fmt.Sprintf("alphabet has %d symbols, expected %d", len(Symbols), cryptors.AlphabetSize))
	}

	for i := range index {
		index[i] = -1
	}

	for i := 0; i < len(Symbols); i++ {
		if index[Symbols[i]] != -1 {
			panic(fmt.Sprintf("alphabet symbol %q repeated", Symbols[i]))
		}
		index[Symbols[i]] = int8(i)
	}
}

// IndexOf returns the index of r in the alphabet.  The second result is false
// when r is not a member.
func IndexOf(r rune) (int, bool) {
	if r < 0 || r >= rune(len(index)) || index[r] < 0 {
		return 0, false
	}

	return int(index[r]), true
}

// SymbolAt returns the symbol with index i.
func SymbolAt(i int) byte {
	if i < 0 || i >= len(Symbols) {
		panic(fmt.Sprintf("alphabet index %d out of range [0, %d)", i, len(Symbols)))
	}

	return Symbols[i]
}

// Contains reports whether r is a member of the alphabet.
func Contains(r rune) bool {
	_, ok := IndexOf(r)
	return ok
}
