// Package engine implements the keyed text cipher.  Encrypt and Decrypt map
// every alphabet character of a string through one of the rotor sets derived
// from the code and copy every other character unchanged, so
// Decrypt(Encrypt(s, code), code) == s for any string and code.
//
// Nothing is cached between calls; the rotor sets are rebuilt from the code
// on every call, which makes both functions safe for concurrent use.
package engine

import (
	"sync"
	"unicode/utf8"

	"github.com/bgallie/notecipher/cryptors"
	"github.com/bgallie/notecipher/cryptors/alphabet"
	"github.com/bgallie/notecipher/cryptors/keyschedule"
)

// ChunkSize is the number of characters above which the input is split into
// chunks of this size that are transformed concurrently.
const ChunkSize = 1 << 16

type direction int

const (
	forward direction = iota
	reverse
)

// Engine is a stateless handle on Encrypt and Decrypt for callers that
// prefer to inject the cipher as a value.
type Engine struct{}

// New returns an Engine.
func New() Engine {
	return Engine{}
}

func (Engine) Encrypt(text string, code int64) string {
	return Encrypt(text, code)
}

func (Engine) Decrypt(text string, code int64) string {
	return Decrypt(text, code)
}

// Encrypt returns the ciphertext of text under code.
func Encrypt(text string, code int64) string {
	return transform(text, code, forward, ChunkSize)
}

// Decrypt returns the plaintext of text under code.
func Decrypt(text string, code int64) string {
	return transform(text, code, reverse, ChunkSize)
}

// chunk is a run of characters: the byte range [start, end) of the input and
// the absolute index of its first character.
type chunk struct {
	start, end int
	index      int64
}

func transform(text string, code int64, dir direction, chunkSize int) string {
	if len(text) == 0 {
		return ""
	}

	sets := keyschedule.Generate(code)
	out := []byte(text)
	chunks := split(text, chunkSize)

	if len(chunks) == 1 {
		transformChunk(out, text, chunks[0], &sets, code, dir)
		return string(out)
	}

	var wg sync.WaitGroup
	for _, c := range chunks {
		wg.Add(1)

		go func(c chunk) {
			defer wg.Done()
			transformChunk(out, text, c, &sets, code, dir)
		}(c)
	}

	wg.Wait()
	return string(out)
}

// split cuts text into chunks of at most chunkSize characters.  A character
// is a UTF-8 encoded rune; an invalid byte counts as one character.
func split(text string, chunkSize int) []chunk {
	if len(text) <= chunkSize {
		return []chunk{{start: 0, end: len(text)}}
	}

	var chunks []chunk
	c := chunk{}
	n := 0

	for off := 0; off < len(text); {
		if n == chunkSize {
			c.end = off
			chunks = append(chunks, c)
			c = chunk{start: off, index: c.index + int64(n)}
			n = 0
		}

		_, size := utf8.DecodeRuneInString(text[off:])
		off += size
		n++
	}

	c.end = len(text)
	return append(chunks, c)
}

// transformChunk writes the transformed characters of c into out.  Alphabet
// symbols are single bytes, so out has the same layout as text.
func transformChunk(out []byte, text string, c chunk, sets *keyschedule.RotorSets, code int64, dir direction) {
	i := c.index

	for off := c.start; off < c.end; i++ {
		r, size := utf8.DecodeRuneInString(text[off:])
		if charIndex, ok := alphabet.IndexOf(r); ok {
			position := i % cryptors.PositionCycle
			uniqueCode := code + i

			var transformed int
			if dir == forward {
				transformed = encryptChar(charIndex, sets, position, uniqueCode)
			} else {
				transformed = decryptChar(charIndex, sets, position, uniqueCode)
			}
			out[off] = alphabet.SymbolAt(transformed % cryptors.AlphabetSize)
		}

		off += size
	}
}

// selectRotors picks the active rotor set and the rotor shift for a
// character.  Neither depends on the character itself, which is what keeps
// encryption and decryption in step.
func selectRotors(position, uniqueCode int64) (int, int) {
	sum := position + uniqueCode
	return int(cryptors.Mod(sum, cryptors.NumberRotorSets)), int(cryptors.Mod(sum, cryptors.AlphabetSize))
}

func encryptChar(charIndex int, sets *keyschedule.RotorSets, position, uniqueCode int64) int {
	active, shift := selectRotors(position, uniqueCode)
	return cryptors.Encrypt(sets[active], charIndex, shift)
}

func decryptChar(charIndex int, sets *keyschedule.RotorSets, position, uniqueCode int64) int {
	active, shift := selectRotors(position, uniqueCode)
	return cryptors.Decrypt(sets[active], charIndex, shift)
}
