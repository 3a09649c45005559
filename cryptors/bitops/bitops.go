// bitops project bitops.go
package bitops

func SetBit(ary []byte, bit uint) []byte {
	ary[bit>>3] |= (1 << (bit & 7))
	return ary
}

func GetBit(ary []byte, bit uint) bool {
	return (ary[bit>>3]&(1<<(bit&7)) != 0)
}

// BitSet returns a zeroed byte slice large enough to hold n bits.
func BitSet(n int) []byte {
	return make([]byte, (n+7)>>3)
}

// Count returns the number of set bits among the first n bits of ary.
func Count(ary []byte, n int) int {
	var cnt int
	for i := 0; i < n; i++ {
		if GetBit(ary, uint(i)) {
			cnt++
		}
	}

	return cnt
}
