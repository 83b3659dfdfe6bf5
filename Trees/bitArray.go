package Trees

import "math/bits"

// bitArray is a fixed size set of small integers, one bit each.
type bitArray []uint

func newBitArray(size int) bitArray {
	return make(bitArray, (size+bits.UintSize-1)/bits.UintSize)
}

func (u bitArray) Get(i uint64) bool {
	return (u[i/bits.UintSize]>>(i%bits.UintSize))&1 == 1
}

// Up sets bit i and reports whether it was already set.
func (u bitArray) Up(i uint64) bool {
	w, m := &u[i/bits.UintSize], uint(1)<<(i%bits.UintSize)
	was := *w&m != 0
	*w |= m
	return was
}
