package engine

import "math/bits"

// bitSet 按局面键去重，大小固定为 krk.NumKeys，不会扩容
type bitSet []uint64

func newBitSet(size int) bitSet {
	return make(bitSet, (size+63)/64)
}

func (b bitSet) set(pos uint32) {
	b[pos/64] |= 1 << (pos % 64)
}

func (b bitSet) test(pos uint32) bool {
	return b[pos/64]&(1<<(pos%64)) != 0
}

func (b bitSet) count() int {
	n := 0
	for _, w := range b {
		n += bits.OnesCount64(w)
	}
	return n
}
