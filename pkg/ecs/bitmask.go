package ecs

import "math/bits"

// Bitmask records which component types an entity carries, one bit per
// ComponentID. It grows by whole words as IDs are set.
type Bitmask []uint64

func (b Bitmask) Set(bit ComponentID) Bitmask {
	word, pos := bit/64, bit%64
	for len(b) <= int(word) {
		b = append(b, 0)
	}
	b[word] |= 1 << pos
	return b
}

func (b Bitmask) Clear(bit ComponentID) Bitmask {
	word, pos := bit/64, bit%64
	if len(b) <= int(word) {
		return b
	}
	b[word] &= ^(uint64(1) << pos)
	return b
}

// Matches reports whether b carries every bit set in required.
func (b Bitmask) Matches(required Bitmask) bool {
	if len(b) < len(required) {
		return false
	}
	for i := range required {
		if (b[i] & required[i]) != required[i] {
			return false
		}
	}
	return true
}

// ForEachSet calls fn for every set bit, in ascending ID order.
func (b Bitmask) ForEachSet(fn func(id ComponentID)) {
	for wordIdx, word := range b {
		for word != 0 {
			pos := bits.TrailingZeros64(word)
			fn(ComponentID(wordIdx*64 + pos))
			word &= word - 1
		}
	}
}
