// Package djb2 implements Bernstein's multiplicative string hash
// (h = h*33 + c, seeded with 5381) folded to 32 bits.
package djb2

import "unicode/utf16"

const seed = 5381

// Sum32 hashes key one UTF-16 code unit at a time, so keys outside the
// basic multilingual plane contribute both halves of their surrogate pair.
func Sum32(key string) uint32 {
	h := uint32(seed)
	for _, r := range key {
		if r < 0x10000 {
			h = h<<5 + h + uint32(r)
			continue
		}
		r1, r2 := utf16.EncodeRune(r)
		h = h<<5 + h + uint32(r1)
		h = h<<5 + h + uint32(r2)
	}
	return h
}

// Sum32Bytes hashes b treating every byte as a single code unit.
func Sum32Bytes(b []byte) uint32 {
	h := uint32(seed)
	for _, c := range b {
		h = h<<5 + h + uint32(c)
	}
	return h
}
