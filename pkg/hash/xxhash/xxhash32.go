package xxhash

import "github.com/cespare/xxhash/v2"

// Sum32 returns the 64 bit xxhash digest of key folded down to 32 bits
func Sum32(key string) uint32 {
	h := xxhash.Sum64String(key)
	return uint32(h>>32) ^ uint32(h)
}

// Sum64 returns the full 64 bit xxhash digest of key
func Sum64(key string) uint64 {
	return xxhash.Sum64String(key)
}
