package xxhash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSum32FoldsSum64(t *testing.T) {
	for _, key := range []string{"", "Sauron", "The Necromancer"} {
		h := Sum64(key)
		require.Equal(t, uint32(h>>32)^uint32(h), Sum32(key))
		require.Equal(t, Sum32(key), Sum32(key))
	}
}

func TestSum64Empty(t *testing.T) {
	// published xxh64 digest of the empty input with seed 0
	require.Equal(t, uint64(0xef46db3751d8e999), Sum64(""))
}
