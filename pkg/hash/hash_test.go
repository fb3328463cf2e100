package hash

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scottcagno/hashmap/pkg/hash/djb2"
	"github.com/scottcagno/hashmap/pkg/hash/xxhash"
)

func TestLookup(t *testing.T) {
	fn, err := Lookup("")
	require.NoError(t, err)
	assert.Equal(t, djb2.Sum32("Frodo"), fn("Frodo"))

	fn, err = Lookup(DJB2)
	require.NoError(t, err)
	assert.Equal(t, djb2.Sum32("Frodo"), fn("Frodo"))

	fn, err = Lookup(XXHash)
	require.NoError(t, err)
	assert.Equal(t, xxhash.Sum32("Frodo"), fn("Frodo"))
}

func TestLookupUnknown(t *testing.T) {
	fn, err := Lookup("murmur3")
	require.Error(t, err)
	assert.Nil(t, fn)
	assert.True(t, errors.Is(err, ErrUnknownHash))
	assert.Contains(t, err.Error(), "murmur3")
}

func TestNamesResolve(t *testing.T) {
	for _, name := range Names() {
		_, err := Lookup(name)
		require.NoError(t, err, name)
	}
}
