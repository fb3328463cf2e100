package hash

import (
	"github.com/pkg/errors"

	"github.com/scottcagno/hashmap/pkg/hash/djb2"
	"github.com/scottcagno/hashmap/pkg/hash/xxhash"
)

// Func is a type definition for what a hash function should look like
type Func func(key string) uint32

const (
	DJB2   = "djb2"
	XXHash = "xxhash"
)

var ErrUnknownHash = errors.New("hash: unknown hash function")

var funcs = map[string]Func{
	DJB2:   djb2.Sum32,
	XXHash: xxhash.Sum32,
}

// Lookup returns the hash function registered under name. An empty
// name selects djb2.
func Lookup(name string) (Func, error) {
	if name == "" {
		name = DJB2
	}
	fn, ok := funcs[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownHash, "%q", name)
	}
	return fn, nil
}

// Names returns the registered hash function names.
func Names() []string {
	return []string{DJB2, XXHash}
}
