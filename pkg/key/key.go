package key

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Separator splits the namespace from the key
const Separator = ":"

// NamespacedKey is implemented by every key representation
type NamespacedKey interface {
	fmt.Stringer

	Key() string
	Namespace() string
	// Tuple returns the namespace and key as views of the underlying data.
	Tuple() (namespace, key string)
	// Into returns independent copies of the namespace and key.
	Into() (namespace, key string)

	// Owned returns a self-contained, comparable copy usable as a map key.
	Owned() Owned
	Hash() uint64
}

// Equal reports whether a and b name the same entry, regardless of representation.
func Equal(a, b NamespacedKey) bool {
	an, ak := a.Tuple()
	bn, bk := b.Tuple()
	return an == bn && ak == bk
}

// Hash returns the xxhash64 digest of the (namespace, key) pair.
// Segments are length-prefixed so that ("a:", "b") and ("a", ":b") differ.
func Hash(namespace, key string) uint64 {
	var length [8]byte
	d := xxhash.New()

	binary.LittleEndian.PutUint64(length[:], uint64(len(namespace)))
	_, _ = d.Write(length[:])
	_, _ = d.WriteString(namespace)

	binary.LittleEndian.PutUint64(length[:], uint64(len(key)))
	_, _ = d.Write(length[:])
	_, _ = d.WriteString(key)

	return d.Sum64()
}

func render(namespace, key string) string {
	return namespace + Separator + key
}
