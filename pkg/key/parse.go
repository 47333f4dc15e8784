package key

import "strings"

// split returns the first two Separator-delimited segments of s.
// Anything after a second separator is dropped: "a:b:c" yields ("a", "b").
func split(s string) (namespace, key string, err error) {
	namespace, rest, found := strings.Cut(s, Separator)
	if !found {
		return "", "", ErrBadNamespacedKey
	}
	key, _, _ = strings.Cut(rest, Separator)
	return namespace, key, nil
}

// Parse parses "namespace:key" into an Owned key.
// Empty segments are accepted; whitespace and case are kept as given.
func Parse(s string) (Owned, error) {
	namespace, key, err := split(s)
	if err != nil {
		return Owned{}, err
	}
	return Owned{
		namespace: strings.Clone(namespace),
		key:       strings.Clone(key),
	}, nil
}

// MustParse is like Parse but panics on malformed input.
// Use it for keys known at compile time.
func MustParse(s string) Owned {
	k, err := Parse(s)
	if err != nil {
		panic(`key: Parse(` + s + `): ` + err.Error())
	}
	return k
}

// ParseRef parses s into a Ref whose segments share s's memory.
func ParseRef(s string) (Ref, error) {
	namespace, key, err := split(s)
	if err != nil {
		return Ref{}, err
	}
	return Ref{namespace: namespace, key: key}, nil
}
