package key

import "strings"

var _ NamespacedKey = Ref{}

// Ref is a namespaced key over borrowed string data. Nothing is copied on construction.
type Ref struct {
	namespace string
	key       string
}

// NewRef creates a Ref over the given segments
func NewRef(namespace, key string) Ref {
	return Ref{namespace: namespace, key: key}
}

func (r Ref) Key() string { return r.key }

func (r Ref) Namespace() string { return r.namespace }

func (r Ref) Tuple() (namespace, key string) { return r.namespace, r.key }

// Into copies both segments so the result no longer references the source buffer.
func (r Ref) Into() (namespace, key string) {
	return strings.Clone(r.namespace), strings.Clone(r.key)
}

func (r Ref) Owned() Owned {
	namespace, key := r.Into()
	return Owned{namespace: namespace, key: key}
}

func (r Ref) Hash() uint64 { return Hash(r.namespace, r.key) }

func (r Ref) String() string { return render(r.namespace, r.key) }

func (r Ref) Equal(other NamespacedKey) bool { return Equal(r, other) }
