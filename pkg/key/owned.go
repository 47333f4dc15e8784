package key

var (
	_ NamespacedKey = Owned{}
	_ NamespacedKey = (*Owned)(nil)
)

// Owned is a self-contained namespaced key. It is comparable and can be used as a map key.
//
// A *Owned is the borrowed-owned representation: it satisfies NamespacedKey
// through the value methods and must not be nil.
type Owned struct {
	namespace string
	key       string
}

// New creates an Owned key from its two segments. No validation is applied.
func New(namespace, key string) Owned {
	return Owned{namespace: namespace, key: key}
}

func (k Owned) Key() string { return k.key }

func (k Owned) Namespace() string { return k.namespace }

func (k Owned) Tuple() (namespace, key string) { return k.namespace, k.key }

func (k Owned) Into() (namespace, key string) { return k.namespace, k.key }

func (k Owned) Owned() Owned { return k }

func (k Owned) Hash() uint64 { return Hash(k.namespace, k.key) }

// String renders the key as "namespace:key"
func (k Owned) String() string { return render(k.namespace, k.key) }

// Equal reports whether other names the same entry
func (k Owned) Equal(other NamespacedKey) bool { return Equal(k, other) }

// IsZero reports whether both segments are empty
func (k Owned) IsZero() bool { return k.namespace == "" && k.key == "" }
