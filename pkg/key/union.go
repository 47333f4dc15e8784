package key

var _ NamespacedKey = NameSpaceKey{}

// Kind identifies which representation a NameSpaceKey holds
type Kind uint8

const (
	KindOwned Kind = iota
	KindRefOwned
	KindRef
)

func (k Kind) String() string {
	switch k {
	case KindOwned:
		return "owned"
	case KindRefOwned:
		return "ref_owned"
	case KindRef:
		return "ref"
	default:
		return "unknown"
	}
}

// NameSpaceKey holds exactly one key representation.
// The zero value is an Owned key with empty segments.
type NameSpaceKey struct {
	kind     Kind
	owned    Owned
	refOwned *Owned
	ref      Ref
}

func FromOwned(k Owned) NameSpaceKey {
	return NameSpaceKey{kind: KindOwned, owned: k}
}

// FromRefOwned wraps a pointer to an Owned key held elsewhere. k must not be nil.
func FromRefOwned(k *Owned) NameSpaceKey {
	return NameSpaceKey{kind: KindRefOwned, refOwned: k}
}

func FromRef(k Ref) NameSpaceKey {
	return NameSpaceKey{kind: KindRef, ref: k}
}

func (k NameSpaceKey) Kind() Kind { return k.kind }

func (k NameSpaceKey) Tuple() (namespace, key string) {
	switch k.kind {
	case KindRefOwned:
		return k.refOwned.Tuple()
	case KindRef:
		return k.ref.Tuple()
	default:
		return k.owned.Tuple()
	}
}

func (k NameSpaceKey) Into() (namespace, key string) {
	switch k.kind {
	case KindRefOwned:
		return k.refOwned.Into()
	case KindRef:
		return k.ref.Into()
	default:
		return k.owned.Into()
	}
}

func (k NameSpaceKey) Owned() Owned {
	switch k.kind {
	case KindRefOwned:
		return *k.refOwned
	case KindRef:
		return k.ref.Owned()
	default:
		return k.owned
	}
}

// ToOwned detaches the key from whatever it borrows.
func (k NameSpaceKey) ToOwned() NameSpaceKey {
	return FromOwned(k.Owned())
}

func (k NameSpaceKey) Key() string {
	_, key := k.Tuple()
	return key
}

func (k NameSpaceKey) Namespace() string {
	namespace, _ := k.Tuple()
	return namespace
}

func (k NameSpaceKey) Hash() uint64 { return Hash(k.Tuple()) }

func (k NameSpaceKey) String() string { return render(k.Tuple()) }

func (k NameSpaceKey) Equal(other NamespacedKey) bool { return Equal(k, other) }
