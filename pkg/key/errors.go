package key

// BadNamespacedKeyError is returned when text has no separator between namespace and key
type BadNamespacedKeyError struct{}

func (BadNamespacedKeyError) Error() string {
	return "Bad Namespaced Key"
}

// ErrBadNamespacedKey is the value returned by Parse and ParseRef
var ErrBadNamespacedKey error = BadNamespacedKeyError{}
