// Package key implements namespaced keys: identifiers of the form
// "namespace:key" used to name registry entries across plugin boundaries.
//
// Three representations satisfy NamespacedKey:
//
//   - Owned holds its own copies of both segments and may outlive any source text.
//   - *Owned (the borrowed-owned form) points at an Owned held elsewhere; the
//     pointee must stay alive and unmodified while the pointer is in use.
//   - Ref holds substrings of a caller's buffer without copying them. It keeps
//     that buffer reachable, so store Ref values only for as long as the buffer
//     itself would be kept; call Owned to detach.
//
// NameSpaceKey is a closed union over the three, for call sites that accept
// any of them. Equality and hashing depend only on the (namespace, key) pair.
package key
