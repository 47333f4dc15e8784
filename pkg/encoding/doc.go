// Package encoding defines the structured-data interface that axolotl value types
// write themselves to and read themselves from.
//
// A value type implements Marshaler and Unmarshaler once; the format backends
// (cbor, yaml, json subpackages) adapt a concrete wire format to Encoder and
// Decoder. Only two shapes are needed: string scalars and ordered sequences of
// floating-point scalars. Sequence decoders expose the declared element count
// as a size hint when the format carries one, and always allow the reader to
// detect that elements remain.
package encoding
