/*
Package storekey defines an order-preserving binary encoding for use as keys in sorted
key/value stores.

Two families of entry points are provided. [Encode], [EncodeToBytes], [Decode], and
[DecodeBorrow] are convenience functions for encoding and decoding a single value using a
[Codec]. [Writer], [Reader], and [BorrowReader] are the lower-level streaming types those
functions build on, for callers encoding or decoding more than one value to the same
stream.

The encoding is not self-describing: the receiver must know the expected type, supplied as
a [Codec][T], to decode a value. This package provides Codecs for the builtin types, and
[cmd/storekeygen] generates Codec-backed Encode/Decode methods for user-defined structs and
sum types.

All Codecs provided by this package preserve the natural ordering of the underlying value:
comparing two encoded byte strings lexicographically gives the same answer as comparing the
two original values, with two documented exceptions: NaN floating-point orderings, which
are deterministic but not meaningful, and [MapOf], whose output follows Go's randomized map
iteration order.
*/
package storekey
