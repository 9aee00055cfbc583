// Package nbt decodes the Named Binary Tag format into an in-memory tree.
//
// NBT serializes a single named, typed, arbitrarily nested value: scalars,
// byte arrays, UTF-8 strings, homogeneous lists and name-keyed compounds.
// Every multi-byte integer on the wire is big-endian.
//
// Decode reads a gzip-compressed stream, DecodeUncompressed a raw one; both
// return the root NamedTag or the first error encountered. Decoding is
// all-or-nothing: no partial tree is ever returned.
package nbt
