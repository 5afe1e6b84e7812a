// Package mask provides operations to extract and inspect bits of a byte.
//
// All byte indices must be 1-indexed, and ranges must be inclusive.

package mask

// A byteIndex provides compile-time safety when indexing into a byte.
type byteIndex byte

const (
	I1 byteIndex = iota + 1
	I2
	I3
	I4
	I5
	I6
	I7
	I8
)

// https://pkg.go.dev/golang.org/x/text/internal/gen/bitfield
// https://cs.opensource.google/go/x/text/+/refs/tags/v0.18.0:internal/gen/bitfield/bitfield_test.go;l=16

// Last extracts the last n bits of b.
func Last(b byte, n byteIndex) byte {
	// https://stackoverflow.com/a/15255834
	return b & ((1 << n) - 1)
}

// IsSet reports whether the bit at pos is 1.
func IsSet(b byte, pos byteIndex) bool {
	return b&(1<<(8-pos)) != 0
}
