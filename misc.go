package calldata

import (
	"unsafe"
)

// Zero-initialized arrays for equality comparisons.
var (
	ZeroAddress Address
	ZeroWord    Word
)

/*
Reinterprets a byte slice as a string, saving an allocation. The bytes must not
be modified afterwards.
*/
func bytesToMutableString(input []byte) string {
	if len(input) == 0 {
		return ""
	}
	return unsafe.String(&input[0], len(input))
}

/*
Returns a byte slice backed by the provided string. Mutations are reflected in
the source string, unless it's backed by constant storage, in which case they
trigger a segfault. Should be safe as long as the bytes are treated as
read-only.
*/
func stringToBytesUnsafe(str string) []byte {
	if len(str) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(str), len(str))
}
