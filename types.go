package calldata

import (
	"encoding/binary"
	"math/big"

	"github.com/holiman/uint256"
	"github.com/pkg/errors"
)

// Version of "[]byte" that uses "0x"-prefixed hex encoding and decoding.
type HexBytes []byte

/*
Decodes the provided input. Zero-length input is ok. Otherwise, it must be
prefixed with "0x".
*/
func DecodeHexBytes(input []byte) (HexBytes, error) {
	var out HexBytes
	err := out.UnmarshalText(input)
	return out, err
}

/*
Decodes the provided string. Zero-length input is ok. Otherwise, it must be
prefixed with "0x".
*/
func ParseHexBytes(input string) (HexBytes, error) {
	return DecodeHexBytes(stringToBytesUnsafe(input))
}

/*
Decodes the provided string. Panics on error. Convenient for initializing global
variables and test fixtures.
*/
func MustParseHexBytes(input string) HexBytes {
	out, err := ParseHexBytes(input)
	if err != nil {
		panic(err)
	}
	return out
}

// Implements "encoding.Marshaler". Uses hex encoding prefixed with "0x".
func (self HexBytes) MarshalText() ([]byte, error) {
	return HexEncode([]byte(self)), nil
}

/*
Implements "encoding.Unmarshaler". Empty input is ok. Otherwise, it must be
prefixed with "0x".
*/
func (self *HexBytes) UnmarshalText(input []byte) error {
	out, err := HexDecode(input)
	if err != nil {
		return err
	}
	*self = HexBytes(out)
	return nil
}

/*
Implements "json.Marshaler". Always encodes as a quoted hex string with the
"0x" prefix; an empty value encodes as "0x".
*/
func (self HexBytes) MarshalJSON() ([]byte, error) {
	return hexEncodeQuoted(self), nil
}

// Implements "fmt.Stringer". Follows the same rules as "MarshalText".
func (self HexBytes) String() string {
	return bytesToMutableString(HexEncode([]byte(self)))
}

/*
Compact representation of an account address: a 160-bit unsigned integer.
Uses hex-encoding and hex-decoding with the mandatory "0x" prefix. Decoding
accepts mixed-case (checksummed) input; encoding is always lowercase.

Unlike the RPC-oriented types this grew out of, the zero address has no special
encoding rules: it's a perfectly valid call argument.
*/
type Address [20]byte

/*
Decodes the provided input, which must be "0x"-prefixed and contain exactly 40
hex digits.
*/
func DecodeAddress(input []byte) (Address, error) {
	var out Address
	err := out.UnmarshalText(input)
	return out, err
}

// Same as "DecodeAddress", but for strings.
func ParseAddress(input string) (Address, error) {
	return DecodeAddress(stringToBytesUnsafe(input))
}

/*
Same as "ParseAddress", but panics on error. Convenient for initializing global
variables.
*/
func MustParseAddress(input string) Address {
	out, err := ParseAddress(input)
	if err != nil {
		panic(err)
	}
	return out
}

/*
Builds an address from a big-endian byte slice no longer than 20 bytes,
left-padding it with zeros. Longer input fails with "ErrOversizedInput".
*/
func AddressFromBytes(input []byte) (Address, error) {
	var out Address
	err := copyLeftPadded(out[:], input, AbiKindAddress)
	return out, err
}

// Implements "encoding.Marshaler". Uses hex encoding prefixed with "0x".
func (self Address) MarshalText() ([]byte, error) {
	return HexEncode(self[:]), nil
}

// Implements "encoding.Unmarshaler". See "DecodeAddress".
func (self *Address) UnmarshalText(input []byte) error {
	var out Address
	err := HexDecodeTo(out[:], input)
	if err != nil {
		return errors.Wrapf(err, `failed to decode %q as address`, input)
	}
	*self = out
	return nil
}

// Implements "json.Marshaler". Encodes as a quoted hex string.
func (self Address) MarshalJSON() ([]byte, error) {
	return hexEncodeQuoted(self[:]), nil
}

// Implements "fmt.Stringer". Uses hex encoding prefixed with "0x".
func (self Address) String() string {
	return bytesToMutableString(HexEncode(self[:]))
}

// Implements "Value". Always "address".
func (self Address) AbiType() string { return AbiKindAddress.AbiType() }

// Implements "Value". Zero-padded on the left.
func (self Address) Word() Word {
	var out Word
	copy(out[len(out)-len(self):], self[:])
	return out
}

func (self Address) abiKind() AbiKind { return AbiKindAddress }

/*
A 256-bit unsigned integer stored as 32 big-endian bytes. This is already its
ABI encoding, so "Word" is a plain conversion.

Text encoding is decimal. Text decoding accepts decimal, or hex with the "0x"
prefix and no leading zeros; see "github.com/holiman/uint256".
*/
type Uint256 [32]byte

/*
Builds a value from a big-endian byte slice no longer than 32 bytes,
left-padding it with zeros. Longer input fails with "ErrOversizedInput".
*/
func Uint256FromBytes(input []byte) (Uint256, error) {
	var out Uint256
	err := copyLeftPadded(out[:], input, AbiKindUint256)
	return out, err
}

func Uint256FromUint64(num uint64) Uint256 {
	var out Uint256
	binary.BigEndian.PutUint64(out[len(out)-8:], num)
	return out
}

/*
Converts a "big.Int". Negative numbers are rejected; numbers wider than 256 bits
fail with "ErrOversizedInput".
*/
func Uint256FromBig(num *big.Int) (Uint256, error) {
	var out Uint256
	if num == nil {
		return out, errors.New(`can't convert nil *big.Int to uint256`)
	}
	if num.Sign() < 0 {
		return out, errors.Errorf(`can't convert negative number %v to uint256`, num)
	}
	if num.BitLen() > 256 {
		return out, errors.WithStack(ErrOversizedInput{
			Kind: AbiKindUint256,
			Len:  (num.BitLen() + 7) / 8,
		})
	}
	num.FillBytes(out[:])
	return out, nil
}

// Converts from the fixed-size representation used by "github.com/holiman/uint256".
func Uint256FromInt(num *uint256.Int) Uint256 {
	return Uint256(num.Bytes32())
}

/*
Parses decimal, or "0x"-prefixed hex without leading zeros. Fails on negative
numbers and numbers that overflow 256 bits.
*/
func ParseUint256(input string) (Uint256, error) {
	var out Uint256
	err := out.UnmarshalText(stringToBytesUnsafe(input))
	return out, err
}

// Same as "ParseUint256", but panics on error.
func MustParseUint256(input string) Uint256 {
	out, err := ParseUint256(input)
	if err != nil {
		panic(err)
	}
	return out
}

func (self Uint256) Int() *uint256.Int {
	return new(uint256.Int).SetBytes32(self[:])
}

func (self Uint256) Big() *big.Int {
	return new(big.Int).SetBytes(self[:])
}

// Implements "encoding.Marshaler". Uses decimal encoding.
func (self Uint256) MarshalText() ([]byte, error) {
	return []byte(self.Int().Dec()), nil
}

// Implements "encoding.Unmarshaler". See "ParseUint256".
func (self *Uint256) UnmarshalText(input []byte) error {
	var num uint256.Int
	err := num.UnmarshalText(input)
	if err != nil {
		return errors.Wrapf(err, `failed to decode %q as uint256`, input)
	}
	*self = Uint256FromInt(&num)
	return nil
}

// Implements "fmt.Stringer". Uses decimal encoding.
func (self Uint256) String() string {
	return self.Int().Dec()
}

// Implements "Value". Always "uint256".
func (self Uint256) AbiType() string { return AbiKindUint256.AbiType() }

// Implements "Value". The stored bytes, unchanged.
func (self Uint256) Word() Word { return Word(self) }

func (self Uint256) abiKind() AbiKind { return AbiKindUint256 }

/*
A Word is a single ABI slot: 32 bytes of arbitrary content. Every supported
argument type is padded to exactly this size when ABI-encoded. This size is also
used for Keccak-256 digests.

Uses the 0x-prefixed hex notation for encoding and decoding.
*/
type Word [32]byte

/*
Decodes the provided input, which must be "0x"-prefixed and contain exactly 64
hex digits.
*/
func DecodeWord(input []byte) (Word, error) {
	var out Word
	err := out.UnmarshalText(input)
	return out, err
}

// Same as "DecodeWord", but for strings.
func ParseWord(input string) (Word, error) {
	return DecodeWord(stringToBytesUnsafe(input))
}

/*
Same as "ParseWord", but panics on error. Convenient for initializing global
variables.
*/
func MustParseWord(input string) Word {
	out, err := ParseWord(input)
	if err != nil {
		panic(err)
	}
	return out
}

// Implements "encoding.Marshaler". Uses hex encoding prefixed with "0x".
func (self Word) MarshalText() ([]byte, error) {
	return HexEncode(self[:]), nil
}

// Implements "encoding.Unmarshaler". See "DecodeWord".
func (self *Word) UnmarshalText(input []byte) error {
	var out Word
	err := HexDecodeTo(out[:], input)
	if err != nil {
		return err
	}
	*self = out
	return nil
}

// Implements "json.Marshaler". Encodes as a quoted hex string.
func (self Word) MarshalJSON() ([]byte, error) {
	return hexEncodeQuoted(self[:]), nil
}

// Implements "fmt.Stringer". Uses hex encoding prefixed with "0x".
func (self Word) String() string {
	return bytesToMutableString(HexEncode(self[:]))
}

func copyLeftPadded(out []byte, input []byte, kind AbiKind) error {
	if len(input) > len(out) {
		return errors.WithStack(ErrOversizedInput{Kind: kind, Len: len(input)})
	}
	copy(out[len(out)-len(input):], input)
	return nil
}
