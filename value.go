package calldata

import (
	"github.com/pkg/errors"
)

/*
An argument for a contract call. The set of implementations is closed:

	Address
	Uint256

Every value occupies exactly one ABI word, so encoding a call never needs a
length prefix or an offset table.
*/
type Value interface {
	// Canonical type name as it appears in a function signature.
	AbiType() string

	// ABI encoding: one 32-byte big-endian word.
	Word() Word

	abiKind() AbiKind
}

var (
	_ Value = Address{}
	_ Value = Uint256{}
)

// Enumerates the supported argument types.
type AbiKind byte

const (
	AbiKindAddress AbiKind = iota + 1
	AbiKindUint256
)

// Implements "fmt.Stringer".
func (self AbiKind) String() string {
	switch self {
	case AbiKindAddress:
		return "AbiKindAddress"
	case AbiKindUint256:
		return "AbiKindUint256"
	default:
		return ""
	}
}

// Canonical type name, or "" for unknown kinds.
func (self AbiKind) AbiType() string {
	switch self {
	case AbiKindAddress:
		return "address"
	case AbiKindUint256:
		return "uint256"
	default:
		return ""
	}
}

/*
Fixed width of the value in bytes, before ABI padding: 20 for addresses, 32 for
uint256, 0 for unknown kinds.
*/
func (self AbiKind) Size() int {
	switch self {
	case AbiKindAddress:
		return len(Address{})
	case AbiKindUint256:
		return len(Uint256{})
	default:
		return 0
	}
}

// Inverse of "AbiKind.AbiType". Fails for types this package can't encode.
func ParseAbiKind(typeName string) (AbiKind, error) {
	switch typeName {
	case "address":
		return AbiKindAddress, nil
	case "uint256":
		return AbiKindUint256, nil
	default:
		return 0, errors.Errorf(`unsupported ABI type %q`, typeName)
	}
}

/*
Builds a value of the given kind from a big-endian byte slice, left-padding it
with zeros to the kind's fixed width. Fails with "ErrOversizedInput" when the
slice is wider than that.
*/
func ValueFromBytes(kind AbiKind, input []byte) (Value, error) {
	switch kind {
	case AbiKindAddress:
		return AddressFromBytes(input)
	case AbiKindUint256:
		return Uint256FromBytes(input)
	default:
		return nil, errors.Errorf(`unsupported ABI kind %d`, kind)
	}
}

/*
Parses the text form of a value of the given type. Addresses must be
"0x"-prefixed hex; see "ParseUint256" for numbers.
*/
func ParseValue(typeName string, input string) (Value, error) {
	kind, err := ParseAbiKind(typeName)
	if err != nil {
		return nil, err
	}

	switch kind {
	case AbiKindAddress:
		return ParseAddress(input)
	default:
		return ParseUint256(input)
	}
}

// Returns the kind of the value. Nil input returns 0.
func KindOf(val Value) AbiKind {
	if val == nil {
		return 0
	}
	return val.abiKind()
}
