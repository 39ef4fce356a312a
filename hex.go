package calldata

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

/*
Similar to "hex.Encode" from "encoding/hex". Writes a hex-encoded string
representing the input into the output buffer, prepending "0x". Requires the
output size to be exactly "HexEncodedLen(len(input))".
*/
func HexEncodeTo(output []byte, input []byte) error {
	if HexEncodedLen(len(input)) != len(output) {
		return errors.Errorf("hex-encoded output has %d bytes, have space for %d",
			HexEncodedLen(len(input)), len(output))
	}
	output[0] = '0'
	output[1] = 'x'
	hex.Encode(output[2:], input)
	return nil
}

// Version of "HexEncodeTo" that always allocates the output.
func HexEncode(input []byte) []byte {
	out := make([]byte, HexEncodedLen(len(input)))
	_ = HexEncodeTo(out, input)
	return out
}

/*
Similar to "hex.Decode" from "encoding/hex". Hex-decodes the input, dropping the
mandatory "0x" or "0X" prefix, and writes it to the output. Requires the output
size to be exactly half the digit count. Digits may be in either case.

Empty input is ok only when the output is empty too. The output is left
unchanged on error.
*/
func HexDecodeTo(output []byte, input []byte) error {
	raw, err := drop0x(input)
	if err != nil {
		return err
	}
	if len(raw)%2 != 0 {
		return errors.Errorf("malformed hex input %s: odd number of digits", input)
	}
	if len(raw)/2 != len(output) {
		return errors.Errorf("hex input %s has %d bytes, want %d",
			input, len(raw)/2, len(output))
	}

	buf := make([]byte, len(output))
	_, err = hex.Decode(buf, raw)
	if err != nil {
		return errors.Wrapf(err, "malformed hex input %s", input)
	}
	copy(output, buf)
	return nil
}

// Version of "HexDecodeTo" that always allocates the output.
func HexDecode(input []byte) ([]byte, error) {
	raw, err := drop0x(input)
	if err != nil {
		return nil, err
	}
	output := make([]byte, len(raw)/2)
	err = HexDecodeTo(output, input)
	if err != nil {
		return nil, err
	}
	return output, nil
}

// Version of "HexDecode" that accepts a string and panics on error. Convenient
// for initializing global variables.
func MustHexParse(input string) []byte {
	output, err := HexDecode(stringToBytesUnsafe(input))
	if err != nil {
		panic(err)
	}
	return output
}

func drop0x(input []byte) ([]byte, error) {
	if len(input) == 0 {
		return nil, nil
	}
	if len(input) >= 2 && input[0] == '0' && (input[1] == 'x' || input[1] == 'X') {
		return input[2:], nil
	}
	return input, errors.Errorf("malformed input %s: missing 0x prefix", input)
}

/*
Similar to "hex.EncodedLen" from "encoding/hex". Takes an unencoded byte count
and returns how many bytes are needed to hex-encode it with the "0x" prefix.
Namely, it returns "(len * 2) + 2".
*/
func HexEncodedLen(len int) int {
	return (len * 2) + 2
}

func hexEncodeQuoted(input []byte) []byte {
	out := make([]byte, HexEncodedLen(len(input))+2)
	out[0] = '"'
	_ = HexEncodeTo(out[1:len(out)-1], input)
	out[len(out)-1] = '"'
	return out
}
