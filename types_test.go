package calldata

import (
	"bytes"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestValueFromBytesPadding(t *testing.T) {
	for _, kind := range []AbiKind{AbiKindAddress, AbiKindUint256} {
		for size := 0; size <= kind.Size(); size++ {
			input := bytes.Repeat([]byte{0xab}, size)

			val, err := ValueFromBytes(kind, input)
			require.NoError(t, err, "%v %v", kind, size)
			require.Equal(t, kind, KindOf(val))
			require.Equal(t, kind.AbiType(), val.AbiType())

			var expected Word
			copy(expected[len(expected)-size:], input)
			require.Equal(t, expected, val.Word(), "%v %v", kind, size)
		}
	}
}

func TestValueFromBytesOversized(t *testing.T) {
	cases := []struct {
		kind AbiKind
		size int
	}{
		{AbiKindAddress, 21},
		{AbiKindAddress, 32},
		{AbiKindUint256, 33},
		{AbiKindUint256, 64},
	}

	for _, tc := range cases {
		_, err := ValueFromBytes(tc.kind, make([]byte, tc.size))
		var oversized ErrOversizedInput
		require.ErrorAs(t, err, &oversized)
		require.Equal(t, ErrOversizedInput{Kind: tc.kind, Len: tc.size}, oversized)
	}

	_, err := ValueFromBytes(AbiKind(99), nil)
	require.Error(t, err)
}

func TestAddressWord(t *testing.T) {
	word := testAddrA.Word()
	require.Equal(t, make([]byte, 12), word[:12])
	require.Equal(t, testAddrA[:], word[12:])
	require.Equal(t, "address", testAddrA.AbiType())
}

func TestAddressText(t *testing.T) {
	require.Equal(t, "0x30e7d7fff85c8d0e775140b1ad93c230d5595207", testAddrA.String())

	upper, err := ParseAddress("0X30E7D7FFF85C8D0E775140B1AD93C230D5595207")
	require.NoError(t, err)
	require.Equal(t, testAddrA, upper)

	for _, input := range []string{
		"",
		"30e7d7fff85c8d0e775140b1ad93c230d5595207",
		"0x30e7d7fff85c8d0e775140b1ad93c230d55952",
		"0x30e7d7fff85c8d0e775140b1ad93c230d559520700",
		"0x30e7d7fff85c8d0e775140b1ad93c230d559520",
		"0xzze7d7fff85c8d0e775140b1ad93c230d5595207",
	} {
		_, err := ParseAddress(input)
		require.Error(t, err, input)
	}

	out, err := json.Marshal(ZeroAddress)
	require.NoError(t, err)
	require.Equal(t, `"0x0000000000000000000000000000000000000000"`, string(out))

	var decoded struct{ To Address }
	require.NoError(t, json.Unmarshal([]byte(`{"to": "0x30E7d7FfF85C8d0E775140b1aD93C230D5595207"}`), &decoded))
	require.Equal(t, testAddrA, decoded.To)
}

func TestUint256(t *testing.T) {
	num := Uint256FromUint64(20000000000)
	require.Equal(t, "uint256", num.AbiType())
	require.Equal(t, "20000000000", num.String())
	require.Equal(t, Word(num), num.Word())
	require.Equal(t, "0x00000000000000000000000000000000000000000000000000000004a817c800", num.Word().String())
	require.Equal(t, int64(20000000000), num.Big().Int64())
	require.Equal(t, uint64(20000000000), num.Int().Uint64())

	fromBytes, err := Uint256FromBytes([]byte{0x04, 0xa8, 0x17, 0xc8, 0x00})
	require.NoError(t, err)
	require.Equal(t, num, fromBytes)

	require.Equal(t, num, Uint256FromInt(uint256.NewInt(20000000000)))
}

func TestParseUint256(t *testing.T) {
	cases := map[string]uint64{
		"0":           0,
		"20000000000": 20000000000,
		"0x4a817c800": 20000000000,
		"0X4A817C800": 20000000000,
	}
	for input, expected := range cases {
		num, err := ParseUint256(input)
		require.NoError(t, err, input)
		require.Equal(t, Uint256FromUint64(expected), num, input)
	}

	max, err := ParseUint256("115792089237316195423570985008687907853269984665640564039457584007913129639935")
	require.NoError(t, err)
	require.Equal(t, Uint256(bytes.Repeat([]byte{0xff}, 32)), max)

	for _, input := range []string{
		"",
		"-1",
		"abc",
		"115792089237316195423570985008687907853269984665640564039457584007913129639936",
	} {
		_, err := ParseUint256(input)
		require.Error(t, err, input)
	}
}

func TestUint256FromBig(t *testing.T) {
	num, err := Uint256FromBig(big.NewInt(1))
	require.NoError(t, err)
	require.Equal(t, Uint256FromUint64(1), num)

	_, err = Uint256FromBig(big.NewInt(-1))
	require.Error(t, err)

	_, err = Uint256FromBig(nil)
	require.Error(t, err)

	tooBig := new(big.Int).Lsh(big.NewInt(1), 256)
	_, err = Uint256FromBig(tooBig)
	var oversized ErrOversizedInput
	require.ErrorAs(t, err, &oversized)
	require.Equal(t, 33, oversized.Len)
}

func TestUint256Text(t *testing.T) {
	out, err := json.Marshal(struct{ Value Uint256 }{Uint256FromUint64(42)})
	require.NoError(t, err)
	require.Equal(t, `{"Value":"42"}`, string(out))

	var decoded struct{ Value Uint256 }
	require.NoError(t, json.Unmarshal([]byte(`{"Value": "0x2a"}`), &decoded))
	require.Equal(t, Uint256FromUint64(42), decoded.Value)
}

func TestParseValue(t *testing.T) {
	val, err := ParseValue("address", "0x30E7d7FfF85C8d0E775140b1aD93C230D5595207")
	require.NoError(t, err)
	require.Equal(t, Value(testAddrA), val)

	val, err = ParseValue("uint256", "7")
	require.NoError(t, err)
	require.Equal(t, Value(Uint256FromUint64(7)), val)

	_, err = ParseValue("bool", "true")
	require.Error(t, err)
}

func TestAbiKind(t *testing.T) {
	require.Equal(t, "AbiKindAddress", AbiKindAddress.String())
	require.Equal(t, "AbiKindUint256", AbiKindUint256.String())
	require.Equal(t, 20, AbiKindAddress.Size())
	require.Equal(t, 32, AbiKindUint256.Size())
	require.Equal(t, 0, AbiKind(0).Size())
	require.Equal(t, "", AbiKind(0).AbiType())
	require.Equal(t, AbiKind(0), KindOf(nil))

	kind, err := ParseAbiKind("uint256")
	require.NoError(t, err)
	require.Equal(t, AbiKindUint256, kind)

	_, err = ParseAbiKind("uint")
	require.Error(t, err)
}

func TestHexBytes(t *testing.T) {
	input := MustParseHexBytes("0x70a08231")
	require.Equal(t, HexBytes{0x70, 0xa0, 0x82, 0x31}, input)
	require.Equal(t, "0x70a08231", input.String())

	empty, err := ParseHexBytes("")
	require.NoError(t, err)
	require.Empty(t, empty)
	require.Equal(t, "0x", empty.String())

	_, err = ParseHexBytes("0x123")
	require.Error(t, err)

	_, err = ParseHexBytes("70a08231")
	require.Error(t, err)

	out, err := json.Marshal(HexBytes{0xff})
	require.NoError(t, err)
	require.Equal(t, `"0xff"`, string(out))
}

func TestHexDecodeToLeavesOutputOnError(t *testing.T) {
	out := []byte{1, 2}
	err := HexDecodeTo(out, []byte("0xzzzz"))
	require.Error(t, err)
	require.Equal(t, []byte{1, 2}, out)
}

func TestWordText(t *testing.T) {
	word := MustParseWord("0x00000000000000000000000030e7d7fff85c8d0e775140b1ad93c230d5595207")
	require.Equal(t, testAddrA.Word(), word)

	_, err := ParseWord("0x00")
	require.Error(t, err)
}
