/*
Library for encoding Ethereum contract calls from JSON ABI definitions. Turns a
function name and a list of typed arguments into the calldata payload that goes
into the "data" field of a transaction or an "eth_call" message.

Used at ShanzhaiCity / Purelab. Visit https://shanzhaicity.com to learn about
what we're doing.

Features:

	* loading of JSON ABI definitions from files, readers, or strings

	* canonical function signatures and 4-byte selectors

	* calldata encoding for "address" and "uint256" arguments

	* typed errors for every failure

	* built-in ERC-20 definition

	* optional CLI tool for encoding calls and outputting ABI definitions as Go
	  code: "github.com/purelabio/calldata/cmd/calldata"

Types

Arguments are "Value"s. The interface is sealed: the only implementations are
"Address" (20 bytes) and "Uint256" (32 bytes, big-endian). Both are plain byte
arrays with constructors that validate the input length:

	to, err := calldata.ParseAddress("0x30E7d7FfF85C8d0E775140b1aD93C230D5595207")
	amount := calldata.Uint256FromUint64(20000000000)

For unknown input, "ParseValue" takes an ABI type name and a textual value, and
"ValueFromBytes" takes an "AbiKind" and raw big-endian bytes. Input longer than
the kind's size fails with "ErrOversizedInput"; shorter input is left-padded
with zeros.

Unlike some other Ethereum libraries, zero-initialized arrays are not special:
the zero address encodes as "0x0000000000000000000000000000000000000000".

Loading

Load an ABI definition from a file:

	abi, err := calldata.LoadAbiFile("token.json")

Or embed it into the program. Both "ParseAbiJson" and "DecodeAbi" accept the
same input; "MustParseAbiJson" panics on failure and is meant for package-level
variables:

	var TokenAbi = calldata.MustParseAbiJson(TokenAbiJson)

The loader keeps only function entries, skipping constructors, events, and
other entry kinds. Problems inside an individual function (for example, a
parameter without a type) are recorded and reported when that function is
encoded, so one bad entry doesn't prevent the use of the others.

Encoding

	input, err := calldata.EncodeCall(abi, "transfer", to, amount)

The output consists of the 4-byte selector of the canonical signature, such as
"transfer(address,uint256)", followed by one 32-byte word per argument. When
several functions share a name, the first one in definition order is used.

Arguments must match the declared parameter types positionally. Passing fewer
arguments than declared is allowed; the signature then covers only the supplied
prefix. Use "EncodeCallStrict" to require an exact match.

For repeated calls, find the function once:

	fun, err := abi.FindFunction("transfer")
	input, err := fun.Marshal(to, amount)

Errors

All errors carry a stack trace ("github.com/pkg/errors") and wrap one of the
following types, which can be detected with "errors.As":

	ErrResourceUnavailable  the ABI file couldn't be opened or read
	ErrMalformedDescription the ABI JSON doesn't describe what's needed
	ErrFunctionNotFound     no function with the given name
	ErrTypeMismatch         argument kind doesn't match the declared type
	ErrArityMismatch        argument count doesn't match (strict mode only)
	ErrOversizedInput       raw bytes too long for the value kind

Concurrency

A loaded "Abi" is never mutated by encoding and may be shared between
goroutines without synchronization.

Code Generation

To avoid reading files at runtime, generate a Go file with the ABI definition:

	//go:generate calldata gen --abi token.json --out gen_abi.go --name Token

This creates the following declarations (values elided for brevity):

	var TokenAbi calldata.Abi
	const TokenAbiJson string

TODO

Support more ABI types, starting with "bool", "bytes32", and other "uintN".
*/
package calldata
