package calldata

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/sha3"
)

// Size of a function selector in bytes.
const SelectorLen = 4

/*
Encodes a call of the named function: the 4-byte selector followed by one
32-byte word per argument, in argument order. The result is the transaction
payload, i.e. the "data" field of a transaction or "eth_call" message.

Steps, each terminal on failure:

	* find the first function with this name ("ErrFunctionNotFound")

	* check each argument against the declared parameter at the same position;
	  a missing or malformed declared parameter is "ErrMalformedDescription",
	  a different type is "ErrTypeMismatch"; scanning stops at the first failure

	* build the canonical signature from the declared types of the first
	  len(args) parameters, and take the first 4 bytes of its Keccak-256 digest

	* append the argument words

The output is always exactly 4 + 32*len(args) bytes.

Passing fewer arguments than declared is not an error: the signature only
covers the parameters actually supplied, and the resulting selector addresses a
different function than the full declaration. Use "EncodeCallStrict" to reject
such calls.

Safe for concurrent use; the ABI is only read.
*/
func EncodeCall(abi Abi, name string, args ...Value) ([]byte, error) {
	fun, err := abi.FindFunction(name)
	if err != nil {
		return nil, err
	}
	return fun.Marshal(args...)
}

/*
Same as "EncodeCall", but fails with "ErrArityMismatch" unless the argument
count equals the declared parameter count. The count is checked before types.
*/
func EncodeCallStrict(abi Abi, name string, args ...Value) ([]byte, error) {
	fun, err := abi.FindFunction(name)
	if err != nil {
		return nil, err
	}
	return fun.MarshalStrict(args...)
}

/*
ABI-encodes the arguments and prepends the selector. See "EncodeCall" for the
rules; this skips the lookup step.
*/
func (self AbiFunction) Marshal(args ...Value) ([]byte, error) {
	types, err := self.checkArgs(args)
	if err != nil {
		return nil, err
	}
	selector := SignatureSelector(Signature(self.Name, types))
	return appendWords(selector[:], args), nil
}

/*
Same as "Marshal", but fails with "ErrArityMismatch" unless the argument count
equals the declared parameter count.
*/
func (self AbiFunction) MarshalStrict(args ...Value) ([]byte, error) {
	if self.Malformed != "" {
		return nil, errors.WithStack(ErrMalformedDescription{
			Function: self.Name,
			Position: -1,
			Reason:   self.Malformed,
		})
	}
	if len(args) != len(self.Inputs) {
		return nil, errors.WithStack(ErrArityMismatch{
			Function: self.Name,
			Expected: len(self.Inputs),
			Found:    len(args),
		})
	}
	return self.Marshal(args...)
}

/*
Validates the arguments positionally against the declared inputs and returns
the declared type names at the validated positions.
*/
func (self AbiFunction) checkArgs(args []Value) ([]string, error) {
	types := make([]string, len(args))

	for i, arg := range args {
		if self.Malformed != "" {
			return nil, errors.WithStack(ErrMalformedDescription{
				Function: self.Name,
				Position: i,
				Reason:   self.Malformed,
			})
		}

		if i >= len(self.Inputs) {
			return nil, errors.WithStack(ErrMalformedDescription{
				Function: self.Name,
				Position: i,
				Reason:   `parameter is not declared`,
			})
		}

		param := self.Inputs[i]
		if param.Malformed != "" {
			return nil, errors.WithStack(ErrMalformedDescription{
				Function: self.Name,
				Position: i,
				Reason:   param.Malformed,
			})
		}

		if arg == nil {
			return nil, errors.Errorf(`argument %v of function %v is nil`, i, self.Name)
		}

		if param.Type != arg.AbiType() {
			return nil, errors.WithStack(ErrTypeMismatch{
				Function: self.Name,
				Expected: param.Type,
				Found:    arg.AbiType(),
				Position: i,
			})
		}

		types[i] = param.Type
	}

	return types, nil
}

func appendWords(selector []byte, args []Value) []byte {
	out := make([]byte, 0, len(selector)+len(args)*len(Word{}))
	out = append(out, selector...)
	for _, arg := range args {
		word := arg.Word()
		out = append(out, word[:]...)
	}
	return out
}

/*
Builds a canonical signature such as "transfer(address,uint256)": the name,
followed by the comma-separated types in parentheses, without whitespace.
*/
func Signature(name string, types []string) string {
	var buf []byte

	buf = append(buf, name...)
	buf = append(buf, '(')
	for i, typ := range types {
		buf = append(buf, typ...)
		if i < len(types)-1 {
			buf = append(buf, ',')
		}
	}
	buf = append(buf, ')')

	return bytesToMutableString(buf)
}

/*
Computes a function selector: the first 4 bytes of the Keccak-256 digest of the
signature, most significant byte first.
*/
func SignatureSelector(signature string) [SelectorLen]byte {
	sum := Keccak256(stringToBytesUnsafe(signature))
	var out [SelectorLen]byte
	copy(out[:], sum[:SelectorLen])
	return out
}

/*
Computes the Keccak-256 digest of the concatenated inputs. This is the original
Keccak padding used by Ethereum, not the standardized SHA3-256, which produces
different digests.
*/
func Keccak256(inputs ...[]byte) Word {
	hash := sha3.NewLegacyKeccak256()
	for _, input := range inputs {
		hash.Write(input)
	}
	var out Word
	hash.Sum(out[:0])
	return out
}
