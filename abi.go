package calldata

/*
See https://docs.soliditylang.org/en/latest/abi-spec.html
*/

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"
)

/*
Abi represents the function definitions of a contract, in declaration order.
It's decoded from a JSON ABI definition, as produced by a Solidity compiler:
an array of objects, each with a "name" string and an "inputs" array of objects
with a "type" string.

Only function entries are kept. Constructors, events, errors, fallback and
receive entries are dropped while decoding, since they can't be called by name.

Duplicate names are kept as-is; lookups return the first match.
*/
type Abi []AbiFunction

/*
^^^
Decoding is lenient below the top level. A parameter without a string "type",
or an "inputs" field that isn't an array, doesn't fail the whole document: it's
recorded in the ".Malformed" field and reported only if an encoder actually
reaches it. Other functions in the same document remain usable.
*/

/*
Reads and decodes a JSON ABI definition. Read failures are reported as
"ErrResourceUnavailable"; decoding failures as "ErrMalformedDescription".
*/
func ReadAbi(src io.Reader) (Abi, error) {
	return readAbi("", src)
}

/*
Loads a JSON ABI definition from a file. Failure to open or read the file is
reported as "ErrResourceUnavailable".
*/
func LoadAbiFile(path string) (Abi, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(ErrResourceUnavailable{Path: path, Cause: err})
	}
	defer file.Close()
	return readAbi(path, file)
}

func readAbi(path string, src io.Reader) (Abi, error) {
	input, err := io.ReadAll(src)
	if err != nil {
		return nil, errors.WithStack(ErrResourceUnavailable{Path: path, Cause: err})
	}
	return DecodeAbi(input)
}

// Decodes a JSON ABI definition. See "Abi" for details.
func DecodeAbi(input []byte) (Abi, error) {
	var abi Abi
	err := abi.UnmarshalJSON(input)
	if err != nil {
		return nil, err
	}
	return abi, nil
}

// Same as "DecodeAbi", but for strings.
func ParseAbiJson(input string) (Abi, error) {
	return DecodeAbi(stringToBytesUnsafe(input))
}

/*
Parses an ABI definition. Panics on failure. Convenient for initializing global
variables on startup:

	var TokenAbi = calldata.MustParseAbiJson(`[{"name": "transfer", "type": "function", "inputs": [...]}]`)
*/
func MustParseAbiJson(input string) Abi {
	abi, err := ParseAbiJson(input)
	if err != nil {
		panic(err)
	}
	return abi
}

// Attempts to find the function by name. Boolean indicates success or failure.
func (self Abi) MaybeFunction(name string) (AbiFunction, bool) {
	for _, entry := range self {
		if entry.Name == name {
			return entry, true
		}
	}
	return AbiFunction{}, false
}

// Finds the function by name. Panics if not found.
func (self Abi) Function(name string) AbiFunction {
	out, err := self.FindFunction(name)
	if err != nil {
		panic(err)
	}
	return out
}

// Finds the function by name. Fails with "ErrFunctionNotFound".
func (self Abi) FindFunction(name string) (AbiFunction, error) {
	out, ok := self.MaybeFunction(name)
	if !ok {
		return out, errors.WithStack(ErrFunctionNotFound{Name: name})
	}
	return out, nil
}

/*
Implements "json.Unmarshaler". The input must be a JSON array. Entries that
aren't objects, aren't functions, or don't have a string "name" are skipped.
*/
func (self *Abi) UnmarshalJSON(input []byte) error {
	var chunks []json.RawMessage

	err := json.Unmarshal(input, &chunks)
	if err != nil {
		return errors.WithStack(ErrMalformedDescription{Position: -1, Reason: err.Error()})
	}

	out := make(Abi, 0, len(chunks))
	for _, chunk := range chunks {
		entry, ok := unmarshalAbiEntry(chunk)
		if ok {
			out = append(out, entry)
		}
	}
	*self = out
	return nil
}

func unmarshalAbiEntry(input []byte) (AbiFunction, bool) {
	var tag struct {
		Type json.RawMessage
		Name json.RawMessage
	}

	if isJsonNull(input) || json.Unmarshal(input, &tag) != nil {
		return AbiFunction{}, false
	}

	typ, ok := looseString(tag.Type)
	if ok && typ != "function" && typ != "" {
		return AbiFunction{}, false
	}

	_, ok = looseString(tag.Name)
	if !ok {
		return AbiFunction{}, false
	}

	var out AbiFunction
	err := out.UnmarshalJSON(input)
	return out, err == nil
}

/*
Represents a contract function. Usually obtained via "Abi.Function()" or
"Abi.FindFunction()".
*/
type AbiFunction struct {
	Type            string     `json:"type"` // "function" | ""
	Name            string     `json:"name"`
	Inputs          []AbiParam `json:"inputs"`
	Outputs         []AbiParam `json:"outputs,omitempty"`
	StateMutability string     `json:"stateMutability,omitempty"`

	// Selector of the full declared signature. Zero when ".Malformed" is set
	// or any input is malformed.
	Selector [4]byte `json:"-"`

	// Non-empty when "inputs" was present but not an array.
	Malformed string `json:"-"`
}

/*
Implements "json.Unmarshaler". In addition to parsing the JSON structure, this
precomputes the function's ".Selector". Fields of the wrong JSON type are left
empty rather than failing; see "Abi".
*/
func (self *AbiFunction) UnmarshalJSON(input []byte) error {
	var plain struct {
		Type            json.RawMessage
		Name            json.RawMessage
		Inputs          json.RawMessage
		Outputs         json.RawMessage
		StateMutability json.RawMessage
	}

	err := json.Unmarshal(input, &plain)
	if err != nil {
		return errors.WithStack(err)
	}

	typ, _ := looseString(plain.Type)
	name, _ := looseString(plain.Name)
	mutability, _ := looseString(plain.StateMutability)
	inputs, malformed := unmarshalAbiParams(plain.Inputs)
	outputs, _ := unmarshalAbiParams(plain.Outputs)

	*self = AbiFunction{
		Type:            typ,
		Name:            name,
		Inputs:          inputs,
		Outputs:         outputs,
		StateMutability: mutability,
		Malformed:       malformed,
	}

	sig, err := self.Signature()
	if err == nil {
		self.Selector = SignatureSelector(sig)
	}
	return nil
}

// Declared input types in order. Malformed params appear as "".
func (self AbiFunction) InputTypes() []string {
	out := make([]string, len(self.Inputs))
	for i, param := range self.Inputs {
		out[i] = param.Type
	}
	return out
}

/*
Canonical signature of the full declared input list, such as
"transfer(address,uint256)". Fails with "ErrMalformedDescription" if any input
is malformed.
*/
func (self AbiFunction) Signature() (string, error) {
	if self.Malformed != "" {
		return "", errors.WithStack(ErrMalformedDescription{
			Function: self.Name,
			Position: -1,
			Reason:   self.Malformed,
		})
	}
	for i, param := range self.Inputs {
		if param.Malformed != "" {
			return "", errors.WithStack(ErrMalformedDescription{
				Function: self.Name,
				Position: i,
				Reason:   param.Malformed,
			})
		}
	}
	return Signature(self.Name, self.InputTypes()), nil
}

/*
Represents a function parameter or return value. Part of an ABI definition.
Only ".Type" participates in encoding.
*/
type AbiParam struct {
	Name string `json:"name"`
	Type string `json:"type"`

	// Non-empty when the JSON param wasn't an object or had no string "type".
	Malformed string `json:"-"`
}

// Implements "json.Unmarshaler". Never fails; see ".Malformed".
func (self *AbiParam) UnmarshalJSON(input []byte) error {
	var plain struct {
		Name json.RawMessage
		Type json.RawMessage
	}

	if isJsonNull(input) || json.Unmarshal(input, &plain) != nil {
		*self = AbiParam{Malformed: `parameter is not an object`}
		return nil
	}

	name, _ := looseString(plain.Name)
	typ, ok := looseString(plain.Type)
	*self = AbiParam{Name: name, Type: typ}
	if !ok {
		self.Malformed = `"type" is missing or not a string`
	}
	return nil
}

func unmarshalAbiParams(input json.RawMessage) ([]AbiParam, string) {
	if len(input) == 0 || isJsonNull(input) {
		return nil, ""
	}
	var out []AbiParam
	err := json.Unmarshal(input, &out)
	if err != nil {
		return nil, `"inputs" is not an array`
	}
	return out, ""
}

func looseString(input json.RawMessage) (string, bool) {
	if len(input) == 0 || isJsonNull(input) {
		return "", false
	}
	var out string
	err := json.Unmarshal(input, &out)
	return out, err == nil
}

func isJsonNull(input []byte) bool {
	return bytes.Equal(bytes.TrimSpace(input), null)
}

var null = []byte(`null`)
