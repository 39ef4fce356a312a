package calldata

/*
Standard ERC-20 token interface (EIP-20). Usable with any ERC-20 contract
without supplying an ABI file. Selectors:

	name()                                  0x06fdde03
	symbol()                                0x95d89b41
	decimals()                              0x313ce567
	totalSupply()                           0x18160ddd
	balanceOf(address)                      0x70a08231
	allowance(address,address)              0xdd62ed3e
	transfer(address,uint256)               0xa9059cbb
	approve(address,uint256)                0x095ea7b3
	transferFrom(address,address,uint256)   0x23b872dd
*/
var Erc20Abi = MustParseAbiJson(Erc20AbiJson)

// JSON source of "Erc20Abi". Events are included, but dropped while decoding.
const Erc20AbiJson = `[
	{"type": "function", "name": "name", "inputs": [], "outputs": [{"name": "", "type": "string"}], "stateMutability": "view"},
	{"type": "function", "name": "symbol", "inputs": [], "outputs": [{"name": "", "type": "string"}], "stateMutability": "view"},
	{"type": "function", "name": "decimals", "inputs": [], "outputs": [{"name": "", "type": "uint8"}], "stateMutability": "view"},
	{"type": "function", "name": "totalSupply", "inputs": [], "outputs": [{"name": "", "type": "uint256"}], "stateMutability": "view"},
	{"type": "function", "name": "balanceOf", "inputs": [{"name": "owner", "type": "address"}], "outputs": [{"name": "", "type": "uint256"}], "stateMutability": "view"},
	{"type": "function", "name": "allowance", "inputs": [{"name": "owner", "type": "address"}, {"name": "spender", "type": "address"}], "outputs": [{"name": "", "type": "uint256"}], "stateMutability": "view"},
	{"type": "function", "name": "transfer", "inputs": [{"name": "to", "type": "address"}, {"name": "value", "type": "uint256"}], "outputs": [{"name": "", "type": "bool"}], "stateMutability": "nonpayable"},
	{"type": "function", "name": "approve", "inputs": [{"name": "spender", "type": "address"}, {"name": "value", "type": "uint256"}], "outputs": [{"name": "", "type": "bool"}], "stateMutability": "nonpayable"},
	{"type": "function", "name": "transferFrom", "inputs": [{"name": "from", "type": "address"}, {"name": "to", "type": "address"}, {"name": "value", "type": "uint256"}], "outputs": [{"name": "", "type": "bool"}], "stateMutability": "nonpayable"},
	{"type": "event", "name": "Transfer", "anonymous": false, "inputs": [{"indexed": true, "name": "from", "type": "address"}, {"indexed": true, "name": "to", "type": "address"}, {"indexed": false, "name": "value", "type": "uint256"}]},
	{"type": "event", "name": "Approval", "anonymous": false, "inputs": [{"indexed": true, "name": "owner", "type": "address"}, {"indexed": true, "name": "spender", "type": "address"}, {"indexed": false, "name": "value", "type": "uint256"}]}
]`

// Returns a built-in ABI definition by identifier. Currently only "erc20".
func BuiltinAbi(id string) (Abi, bool) {
	switch id {
	case "erc20":
		return Erc20Abi, true
	default:
		return nil, false
	}
}

// JSON source of a built-in ABI definition. See "BuiltinAbi".
func BuiltinAbiJson(id string) (string, bool) {
	switch id {
	case "erc20":
		return Erc20AbiJson, true
	default:
		return "", false
	}
}

// Identifiers accepted by "BuiltinAbi".
func BuiltinAbiIds() []string {
	return []string{"erc20"}
}
