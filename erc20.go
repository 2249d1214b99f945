package counter

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ERC20ABIJSON is the subset of the ERC20 interface the contract calls.
const ERC20ABIJSON = `[
	{
		"name": "balanceOf",
		"type": "function",
		"stateMutability": "view",
		"inputs": [
			{"name": "account", "type": "address"}
		],
		"outputs": [
			{"name": "", "type": "uint256"}
		]
	},
	{
		"name": "transfer",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "recipient", "type": "address"},
			{"name": "value", "type": "uint256"}
		],
		"outputs": [
			{"name": "", "type": "bool"}
		]
	}
]`

// CounterABIJSON is the ABI the contract exports.
const CounterABIJSON = `[
	{
		"name": "number",
		"type": "function",
		"stateMutability": "view",
		"inputs": [],
		"outputs": [{"name": "", "type": "uint256"}]
	},
	{
		"name": "setNumber",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [{"name": "new_number", "type": "uint256"}],
		"outputs": []
	},
	{
		"name": "setAddress",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [{"name": "token", "type": "address"}],
		"outputs": []
	},
	{
		"name": "balanceOf",
		"type": "function",
		"stateMutability": "view",
		"inputs": [{"name": "owner", "type": "address"}],
		"outputs": [{"name": "", "type": "uint256"}]
	},
	{
		"name": "transfer",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [
			{"name": "recipient", "type": "address"},
			{"name": "amount", "type": "uint256"}
		],
		"outputs": [{"name": "", "type": "bool"}]
	},
	{
		"name": "mulNumber",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [{"name": "new_number", "type": "uint256"}],
		"outputs": []
	},
	{
		"name": "addNumber",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [{"name": "new_number", "type": "uint256"}],
		"outputs": []
	},
	{
		"name": "increment",
		"type": "function",
		"stateMutability": "nonpayable",
		"inputs": [],
		"outputs": []
	},
	{
		"name": "addFromMsgValue",
		"type": "function",
		"stateMutability": "payable",
		"inputs": [],
		"outputs": []
	}
]`

// Parsed ABIs.
var (
	ERC20ABI   = MustParseABI(ERC20ABIJSON)
	CounterABI = MustParseABI(CounterABIJSON)
)

// ParseABI parses a JSON ABI string into an abi.ABI.
func ParseABI(abiJSON string) (abi.ABI, error) {
	return abi.JSON(strings.NewReader(abiJSON))
}

// MustParseABI is like ParseABI but panics on error.
func MustParseABI(abiJSON string) abi.ABI {
	parsed, err := ParseABI(abiJSON)
	if err != nil {
		panic(err)
	}
	return parsed
}
