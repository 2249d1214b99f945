// Package counter implements a persistent 256-bit counter contract with a
// thin pass-through to an external ERC20 token contract.
//
// The contract owns exactly two storage slots: an unsigned 256-bit number
// and the address of a token contract. Every public operation runs as one
// invocation: state is loaded from the injected Store at entry, the
// operation mutates an in-memory State, and dirty slots are committed at
// exit. An invocation that fails commits nothing.
//
// # Basic Usage
//
//	store := counter.NewMemoryStore()
//	c := counter.New(
//	    counter.WithStore(store),
//	    counter.WithCaller(rpcCaller),
//	)
//
//	_ = c.Increment(ctx)
//	_ = c.AddNumber(ctx, uint256.NewInt(3))
//	n, _ := c.Number(ctx) // 4
//
//	_ = c.SetAddress(ctx, tokenAddr)
//	bal, _ := c.BalanceOf(ctx, owner)
//
// # Token Delegation
//
// BalanceOf and Transfer build ERC20 calls against the stored token address
// and hand them to a Caller. balanceOf is issued as a STATICCALL, transfer
// as a regular CALL. Remote failures never abort the invocation: BalanceOf
// reports 0 and Transfer reports false. The Gateway exposes the underlying
// outcomes, including the failure cause, for callers that need to tell the
// cases apart.
//
// # Arithmetic
//
// All arithmetic is performed on uint256.Int. By default results wrap
// modulo 2^256; WithOverflowPolicy(AbortOnOverflow) makes overflowing
// operations fail with ErrOverflow instead, leaving state untouched.
//
// # ABI Dispatch
//
// Dispatcher exposes the contract through Solidity ABI calldata, the way an
// EVM host reaches it: the 4-byte selector picks the method, arguments are
// ABI-decoded, and return values are ABI-encoded. Only addFromMsgValue
// accepts attached value.
package counter
