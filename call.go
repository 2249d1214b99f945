package counter

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// CallKind selects how an outbound call is executed.
type CallKind uint8

const (
	// KindCall is a regular CALL, permitted to change the target's state.
	KindCall CallKind = iota

	// KindStaticCall is a STATICCALL, guaranteed not to change the target's state.
	KindStaticCall
)

func (k CallKind) String() string {
	switch k {
	case KindCall:
		return "CALL"
	case KindStaticCall:
		return "STATICCALL"
	default:
		return "UNKNOWN"
	}
}

// ReadOnly returns true if the call must not mutate the target.
func (k CallKind) ReadOnly() bool {
	return k == KindStaticCall
}

// CallRecord describes one outbound call to another contract.
// CallRecord is immutable once built.
type CallRecord struct {
	target common.Address
	method abi.Method
	args   []byte // ABI-encoded arguments, without selector
	kind   CallKind
}

// NewCallRecord packs args for method and builds a record against target.
func NewCallRecord(target common.Address, method abi.Method, kind CallKind, args ...any) (*CallRecord, error) {
	packed, err := method.Inputs.Pack(args...)
	if err != nil {
		return nil, &ArgumentError{Method: method.Name, Err: err}
	}
	return &CallRecord{
		target: target,
		method: method,
		args:   packed,
		kind:   kind,
	}, nil
}

// Target returns the called contract address.
func (c *CallRecord) Target() common.Address {
	return c.target
}

// Method returns the ABI method being called.
func (c *CallRecord) Method() abi.Method {
	return c.method
}

// Kind returns the call kind.
func (c *CallRecord) Kind() CallKind {
	return c.kind
}

// Selector returns the 4-byte function selector.
func (c *CallRecord) Selector() [4]byte {
	var sel [4]byte
	copy(sel[:], c.method.ID[:4])
	return sel
}

// Args returns the ABI-encoded arguments.
func (c *CallRecord) Args() []byte {
	return c.args
}

// Calldata returns the full call input: selector followed by arguments.
func (c *CallRecord) Calldata() []byte {
	data := make([]byte, 0, 4+len(c.args))
	data = append(data, c.method.ID[:4]...)
	return append(data, c.args...)
}

// Caller performs outbound calls on behalf of the contract.
//
// Call blocks until the target returns or fails. A returned error means the
// call did not succeed (unreachable target, revert, out of gas); the
// returned bytes are the target's raw return data otherwise.
type Caller interface {
	Call(ctx context.Context, call *CallRecord) ([]byte, error)
}

// CallerFunc adapts a function to the Caller interface.
type CallerFunc func(ctx context.Context, call *CallRecord) ([]byte, error)

// Call implements Caller.
func (f CallerFunc) Call(ctx context.Context, call *CallRecord) ([]byte, error) {
	return f(ctx, call)
}
