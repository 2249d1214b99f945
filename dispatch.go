package counter

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/holiman/uint256"
)

// Dispatcher routes ABI calldata to a Contract.
//
// It owns the invocation boundary: selector lookup, argument decoding and
// the payable check all happen here, so a rejected invocation never reaches
// the contract and never touches its state.
type Dispatcher struct {
	contract *Contract
	abi      abi.ABI
}

// NewDispatcher creates a Dispatcher for contract using CounterABI.
func NewDispatcher(contract *Contract) *Dispatcher {
	return &Dispatcher{contract: contract, abi: CounterABI}
}

// Method resolves the ABI method for calldata's selector.
func (d *Dispatcher) Method(calldata []byte) (*abi.Method, error) {
	if len(calldata) < 4 {
		return nil, ErrShortCalldata
	}
	method, err := d.abi.MethodById(calldata[:4])
	if err != nil {
		var sel [4]byte
		copy(sel[:], calldata[:4])
		return nil, &SelectorError{Selector: sel}
	}
	return method, nil
}

// Dispatch decodes calldata, invokes the selected operation with msg as the
// invocation context, and returns the ABI-encoded result.
func (d *Dispatcher) Dispatch(ctx context.Context, msg Message, calldata []byte) ([]byte, error) {
	method, err := d.Method(calldata)
	if err != nil {
		return nil, err
	}

	if !method.IsPayable() && !msg.AttachedValue().IsZero() {
		return nil, fmt.Errorf("%w: %s", ErrNotPayable, method.RawName)
	}

	args, err := method.Inputs.Unpack(calldata[4:])
	if err != nil {
		return nil, &ArgumentError{Method: method.RawName, Err: err}
	}

	out, err := d.call(ctx, msg, method, args)
	if err != nil {
		return nil, err
	}
	return method.Outputs.Pack(out...)
}

func (d *Dispatcher) call(ctx context.Context, msg Message, method *abi.Method, args []any) ([]any, error) {
	c := d.contract

	switch method.RawName {
	case "number":
		n, err := c.Number(ctx)
		if err != nil {
			return nil, err
		}
		return []any{n.ToBig()}, nil

	case "setNumber", "mulNumber", "addNumber":
		v, err := toUint256(args[0])
		if err != nil {
			return nil, &ArgumentError{Method: method.RawName, Err: err}
		}
		return nil, d.arith(ctx, method.RawName, v)

	case "setAddress":
		token, err := toAddress(args[0])
		if err != nil {
			return nil, &ArgumentError{Method: method.RawName, Err: err}
		}
		return nil, c.SetAddress(ctx, token)

	case "balanceOf":
		owner, err := toAddress(args[0])
		if err != nil {
			return nil, &ArgumentError{Method: method.RawName, Err: err}
		}
		balance, err := c.BalanceOf(ctx, owner)
		if err != nil {
			return nil, err
		}
		return []any{balance.ToBig()}, nil

	case "transfer":
		recipient, err := toAddress(args[0])
		if err != nil {
			return nil, &ArgumentError{Method: method.RawName, Err: err}
		}
		amount, err := toUint256(args[1])
		if err != nil {
			return nil, &ArgumentError{Method: method.RawName, Err: err}
		}
		ok, err := c.Transfer(ctx, recipient, amount)
		if err != nil {
			return nil, err
		}
		return []any{ok}, nil

	case "increment":
		return nil, c.Increment(ctx)

	case "addFromMsgValue":
		return nil, c.AddFromMsgValue(ctx, msg)
	}

	var sel [4]byte
	copy(sel[:], method.ID[:4])
	return nil, &SelectorError{Selector: sel}
}

func (d *Dispatcher) arith(ctx context.Context, name string, v *uint256.Int) error {
	switch name {
	case "setNumber":
		return d.contract.SetNumber(ctx, v)
	case "mulNumber":
		return d.contract.MulNumber(ctx, v)
	default:
		return d.contract.AddNumber(ctx, v)
	}
}
