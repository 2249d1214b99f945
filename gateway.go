package counter

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/orbs-network/scribe/log"
)

// BalanceOutcome is the result of a balanceOf query.
type BalanceOutcome struct {
	// Balance is the decoded balance; zero whenever Err is set.
	Balance *uint256.Int

	// Raw is the response returned by the token, nil if the call failed.
	Raw []byte

	// Err is nil for a successful call with a well-formed 32-byte response.
	Err error
}

// Ok returns true if the token answered with a well-formed balance.
func (o BalanceOutcome) Ok() bool {
	return o.Err == nil
}

// TransferOutcome is the result of a transfer delegation.
type TransferOutcome struct {
	// Raw is the response returned by the token, nil if the call failed.
	Raw []byte

	// Err is nil only when the call succeeded and the first response byte is 1.
	Err error
}

// Ok returns true if the token acknowledged the transfer.
func (o TransferOutcome) Ok() bool {
	return o.Err == nil
}

// Gateway issues ERC20 calls through a Caller and turns raw responses into
// outcomes. It never returns an error that aborts an invocation: every
// failure is carried inside the outcome.
type Gateway struct {
	caller Caller
	logger log.Logger
}

// NewGateway creates a Gateway. A nil caller makes every call fail with ErrNoCaller.
func NewGateway(caller Caller, logger log.Logger) *Gateway {
	return &Gateway{caller: caller, logger: logger}
}

// QueryBalance asks token for owner's balance via STATICCALL.
//
// The response must be exactly one 32-byte word; any other length decodes
// as zero with ErrMalformedResponse, so a short or oversized reply cannot be
// told apart from a zero balance by the public operation.
func (g *Gateway) QueryBalance(ctx context.Context, token, owner common.Address) BalanceOutcome {
	call, err := NewCallRecord(token, ERC20ABI.Methods["balanceOf"], KindStaticCall, owner)
	if err != nil {
		return BalanceOutcome{Balance: new(uint256.Int), Err: err}
	}

	data, err := g.do(ctx, call)
	if err != nil {
		return BalanceOutcome{Balance: new(uint256.Int), Err: err}
	}

	if len(data) != WordSize {
		g.logger.Info("balanceOf returned malformed response",
			log.Stringable("token", token),
			log.Int("length", len(data)))
		return BalanceOutcome{Balance: new(uint256.Int), Raw: data, Err: ErrMalformedResponse}
	}

	return BalanceOutcome{Balance: new(uint256.Int).SetBytes32(data), Raw: data}
}

// DelegateTransfer asks token to move amount to recipient via CALL.
//
// The transfer counts as acknowledged when the first byte of the response is
// 1. Reverts, empty responses and any other leading byte are all rejections.
// A nil amount is sent as zero.
func (g *Gateway) DelegateTransfer(ctx context.Context, token, recipient common.Address, amount *uint256.Int) TransferOutcome {
	call, err := NewCallRecord(token, ERC20ABI.Methods["transfer"], KindCall, recipient, orZero(amount).ToBig())
	if err != nil {
		return TransferOutcome{Err: err}
	}

	data, err := g.do(ctx, call)
	if err != nil {
		return TransferOutcome{Err: err}
	}

	if len(data) == 0 || data[0] != 1 {
		g.logger.Info("transfer not acknowledged",
			log.Stringable("token", token),
			log.Stringable("recipient", recipient))
		return TransferOutcome{Raw: data, Err: ErrTransferRejected}
	}

	return TransferOutcome{Raw: data}
}

// do runs one call and normalises failures into a CallError.
func (g *Gateway) do(ctx context.Context, call *CallRecord) ([]byte, error) {
	if g.caller == nil {
		return nil, &CallError{Target: call.Target(), Method: call.Method().Name, Err: ErrNoCaller}
	}

	data, err := g.caller.Call(ctx, call)
	if err != nil {
		g.logger.Info("outbound call failed",
			log.String("method", call.Method().Name),
			log.Stringable("kind", call.Kind()),
			log.Stringable("target", call.Target()),
			log.Error(err))
		return nil, &CallError{Target: call.Target(), Method: call.Method().Name, Err: err}
	}
	return data, nil
}
