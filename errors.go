package counter

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// Sentinel errors for common failure conditions.
var (
	// ErrOverflow indicates an arithmetic result exceeded 2^256-1 under AbortOnOverflow.
	ErrOverflow = errors.New("counter: arithmetic overflow")

	// ErrReentrant indicates the contract was entered while one of its outbound calls was in flight.
	ErrReentrant = errors.New("counter: reentrant call")

	// ErrNoCaller indicates a token operation was attempted without a Caller.
	ErrNoCaller = errors.New("counter: no caller configured")

	// ErrNotPayable indicates value was attached to a method that does not accept it.
	ErrNotPayable = errors.New("counter: method does not accept value")

	// ErrShortCalldata indicates calldata too short to hold a selector.
	ErrShortCalldata = errors.New("counter: calldata shorter than 4 bytes")

	// ErrMalformedResponse indicates a return payload that could not be decoded.
	ErrMalformedResponse = errors.New("counter: malformed call response")

	// ErrTransferRejected indicates the token answered transfer without a leading true byte.
	ErrTransferRejected = errors.New("counter: transfer not acknowledged by token")
)

// CallError indicates an outbound call to another contract failed.
type CallError struct {
	Target common.Address
	Method string
	Err    error
}

func (e *CallError) Error() string {
	return fmt.Sprintf("counter: call %s on %s: %v", e.Method, e.Target.Hex(), e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// SelectorError indicates calldata named a selector the contract does not export.
type SelectorError struct {
	Selector [4]byte
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("counter: unknown selector 0x%x", e.Selector)
}

// ArgumentError indicates calldata arguments could not be decoded for a method.
type ArgumentError struct {
	Method string
	Err    error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("counter: arguments for method %q: %v", e.Method, e.Err)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// StoreError wraps a storage engine failure on a slot.
type StoreError struct {
	Op   string
	Slot common.Hash
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("counter: %s slot %s: %v", e.Op, e.Slot.Hex(), e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
