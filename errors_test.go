package counter

import (
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		msg  string
	}{
		{"ErrOverflow", ErrOverflow, "counter: arithmetic overflow"},
		{"ErrReentrant", ErrReentrant, "counter: reentrant call"},
		{"ErrNoCaller", ErrNoCaller, "counter: no caller configured"},
		{"ErrNotPayable", ErrNotPayable, "counter: method does not accept value"},
		{"ErrShortCalldata", ErrShortCalldata, "counter: calldata shorter than 4 bytes"},
		{"ErrMalformedResponse", ErrMalformedResponse, "counter: malformed call response"},
		{"ErrTransferRejected", ErrTransferRejected, "counter: transfer not acknowledged by token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.EqualError(t, tt.err, tt.msg)
		})
	}
}

func TestCallError(t *testing.T) {
	inner := errors.New("execution reverted")
	err := &CallError{
		Target: common.HexToAddress("0x1234567890123456789012345678901234567890"),
		Method: "transfer",
		Err:    inner,
	}

	require.EqualError(t, err, "counter: call transfer on 0x1234567890123456789012345678901234567890: execution reverted")
	require.ErrorIs(t, err, inner)
}

func TestSelectorError(t *testing.T) {
	err := &SelectorError{Selector: [4]byte{0xde, 0xad, 0xbe, 0xef}}
	require.EqualError(t, err, "counter: unknown selector 0xdeadbeef")
}

func TestArgumentError(t *testing.T) {
	inner := errors.New("length insufficient")
	err := &ArgumentError{Method: "setNumber", Err: inner}

	require.EqualError(t, err, `counter: arguments for method "setNumber": length insufficient`)
	require.Same(t, inner, err.Unwrap())
}

func TestStoreError(t *testing.T) {
	inner := errors.New("disk full")
	err := &StoreError{Op: "commit", Slot: TokenSlot, Err: inner}

	require.EqualError(t, err, "counter: commit slot 0x0000000000000000000000000000000000000000000000000000000000000001: disk full")

	var target *StoreError
	wrapped := errors.Join(errors.New("context"), err)
	require.ErrorAs(t, wrapped, &target)
	require.Equal(t, TokenSlot, target.Slot)
}
