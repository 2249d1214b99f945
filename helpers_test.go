package counter

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/orbs-network/go-mock"
)

var (
	tokenAddr = common.HexToAddress("0x1234567890123456789012345678901234567890")
	alice     = common.HexToAddress("0xaAaAaAaaAaAaAaaAaAAAAAAAAaaaAaAaAaaAaaAa")
	bob       = common.HexToAddress("0xbBbBBBBbbBBBbbbBbbBbbbbBBbBbbbbBbBbbBBbB")
)

// ackWord is a transfer reply whose first byte is 1.
var ackWord = append([]byte{1}, make([]byte, WordSize-1)...)

// tokenStub is an in-memory ERC20 answering calls at a single address.
// Calls to any other address succeed with empty return data, like calls
// to an account without code.
type tokenStub struct {
	address  common.Address
	holder   common.Address // account debited by transfer
	balances map[common.Address]*uint256.Int

	fail  error  // when set, every call fails with it
	reply []byte // when set, overrides the transfer reply

	calls []*CallRecord
}

func newTokenStub(address, holder common.Address) *tokenStub {
	return &tokenStub{
		address:  address,
		holder:   holder,
		balances: make(map[common.Address]*uint256.Int),
	}
}

func (s *tokenStub) balanceOf(owner common.Address) *uint256.Int {
	if b, ok := s.balances[owner]; ok {
		return b
	}
	return new(uint256.Int)
}

func (s *tokenStub) Call(_ context.Context, call *CallRecord) ([]byte, error) {
	s.calls = append(s.calls, call)
	if s.fail != nil {
		return nil, s.fail
	}
	if call.Target() != s.address {
		return nil, nil
	}

	args, err := call.Method().Inputs.Unpack(call.Args())
	if err != nil {
		return nil, err
	}

	switch call.Method().Name {
	case "balanceOf":
		word := s.balanceOf(args[0].(common.Address)).Bytes32()
		return word[:], nil

	case "transfer":
		if call.Kind().ReadOnly() {
			return nil, errors.New("write protection")
		}
		to := args[0].(common.Address)
		amount, _ := uint256.FromBig(args[1].(*big.Int))
		from := s.balanceOf(s.holder)
		if from.Lt(amount) {
			return nil, errors.New("execution reverted: insufficient balance")
		}
		s.balances[s.holder] = new(uint256.Int).Sub(from, amount)
		s.balances[to] = new(uint256.Int).Add(s.balanceOf(to), amount)
		if s.reply != nil {
			return s.reply, nil
		}
		return ackWord, nil
	}
	return nil, errors.New("execution reverted")
}

// callerMock is a go-mock Caller.
type callerMock struct {
	mock.Mock
}

func (m *callerMock) Call(ctx context.Context, call *CallRecord) ([]byte, error) {
	ret := m.Called(ctx, call)
	if out := ret.Get(0); out != nil {
		return out.([]byte), ret.Error(1)
	}
	return nil, ret.Error(1)
}
