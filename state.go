package counter

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Storage slots, in Solidity declaration order.
var (
	NumberSlot = common.Hash{}
	TokenSlot  = common.BigToHash(common.Big1)
)

// State is the contract's persistent data for the span of one invocation.
// It is loaded from a Store at entry and its dirty slots are written back
// at exit.
type State struct {
	number uint256.Int
	token  common.Address

	dirty map[common.Hash]struct{}
}

// newState creates a zero-valued State, as at deployment.
func newState() *State {
	return &State{dirty: make(map[common.Hash]struct{})}
}

// Number returns a copy of the stored number.
func (s *State) Number() *uint256.Int {
	return new(uint256.Int).Set(&s.number)
}

// SetNumber overwrites the stored number. nil is stored as zero.
func (s *State) SetNumber(v *uint256.Int) {
	s.number.Set(orZero(v))
	s.dirty[NumberSlot] = struct{}{}
}

// Token returns the stored token contract address.
func (s *State) Token() common.Address {
	return s.token
}

// SetToken overwrites the stored token contract address.
func (s *State) SetToken(addr common.Address) {
	s.token = addr
	s.dirty[TokenSlot] = struct{}{}
}

// Add sets number to v + number.
func (s *State) Add(v *uint256.Int, policy OverflowPolicy) error {
	sum, overflow := new(uint256.Int).AddOverflow(orZero(v), &s.number)
	if overflow && policy == AbortOnOverflow {
		return ErrOverflow
	}
	s.SetNumber(sum)
	return nil
}

// Mul sets number to v * number.
func (s *State) Mul(v *uint256.Int, policy OverflowPolicy) error {
	product, overflow := new(uint256.Int).MulOverflow(orZero(v), &s.number)
	if overflow && policy == AbortOnOverflow {
		return ErrOverflow
	}
	s.SetNumber(product)
	return nil
}

// isDirty reports whether the slot was written during this invocation.
func (s *State) isDirty(slot common.Hash) bool {
	_, ok := s.dirty[slot]
	return ok
}
