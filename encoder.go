package counter

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Word encoding constants.
const (
	// WordSize is the size of a storage slot and of an ABI word in bytes.
	WordSize = 32

	// addressOffset is where a right-aligned address starts inside a word.
	addressOffset = WordSize - common.AddressLength
)

// EncodeNumber produces the 32-byte big-endian slot word for a number.
func EncodeNumber(v *uint256.Int) common.Hash {
	return common.Hash(v.Bytes32())
}

// DecodeNumber reads a number from its slot word.
func DecodeNumber(word common.Hash) *uint256.Int {
	return new(uint256.Int).SetBytes32(word[:])
}

// EncodeAddress produces the slot word for an address.
// Format: [zero:12][address:20]
func EncodeAddress(addr common.Address) common.Hash {
	var word common.Hash
	copy(word[addressOffset:], addr.Bytes())
	return word
}

// DecodeAddress reads an address from its slot word.
// The upper 12 bytes are ignored, as the EVM does for address slots.
func DecodeAddress(word common.Hash) common.Address {
	return common.BytesToAddress(word[addressOffset:])
}

// loadState reads both slots from the store into a fresh State.
func loadState(ctx context.Context, store Store) (*State, error) {
	st := newState()

	numberWord, err := store.Load(ctx, NumberSlot)
	if err != nil {
		return nil, &StoreError{Op: "load", Slot: NumberSlot, Err: err}
	}
	st.number.Set(DecodeNumber(numberWord))

	tokenWord, err := store.Load(ctx, TokenSlot)
	if err != nil {
		return nil, &StoreError{Op: "load", Slot: TokenSlot, Err: err}
	}
	st.token = DecodeAddress(tokenWord)

	return st, nil
}

// saveState commits the slots written during the invocation.
// A State with no dirty slots performs no store write.
func saveState(ctx context.Context, store Store, st *State) error {
	writes := make(map[common.Hash]common.Hash, 2)
	if st.isDirty(NumberSlot) {
		writes[NumberSlot] = EncodeNumber(&st.number)
	}
	if st.isDirty(TokenSlot) {
		writes[TokenSlot] = EncodeAddress(st.token)
	}
	if len(writes) == 0 {
		return nil
	}
	if err := store.Commit(ctx, writes); err != nil {
		return &StoreError{Op: "commit", Slot: firstSlot(writes), Err: err}
	}
	return nil
}

// firstSlot returns the lowest slot in a write set, for error reporting.
func firstSlot(writes map[common.Hash]common.Hash) common.Hash {
	if _, ok := writes[NumberSlot]; ok {
		return NumberSlot
	}
	return TokenSlot
}
