package counter

import (
	"context"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethdb/memorydb"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestStores(t *testing.T) {
	stores := map[string]func() Store{
		"memory":   func() Store { return NewMemoryStore() },
		"database": func() Store { return NewDatabaseStore(memorydb.New(), []byte("counter-")) },
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := newStore()

			word, err := store.Load(ctx, NumberSlot)
			require.NoError(t, err)
			require.Equal(t, common.Hash{}, word, "unwritten slot reads as zero")

			writes := map[common.Hash]common.Hash{
				NumberSlot: EncodeNumber(uint256.NewInt(5)),
				TokenSlot:  EncodeAddress(tokenAddr),
			}
			require.NoError(t, store.Commit(ctx, writes))

			for slot, want := range writes {
				got, err := store.Load(ctx, slot)
				require.NoError(t, err)
				require.Equal(t, want, got)
			}
		})
	}
}

func TestDatabaseStorePrefix(t *testing.T) {
	ctx := context.Background()
	db := memorydb.New()

	a := NewDatabaseStore(db, []byte("a/"))
	b := NewDatabaseStore(db, []byte("b/"))

	require.NoError(t, a.Commit(ctx, map[common.Hash]common.Hash{NumberSlot: EncodeNumber(uint256.NewInt(1))}))

	got, err := b.Load(ctx, NumberSlot)
	require.NoError(t, err)
	require.Equal(t, common.Hash{}, got, "prefixes must isolate contracts")

	raw, err := db.Get(append([]byte("a/"), NumberSlot.Bytes()...))
	require.NoError(t, err)
	require.Equal(t, EncodeNumber(uint256.NewInt(1)).Bytes(), raw)
}

func TestContractOnDatabaseStore(t *testing.T) {
	ctx := context.Background()
	db := memorydb.New()

	c := newTestContract(t, WithStore(NewDatabaseStore(db, nil)))
	require.NoError(t, c.Increment(ctx))
	require.NoError(t, c.AddNumber(ctx, uint256.NewInt(9)))

	reopened := newTestContract(t, WithStore(NewDatabaseStore(db, nil)))
	requireNumber(t, reopened, 10)
}
