package ethcall

import (
	"context"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	counter "github.com/branched-services/go-counter"
)

// Transactor signs state-changing calls, submits them and waits for them to
// be mined.
type Transactor interface {
	// From returns the signing account.
	From() common.Address

	// Transact signs and submits data to target.
	Transact(ctx context.Context, target common.Address, data []byte) (*types.Transaction, error)

	// WaitMined blocks until tx is mined or ctx is done.
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
}

// NodeBackend is everything bind needs to send and track a transaction.
// *ethclient.Client satisfies it.
type NodeBackend interface {
	bind.ContractBackend
	bind.DeployBackend
}

type bindTransactor struct {
	backend  NodeBackend
	auth     *bind.TransactOpts
	gasLimit uint64
}

// NewTransactor signs with auth and sends through backend. A zero gasLimit
// lets the node estimate gas.
func NewTransactor(backend NodeBackend, auth *bind.TransactOpts, gasLimit uint64) Transactor {
	return &bindTransactor{backend: backend, auth: auth, gasLimit: gasLimit}
}

func (t *bindTransactor) From() common.Address {
	return t.auth.From
}

func (t *bindTransactor) Transact(ctx context.Context, target common.Address, data []byte) (*types.Transaction, error) {
	opts := *t.auth
	opts.Context = ctx
	opts.GasLimit = t.gasLimit

	bound := bind.NewBoundContract(target, counter.ERC20ABI, t.backend, t.backend, t.backend)
	return bound.RawTransact(&opts, data)
}

func (t *bindTransactor) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	return bind.WaitMined(ctx, t.backend, tx)
}
