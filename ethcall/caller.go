// Package ethcall performs the counter contract's outbound token calls
// against a live Ethereum node over JSON-RPC.
package ethcall

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"

	counter "github.com/branched-services/go-counter"
)

// LogTag tags every log line emitted by the caller.
var LogTag = log.Service("ethcall")

// ErrReadOnly indicates a CALL was requested from a caller without a signing key.
var ErrReadOnly = errors.New("ethcall: caller has no signing key")

// Backend answers eth_call. *ethclient.Client satisfies it.
type Backend interface {
	ethereum.ContractCaller
}

// Caller implements counter.Caller over JSON-RPC.
//
// STATICCALLs are answered with eth_call. CALLs are first simulated with
// eth_call to capture the return data, then sent through the Transactor and
// waited on; a failed receipt makes the call fail.
type Caller struct {
	backend Backend
	tx      Transactor
	timeout time.Duration
	logger  log.Logger
}

// Dial connects to cfg.Endpoint and builds a Caller.
func Dial(ctx context.Context, cfg Config, logger log.Logger) (*Caller, *ethclient.Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	client, err := ethclient.DialContext(ctx, cfg.Endpoint)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "ethcall: dial %s", cfg.Endpoint)
	}

	var tx Transactor
	if cfg.PrivateKeyHex != "" {
		key, err := crypto.HexToECDSA(cfg.PrivateKeyHex)
		if err != nil {
			client.Close()
			return nil, nil, errors.Wrap(err, "ethcall: parse private key")
		}
		chainID, err := client.ChainID(ctx)
		if err != nil {
			client.Close()
			return nil, nil, errors.Wrap(err, "ethcall: get chain id")
		}
		auth, err := bind.NewKeyedTransactorWithChainID(key, chainID)
		if err != nil {
			client.Close()
			return nil, nil, errors.Wrap(err, "ethcall: create transactor")
		}
		tx = NewTransactor(client, auth, cfg.GasLimit)
	}

	return New(client, tx, cfg, logger), client, nil
}

// New creates a Caller on an existing backend. tx may be nil for a
// read-only caller.
func New(backend Backend, tx Transactor, cfg Config, logger log.Logger) *Caller {
	if logger == nil {
		logger = log.GetLogger().WithOutput()
	}
	return &Caller{
		backend: backend,
		tx:      tx,
		timeout: cfg.Timeout,
		logger:  logger.WithTags(LogTag),
	}
}

// From returns the account calls are issued from.
func (c *Caller) From() common.Address {
	if c.tx == nil {
		return common.Address{}
	}
	return c.tx.From()
}

var _ counter.Caller = (*Caller)(nil)

// Call implements counter.Caller.
func (c *Caller) Call(ctx context.Context, call *counter.CallRecord) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	target := call.Target()
	data := call.Calldata()

	ret, err := c.backend.CallContract(ctx, ethereum.CallMsg{
		From: c.From(),
		To:   &target,
		Data: data,
	}, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "ethcall: eth_call %s", call.Method().Name)
	}

	if call.Kind().ReadOnly() {
		return ret, nil
	}

	if err := c.send(ctx, target, data); err != nil {
		return nil, errors.Wrapf(err, "ethcall: send %s", call.Method().Name)
	}
	return ret, nil
}

// send submits calldata to target and waits for a successful receipt.
func (c *Caller) send(ctx context.Context, target common.Address, data []byte) error {
	if c.tx == nil {
		return ErrReadOnly
	}

	tx, err := c.tx.Transact(ctx, target, data)
	if err != nil {
		return errors.Wrap(err, "transact")
	}

	receipt, err := c.tx.WaitMined(ctx, tx)
	if err != nil {
		return errors.Wrap(err, "wait mined")
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		c.logger.Info("transaction reverted",
			log.Stringable("tx", tx.Hash()),
			log.Stringable("target", target))
		return errors.Errorf("transaction %s reverted", tx.Hash().Hex())
	}

	c.logger.Info("transaction mined",
		log.Stringable("tx", tx.Hash()),
		log.Stringable("target", target))
	return nil
}
