package counter

import (
	"context"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/orbs-network/scribe/log"
)

// LogTag tags every log line emitted by the contract.
var LogTag = log.Service("counter")

// Message carries the invocation context supplied by the host.
type Message struct {
	// Sender is the account that invoked the contract.
	Sender common.Address

	// Value is the amount attached to the invocation; nil means none.
	Value *uint256.Int
}

// AttachedValue returns the attached value, zero if none.
func (m Message) AttachedValue() *uint256.Int {
	return new(uint256.Int).Set(orZero(m.Value))
}

// Contract is the counter contract's operation surface.
//
// Invocations are serialised: each runs to completion, including its
// outbound calls, before the next one starts. While an outbound call is in
// flight the contract is not reentrant: any entry, such as a token calling
// back, fails with ErrReentrant.
type Contract struct {
	mu sync.Mutex

	guard   sync.Mutex
	calling bool // outbound call in flight, guarded by guard

	store    Store
	gateway  *Gateway
	logger   log.Logger
	overflow OverflowPolicy
}

// New creates a Contract with the given options.
func New(opts ...Option) *Contract {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.store == nil {
		cfg.store = NewMemoryStore()
	}
	if cfg.logger == nil {
		cfg.logger = log.GetLogger().WithOutput()
	}
	logger := cfg.logger.WithTags(LogTag)

	return &Contract{
		store:    cfg.store,
		gateway:  NewGateway(cfg.caller, logger),
		logger:   logger,
		overflow: cfg.overflow,
	}
}

// Gateway returns the gateway used for token calls.
func (c *Contract) Gateway() *Gateway {
	return c.gateway
}

// OverflowPolicy returns the configured arithmetic overflow policy.
func (c *Contract) OverflowPolicy() OverflowPolicy {
	return c.overflow
}

// invoke runs fn against freshly loaded state and commits on success.
func (c *Contract) invoke(ctx context.Context, name string, fn func(st *State) error) error {
	if c.inOutboundCall() {
		c.logger.Info("reentrant invocation rejected", log.String("method", name))
		return ErrReentrant
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	st, err := loadState(ctx, c.store)
	if err != nil {
		c.logger.Error("failed to load state", log.String("method", name), log.Error(err))
		return err
	}

	if err := fn(st); err != nil {
		c.logger.Info("invocation reverted", log.String("method", name), log.Error(err))
		return err
	}

	if err := saveState(ctx, c.store, st); err != nil {
		c.logger.Error("failed to save state", log.String("method", name), log.Error(err))
		return err
	}
	return nil
}

func (c *Contract) inOutboundCall() bool {
	c.guard.Lock()
	defer c.guard.Unlock()
	return c.calling
}

// outbound marks the contract as calling out for the duration of fn.
func (c *Contract) outbound(fn func()) {
	c.guard.Lock()
	c.calling = true
	c.guard.Unlock()

	defer func() {
		c.guard.Lock()
		c.calling = false
		c.guard.Unlock()
	}()
	fn()
}

// Number returns the stored number.
func (c *Contract) Number(ctx context.Context) (*uint256.Int, error) {
	var n *uint256.Int
	err := c.invoke(ctx, "number", func(st *State) error {
		n = st.Number()
		return nil
	})
	return n, err
}

// Token returns the stored token address.
func (c *Contract) Token(ctx context.Context) (common.Address, error) {
	var token common.Address
	err := c.invoke(ctx, "token", func(st *State) error {
		token = st.Token()
		return nil
	})
	return token, err
}

// SetNumber overwrites the stored number with v. A nil v counts as zero,
// as it does for every number argument of the contract.
func (c *Contract) SetNumber(ctx context.Context, v *uint256.Int) error {
	return c.invoke(ctx, "setNumber", func(st *State) error {
		st.SetNumber(v)
		return nil
	})
}

// SetAddress stores the token contract address. The address is not checked
// for an ERC20 implementation.
func (c *Contract) SetAddress(ctx context.Context, token common.Address) error {
	return c.invoke(ctx, "setAddress", func(st *State) error {
		st.SetToken(token)
		return nil
	})
}

// BalanceOf returns owner's balance on the stored token, or 0 if the token
// call fails or answers with anything but a single word.
func (c *Contract) BalanceOf(ctx context.Context, owner common.Address) (*uint256.Int, error) {
	var balance *uint256.Int
	err := c.invoke(ctx, "balanceOf", func(st *State) error {
		c.outbound(func() {
			balance = c.gateway.QueryBalance(ctx, st.Token(), owner).Balance
		})
		return nil
	})
	return balance, err
}

// Transfer asks the stored token to move amount to recipient. It reports
// false if the call fails, returns nothing, or does not answer true.
func (c *Contract) Transfer(ctx context.Context, recipient common.Address, amount *uint256.Int) (bool, error) {
	var ok bool
	err := c.invoke(ctx, "transfer", func(st *State) error {
		c.outbound(func() {
			ok = c.gateway.DelegateTransfer(ctx, st.Token(), recipient, amount).Ok()
		})
		return nil
	})
	return ok, err
}

// MulNumber sets number to v * number.
func (c *Contract) MulNumber(ctx context.Context, v *uint256.Int) error {
	return c.invoke(ctx, "mulNumber", func(st *State) error {
		return st.Mul(v, c.overflow)
	})
}

// AddNumber sets number to v + number.
func (c *Contract) AddNumber(ctx context.Context, v *uint256.Int) error {
	return c.invoke(ctx, "addNumber", func(st *State) error {
		return st.Add(v, c.overflow)
	})
}

// Increment adds one to number.
func (c *Contract) Increment(ctx context.Context) error {
	return c.invoke(ctx, "increment", func(st *State) error {
		return st.Add(uint256.NewInt(1), c.overflow)
	})
}

// AddFromMsgValue adds the value attached to msg to number.
// Hosts must only route value-carrying invocations here; see Dispatcher.
func (c *Contract) AddFromMsgValue(ctx context.Context, msg Message) error {
	return c.invoke(ctx, "addFromMsgValue", func(st *State) error {
		return st.Add(msg.AttachedValue(), c.overflow)
	})
}
