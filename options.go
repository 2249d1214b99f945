package counter

import (
	"github.com/orbs-network/scribe/log"
)

// OverflowPolicy selects what happens when arithmetic leaves uint256 range.
type OverflowPolicy uint8

const (
	// WrapOnOverflow reduces results modulo 2^256.
	WrapOnOverflow OverflowPolicy = iota

	// AbortOnOverflow fails the invocation with ErrOverflow.
	AbortOnOverflow
)

func (p OverflowPolicy) String() string {
	switch p {
	case WrapOnOverflow:
		return "wrap"
	case AbortOnOverflow:
		return "abort"
	default:
		return "unknown"
	}
}

// Option configures a Contract.
type Option func(*config)

// config holds the collaborators and policies for a Contract.
type config struct {
	store    Store
	caller   Caller
	logger   log.Logger
	overflow OverflowPolicy
}

// defaultConfig returns the default contract configuration.
func defaultConfig() *config {
	return &config{
		overflow: WrapOnOverflow,
	}
}

// WithStore sets the storage engine backing the contract's slots.
// Default is a fresh MemoryStore.
func WithStore(store Store) Option {
	return func(c *config) {
		c.store = store
	}
}

// WithCaller sets the collaborator that performs outbound token calls.
func WithCaller(caller Caller) Option {
	return func(c *config) {
		c.caller = caller
	}
}

// WithLogger sets the logger. Default discards all output.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithOverflowPolicy sets the arithmetic overflow policy.
// Default is WrapOnOverflow.
func WithOverflowPolicy(policy OverflowPolicy) Option {
	return func(c *config) {
		c.overflow = policy
	}
}
