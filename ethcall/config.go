package ethcall

import (
	"time"

	"github.com/pkg/errors"
)

// Config describes how to reach an Ethereum JSON-RPC node.
type Config struct {
	// Endpoint is the node's JSON-RPC URL, e.g. http://localhost:8545.
	Endpoint string

	// PrivateKeyHex signs state-changing calls. Empty means read-only:
	// STATICCALLs work, CALLs fail with ErrReadOnly.
	PrivateKeyHex string

	// GasLimit for state-changing calls. Zero lets the node estimate.
	GasLimit uint64

	// Timeout bounds each call, including waiting for the receipt.
	Timeout time.Duration
}

// DefaultConfig returns a Config for a local development node.
func DefaultConfig() Config {
	return Config{
		Endpoint: "http://localhost:8545",
		Timeout:  30 * time.Second,
	}
}

// Validate checks the configuration for missing or invalid fields.
func (c Config) Validate() error {
	if c.Endpoint == "" {
		return errors.New("ethcall: endpoint is required")
	}
	if c.Timeout < 0 {
		return errors.Errorf("ethcall: negative timeout %s", c.Timeout)
	}
	return nil
}
