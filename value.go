package counter

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// ParseUint256 parses a decimal or 0x-prefixed hexadecimal number.
// Leading zero digits are accepted in both forms.
func ParseUint256(s string) (*uint256.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty number")
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		digits := strings.TrimLeft(s[2:], "0")
		if digits == "" && len(s) > 2 {
			digits = "0"
		}
		return uint256.FromHex("0x" + digits)
	}
	return uint256.FromDecimal(s)
}

// orZero returns v, or a fresh zero if v is nil.
func orZero(v *uint256.Int) *uint256.Int {
	if v == nil {
		return new(uint256.Int)
	}
	return v
}

// MustUint256 is like ParseUint256 but panics on error.
// Use only with compile-time constant values.
func MustUint256(s string) *uint256.Int {
	v, err := ParseUint256(s)
	if err != nil {
		panic(err)
	}
	return v
}

// toUint256 converts an ABI-decoded uint256 argument.
func toUint256(v any) (*uint256.Int, error) {
	switch x := v.(type) {
	case *big.Int:
		if x.Sign() < 0 {
			return nil, fmt.Errorf("negative value %s", x)
		}
		u, overflow := uint256.FromBig(x)
		if overflow {
			return nil, fmt.Errorf("value %s exceeds uint256", x)
		}
		return u, nil
	case *uint256.Int:
		return new(uint256.Int).Set(x), nil
	default:
		return nil, fmt.Errorf("expected uint256, got %T", v)
	}
}

// toAddress converts an ABI-decoded address argument.
func toAddress(v any) (common.Address, error) {
	addr, ok := v.(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("expected address, got %T", v)
	}
	return addr, nil
}
