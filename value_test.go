package counter

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestParseUint256(t *testing.T) {
	tests := []struct {
		in      string
		want    *uint256.Int
		wantErr bool
	}{
		{"0", uint256.NewInt(0), false},
		{"102", uint256.NewInt(102), false},
		{"0102", uint256.NewInt(102), false},
		{" 42 ", uint256.NewInt(42), false},
		{"0x66", uint256.NewInt(102), false},
		{"0X66", uint256.NewInt(102), false},
		{"0x01", uint256.NewInt(1), false},
		{"0x0066", uint256.NewInt(102), false},
		{"0x0", uint256.NewInt(0), false},
		{"0x00", uint256.NewInt(0), false},
		{"0x00ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", new(uint256.Int).SetAllOne(), false},
		{"115792089237316195423570985008687907853269984665640564039457584007913129639935", new(uint256.Int).SetAllOne(), false},
		{"115792089237316195423570985008687907853269984665640564039457584007913129639936", nil, true},
		{"0x10000000000000000000000000000000000000000000000000000000000000000", nil, true},
		{"0x", nil, true},
		{"0xzz", nil, true},
		{"-1", nil, true},
		{"abc", nil, true},
		{"", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseUint256(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestMustUint256(t *testing.T) {
	require.Equal(t, uint256.NewInt(255), MustUint256("0x00ff"))
	require.Panics(t, func() { MustUint256("not a number") })
}

func TestOrZero(t *testing.T) {
	require.True(t, orZero(nil).IsZero())

	v := uint256.NewInt(3)
	require.Same(t, v, orZero(v))
}

func TestToUint256(t *testing.T) {
	_, err := toUint256(big.NewInt(-1))
	require.Error(t, err, "negative value")

	_, err = toUint256(new(big.Int).Lsh(big.NewInt(1), 256))
	require.Error(t, err, "value above 2^256-1")

	_, err = toUint256("7")
	require.Error(t, err, "non-numeric type")

	got, err := toUint256(big.NewInt(7))
	require.NoError(t, err)
	require.Equal(t, uint64(7), got.Uint64())
}

func TestToAddress(t *testing.T) {
	_, err := toAddress([]byte{1})
	require.Error(t, err)

	got, err := toAddress(common.HexToAddress("0x01"))
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress("0x01"), got)
}
