package domain

import (
	"fmt"
	"math/big"
	"strings"
)

var maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// ParseTierAmount coerces form input into a uint256 amount.
func ParseTierAmount(raw string) (*big.Int, error) {
	raw = strings.TrimSpace(raw)
	v, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not an integer", ErrInvalidAmount, raw)
	}
	if v.Sign() < 0 || v.Cmp(maxUint256) > 0 {
		return nil, fmt.Errorf("%w: %s does not fit uint256", ErrInvalidAmount, v)
	}
	return v, nil
}
