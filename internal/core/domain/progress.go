package domain

import "math/big"

var hundred = big.NewFloat(100)

// FundingPercent returns min(100, balance/goal*100). A nil or zero goal is
// treated as 1 and a nil balance as 0, so the result is always in [0,100].
func FundingPercent(balance, goal *big.Int) float64 {
	b := new(big.Float)
	if balance != nil && balance.Sign() > 0 {
		b.SetInt(balance)
	}
	g := big.NewFloat(1)
	if goal != nil && goal.Sign() > 0 {
		g.SetInt(goal)
	}
	pct, _ := new(big.Float).Quo(new(big.Float).Mul(b, hundred), g).Float64()
	if pct >= 100 {
		return 100
	}
	return pct
}
