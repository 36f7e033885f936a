// Package ethereum adapts go-ethereum contract bindings to the campaign
// ports.
package ethereum

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"crowdfund-web/internal/metrics"
)

// call runs one view method on address and returns its unpacked outputs.
func call(ctx context.Context, caller bind.ContractCaller, m *metrics.Metrics, contract abi.ABI, address common.Address, method string) ([]any, error) {
	start := time.Now()
	bound := bind.NewBoundContract(address, contract, caller, nil, nil)

	var out []any
	err := bound.Call(&bind.CallOpts{Context: ctx}, &out, method)
	m.ContractRead(method, time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("%s on %s: %w", method, address.Hex(), err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s on %s: empty result", method, address.Hex())
	}
	return out, nil
}

// single returns the only output of a call as T.
func single[T any](out []any, method string) (T, error) {
	v, ok := out[0].(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s: unexpected output type %T", method, out[0])
	}
	return v, nil
}

// convert copies an unpacked tuple value into proto. abi.ConvertType panics
// on shape mismatches, which are reported as errors instead.
func convert[T any](in any, method string) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: decode output: %v", method, r)
		}
	}()
	return *abi.ConvertType(in, new(T)).(*T), nil
}
