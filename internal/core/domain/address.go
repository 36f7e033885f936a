package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ParseAddress validates a hex account or contract address taken from a
// route parameter.
func ParseAddress(raw string) (common.Address, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return common.Address{}, ErrMissingAddress
	}
	if !common.IsHexAddress(raw) {
		return common.Address{}, ErrInvalidAddress
	}
	return common.HexToAddress(raw), nil
}

// CanEdit reports whether viewer is the campaign owner. Addresses compare
// by value, so checksum casing is irrelevant.
func CanEdit(owner *common.Address, viewer common.Address, connected bool) bool {
	return connected && owner != nil && *owner == viewer
}
