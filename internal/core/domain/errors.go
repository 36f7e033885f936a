package domain

import "errors"

var (
	ErrMissingAddress     = errors.New("campaign address not found")
	ErrInvalidAddress     = errors.New("invalid address")
	ErrInvalidAmount      = errors.New("invalid tier amount")
	ErrWalletNotConnected = errors.New("please connect your wallet first")
	ErrUnknownAccount     = errors.New("account not in keystore")
	ErrTxReverted         = errors.New("transaction reverted")
	ErrTxInFlight         = errors.New("transaction already submitted")
)
