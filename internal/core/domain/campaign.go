package domain

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// State is the lifecycle state reported by a campaign contract.
type State int

const (
	StateActive State = iota
	StateSuccessful
	StateFailed

	// StateUnknown marks a state that could not be read or is out of range.
	StateUnknown State = -1
)

// StateFromUint8 maps the contract's uint8 enum onto State.
func StateFromUint8(v uint8) State {
	switch s := State(v); s {
	case StateActive, StateSuccessful, StateFailed:
		return s
	default:
		return StateUnknown
	}
}

func (s State) String() string {
	switch s {
	case StateActive:
		return "Active"
	case StateSuccessful:
		return "Successful"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Tier is a named pledge level within a campaign.
type Tier struct {
	Name    string
	Amount  *big.Int
	Backers *big.Int
}

// CampaignSummary is one entry of the factory registry.
type CampaignSummary struct {
	Address common.Address
	Owner   common.Address
	Name    string
}

// CampaignCard is the listing representation of a campaign. Fields that
// failed to load are left at their zero value.
type CampaignCard struct {
	Address     common.Address
	Owner       common.Address
	Name        string
	Description string
	Goal        *big.Int
	Balance     *big.Int
	Percent     float64
}

// CampaignView is the derived, render-ready snapshot of one campaign. A
// nil pointer means the field did not resolve.
type CampaignView struct {
	Address common.Address

	// Ready reports whether every gating field resolved. When false only
	// Address and Pending are meaningful.
	Ready   bool
	Pending []string

	Name           string
	Description    string
	CreationDate   *time.Time
	Deadline       *time.Time
	DeadlinePassed bool
	Goal           *big.Int
	Balance        *big.Int
	Percent        float64
	Tiers          []Tier
	TiersLoaded    bool
	Owner          *common.Address
	State          State

	// Editable reports whether the connected account owns the campaign.
	Editable bool
}
