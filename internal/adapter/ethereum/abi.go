package ethereum

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Method names of the campaign and factory contracts.
const (
	methodName         = "name"
	methodDescription  = "description"
	methodCreationDate = "creationDate"
	methodDeadline     = "deadline"
	methodGoal         = "goal"
	methodBalance      = "getContractBalance"
	methodTiers        = "getTiers"
	methodOwner        = "owner"
	methodState        = "state"
	methodAddTier      = "addTier"
	methodAllCampaigns = "getAllCampaigns"
)

const campaignABIJSON = `[
  {"type":"function","name":"name","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
  {"type":"function","name":"description","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
  {"type":"function","name":"creationDate","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"deadline","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"goal","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"getContractBalance","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"getTiers","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"tuple[]","components":[
    {"name":"name","type":"string"},
    {"name":"amount","type":"uint256"},
    {"name":"backers","type":"uint256"}
  ]}]},
  {"type":"function","name":"owner","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
  {"type":"function","name":"state","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]},
  {"type":"function","name":"addTier","stateMutability":"nonpayable","inputs":[
    {"name":"_name","type":"string"},
    {"name":"_amount","type":"uint256"}
  ],"outputs":[]}
]`

const factoryABIJSON = `[
  {"type":"function","name":"getAllCampaigns","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"tuple[]","components":[
    {"name":"campaignAddress","type":"address"},
    {"name":"owner","type":"address"},
    {"name":"name","type":"string"}
  ]}]}
]`

var (
	campaignABI = mustParseABI(campaignABIJSON)
	factoryABI  = mustParseABI(factoryABIJSON)
)

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("parse contract abi: %v", err))
	}
	return parsed
}
