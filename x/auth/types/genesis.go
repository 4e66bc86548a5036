package types

import (
	"fmt"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
)

// Account is the next sequence expected from an address.
type Account struct {
	Address  chain.Address `json:"address" yaml:"address"`
	Sequence uint64        `json:"sequence" yaml:"sequence"`
}

type GenesisState struct {
	Accounts []Account `json:"accounts" yaml:"accounts"`
}

func DefaultGenesis() *GenesisState {
	return &GenesisState{}
}

func (gs GenesisState) Validate() error {
	seen := make(map[chain.Address]bool, len(gs.Accounts))
	for _, acc := range gs.Accounts {
		if acc.Address.IsZero() {
			return fmt.Errorf("account address cannot be empty")
		}
		if seen[acc.Address] {
			return fmt.Errorf("duplicate account %s", acc.Address)
		}
		seen[acc.Address] = true
	}
	return nil
}
