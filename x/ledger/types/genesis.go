package types

import (
	"fmt"

	sdkmath "cosmossdk.io/math"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
)

type Balance struct {
	Account chain.Address `json:"account" yaml:"account"`
	Asset   chain.Address `json:"asset" yaml:"asset"`
	Amount  sdkmath.Uint  `json:"amount" yaml:"amount"`
}

type GenesisState struct {
	Balances []Balance `json:"balances" yaml:"balances"`
}

func DefaultGenesis() *GenesisState {
	return &GenesisState{}
}

func (gs GenesisState) Validate() error {
	type pair struct{ asset, account chain.Address }
	seen := make(map[pair]bool, len(gs.Balances))
	for _, b := range gs.Balances {
		k := pair{b.Asset, b.Account}
		if seen[k] {
			return fmt.Errorf("duplicate balance for account %s asset %s", b.Account, b.Asset)
		}
		seen[k] = true
		if b.Amount == (sdkmath.Uint{}) {
			return ErrInvalidAmount.Wrapf("balance of %s is not set", b.Account)
		}
	}
	return nil
}
