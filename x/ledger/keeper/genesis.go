package keeper

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/x/ledger/types"
)

// InitGenesis loads balances. Token supplies are derived from them.
func (k Keeper) InitGenesis(ctx sdk.Context, gs types.GenesisState) {
	for _, b := range gs.Balances {
		k.setBalance(ctx, b.Asset, b.Account, b.Amount)
		if b.Asset != types.NativeAsset {
			k.setTotalSupply(ctx, b.Asset, k.GetTotalSupply(ctx, b.Asset).Add(b.Amount))
		}
	}
}

func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	gs := types.DefaultGenesis()
	k.IterateBalances(ctx, func(asset, account chain.Address, amount sdkmath.Uint) bool {
		gs.Balances = append(gs.Balances, types.Balance{Account: account, Asset: asset, Amount: amount})
		return true
	})
	return gs
}
