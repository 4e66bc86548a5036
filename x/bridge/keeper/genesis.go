package keeper

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/x/bridge/types"
)

// InitGenesis writes a validated genesis state to the store.
func (k Keeper) InitGenesis(ctx sdk.Context, gs types.GenesisState) {
	k.SetConfig(ctx, gs.Config)
	k.SetTransferNonce(ctx, types.OrZero(gs.TransferNonce))

	for _, a := range gs.Assets {
		if a.Asset != types.NativeAsset {
			ctx.KVStore(k.storeKey).Set(types.TokenKey(a.Asset), present)
		}
		w := a.Window
		w.Spent = types.OrZero(w.Spent)
		k.SetDailyLimitWindow(ctx, a.Asset, w)
	}
	for _, v := range gs.Validators {
		k.setValidator(ctx, v)
	}
	for _, r := range gs.Rewards {
		k.SetReward(ctx, r.Validator, r.Amount)
	}
	for _, p := range gs.PendingSwaps {
		k.SetPendingSwap(ctx, p)
	}
}

func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	gs := &types.GenesisState{
		Config:        k.GetConfig(ctx),
		TransferNonce: k.GetTransferNonce(ctx),
		Validators:    sortAddresses(k.GetValidators(ctx)),
		PendingSwaps:  k.GetPendingSwaps(ctx),
	}

	if w, found := k.GetDailyLimitWindow(ctx, types.NativeAsset); found {
		gs.Assets = append(gs.Assets, types.AssetLimit{Asset: types.NativeAsset, Window: w})
	}
	for _, token := range sortAddresses(k.GetTokens(ctx)) {
		w, _ := k.GetDailyLimitWindow(ctx, token)
		gs.Assets = append(gs.Assets, types.AssetLimit{Asset: token, Window: w})
	}

	k.IterateRewards(ctx, func(validator chain.Address, reward sdkmath.Uint) bool {
		gs.Rewards = append(gs.Rewards, types.ValidatorReward{Validator: validator, Amount: reward})
		return true
	})
	return gs
}
