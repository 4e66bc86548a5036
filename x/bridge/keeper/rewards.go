package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/x/bridge/types"
)

func (k Keeper) GetReward(ctx sdk.Context, validator chain.Address) sdkmath.Uint {
	bz := ctx.KVStore(k.storeKey).Get(types.RewardKey(validator))
	if bz == nil {
		return sdkmath.ZeroUint()
	}
	var reward sdkmath.Uint
	k.cdc.MustUnmarshalJSON(bz, &reward)
	return reward
}

func (k Keeper) SetReward(ctx sdk.Context, validator chain.Address, reward sdkmath.Uint) {
	store := ctx.KVStore(k.storeKey)
	if reward.IsZero() {
		store.Delete(types.RewardKey(validator))
		return
	}
	store.Set(types.RewardKey(validator), k.cdc.MustMarshalJSON(reward))
}

// IterateRewards visits every non-zero reward balance until fn returns false.
func (k Keeper) IterateRewards(ctx sdk.Context, fn func(validator chain.Address, reward sdkmath.Uint) bool) {
	iterator := storetypes.KVStorePrefixIterator(ctx.KVStore(k.storeKey), types.RewardKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var reward sdkmath.Uint
		k.cdc.MustUnmarshalJSON(iterator.Value(), &reward)
		if !fn(types.AddressFromKey(iterator.Key()), reward) {
			break
		}
	}
}

// accrueRewards splits the fee share of amount equally across the current
// validators. The division remainder is not distributed.
func (k Keeper) accrueRewards(ctx sdk.Context, cfg types.Config, amount sdkmath.Uint) {
	validators := k.GetValidators(ctx)
	if len(validators) == 0 {
		return
	}

	share := types.FeeShare(amount, cfg.Fee).QuoUint64(uint64(len(validators)))
	if share.IsZero() {
		return
	}
	for _, v := range validators {
		k.SetReward(ctx, v, k.GetReward(ctx, v).Add(share))
	}
}

// RequestRewards pays the caller's whole accrued reward balance.
func (k Keeper) RequestRewards(ctx sdk.Context, validator chain.Address) (sdkmath.Uint, error) {
	reward := k.GetReward(ctx, validator)
	if reward.IsZero() {
		return sdkmath.Uint{}, errorsmod.Wrapf(types.ErrNoRewards, "validator %s", validator)
	}

	k.SetReward(ctx, validator, sdkmath.ZeroUint())
	if err := k.bank.Pay(ctx, validator, reward); err != nil {
		return sdkmath.Uint{}, errorsmod.Wrapf(types.ErrReleaseFailed, "pay reward %s to %s: %s", reward, validator, err)
	}

	k.Logger(ctx).Info("rewards claimed", "validator", validator.Hex(), "amount", reward.String())
	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeRewardsClaimed,
		sdk.NewAttribute(types.AttributeKeyValidator, validator.Hex()),
		sdk.NewAttribute(types.AttributeKeyAmount, reward.String()),
	))
	return reward, nil
}
