package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/x/bridge/types"
)

func (k Keeper) GetDailyLimitWindow(ctx sdk.Context, asset chain.Address) (types.DailyLimitWindow, bool) {
	bz := ctx.KVStore(k.storeKey).Get(types.DailyLimitKey(asset))
	if bz == nil {
		return types.DailyLimitWindow{}, false
	}
	var w types.DailyLimitWindow
	k.cdc.MustUnmarshalJSON(bz, &w)
	return w, true
}

func (k Keeper) SetDailyLimitWindow(ctx sdk.Context, asset chain.Address, w types.DailyLimitWindow) {
	ctx.KVStore(k.storeKey).Set(types.DailyLimitKey(asset), k.cdc.MustMarshalJSON(w))
}

// ChargeDailyLimit spends amount from the asset's current window, rolling the
// window over first when it is older than a day.
func (k Keeper) ChargeDailyLimit(ctx sdk.Context, asset chain.Address, amount sdkmath.Uint) error {
	w, found := k.GetDailyLimitWindow(ctx, asset)
	if !found {
		return errorsmod.Wrapf(types.ErrNoLimitConfigured, "asset %s", asset)
	}

	next, err := w.Charge(amount, chain.BlockTime(ctx))
	if err != nil {
		return errorsmod.Wrapf(err, "asset %s", asset)
	}
	if next.WindowStart != w.WindowStart {
		k.Logger(ctx).Info("daily limit window rolled over", "asset", asset.Hex(), "window_start", next.WindowStart)
	}

	k.SetDailyLimitWindow(ctx, asset, next)
	return nil
}

// SetDailyLimit changes the ceiling of the native asset or a registered
// token. The spend accumulated in the current window is kept.
func (k Keeper) SetDailyLimit(ctx sdk.Context, caller, asset chain.Address, limit sdkmath.Uint) error {
	if err := k.ensureOwner(ctx, caller); err != nil {
		return err
	}
	if !k.IsTransferable(ctx, asset) {
		return errorsmod.Wrapf(types.ErrUnknownAsset, "asset %s", asset)
	}
	if types.IsNilUint(limit) || limit.IsZero() {
		return errorsmod.Wrap(types.ErrInvalidLimit, "daily limit must be positive")
	}

	w, found := k.GetDailyLimitWindow(ctx, asset)
	if !found {
		w = types.NewDailyLimitWindow(limit, chain.BlockTime(ctx))
	}
	w.Limit = limit
	k.SetDailyLimitWindow(ctx, asset, w)

	k.Logger(ctx).Info("daily limit set", "asset", asset.Hex(), "limit", limit.String())
	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeDailyLimitSet,
		sdk.NewAttribute(types.AttributeKeyAsset, asset.Hex()),
		sdk.NewAttribute(types.AttributeKeyLimit, limit.String()),
	))
	return nil
}
