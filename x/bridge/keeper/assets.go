package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	"cosmossdk.io/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/x/bridge/types"
)

func (k Keeper) IsToken(ctx sdk.Context, asset chain.Address) bool {
	return ctx.KVStore(k.storeKey).Has(types.TokenKey(asset))
}

// IsTransferable is true for the native sentinel and every registered token.
func (k Keeper) IsTransferable(ctx sdk.Context, asset chain.Address) bool {
	return asset == types.NativeAsset || k.IsToken(ctx, asset)
}

func (k Keeper) GetTokens(ctx sdk.Context) []chain.Address {
	store := prefix.NewStore(ctx.KVStore(k.storeKey), types.TokenKeyPrefix)
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	var tokens []chain.Address
	for ; iterator.Valid(); iterator.Next() {
		var token chain.Address
		copy(token[:], iterator.Key())
		tokens = append(tokens, token)
	}
	return tokens
}

// AddToken registers a token with a fresh risk-limit window.
func (k Keeper) AddToken(ctx sdk.Context, caller, token chain.Address, dailyLimit sdkmath.Uint) error {
	if err := k.ensureOwner(ctx, caller); err != nil {
		return err
	}
	if token == types.NativeAsset {
		return errorsmod.Wrap(types.ErrAlreadyExists, "native asset is always transferable")
	}
	if k.IsToken(ctx, token) {
		return errorsmod.Wrapf(types.ErrAlreadyExists, "token %s", token)
	}
	if types.IsNilUint(dailyLimit) || dailyLimit.IsZero() {
		return errorsmod.Wrap(types.ErrInvalidLimit, "daily limit must be positive")
	}

	ctx.KVStore(k.storeKey).Set(types.TokenKey(token), present)
	k.SetDailyLimitWindow(ctx, token, types.NewDailyLimitWindow(dailyLimit, chain.BlockTime(ctx)))

	k.Logger(ctx).Info("token added", "token", token.Hex(), "daily_limit", dailyLimit.String())
	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeTokenAdded,
		sdk.NewAttribute(types.AttributeKeyAsset, token.Hex()),
		sdk.NewAttribute(types.AttributeKeyLimit, dailyLimit.String()),
	))
	return nil
}

// RemoveToken unregisters a token together with its limit and spend window.
func (k Keeper) RemoveToken(ctx sdk.Context, caller, token chain.Address) error {
	if err := k.ensureOwner(ctx, caller); err != nil {
		return err
	}
	if token == types.NativeAsset {
		return errorsmod.Wrap(types.ErrNotFound, "native asset cannot be removed")
	}
	if !k.IsToken(ctx, token) {
		return errorsmod.Wrapf(types.ErrNotFound, "token %s", token)
	}

	store := ctx.KVStore(k.storeKey)
	store.Delete(types.TokenKey(token))
	store.Delete(types.DailyLimitKey(token))

	k.Logger(ctx).Info("token removed", "token", token.Hex())
	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeTokenRemoved,
		sdk.NewAttribute(types.AttributeKeyAsset, token.Hex()),
	))
	return nil
}
