package keeper

import (
	errorsmod "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/x/bridge/types"
)

var present = []byte{0x01}

func (k Keeper) IsValidator(ctx sdk.Context, addr chain.Address) bool {
	return ctx.KVStore(k.storeKey).Has(types.ValidatorKey(addr))
}

// GetValidators returns the current members. Order is not part of the contract.
func (k Keeper) GetValidators(ctx sdk.Context) []chain.Address {
	var validators []chain.Address
	iterator := storetypes.KVStorePrefixIterator(ctx.KVStore(k.storeKey), types.ValidatorKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		validators = append(validators, types.AddressFromKey(iterator.Key()))
	}
	return validators
}

func (k Keeper) ValidatorCount(ctx sdk.Context) int {
	return len(k.GetValidators(ctx))
}

func (k Keeper) setValidator(ctx sdk.Context, addr chain.Address) {
	ctx.KVStore(k.storeKey).Set(types.ValidatorKey(addr), present)
}

func (k Keeper) AddValidator(ctx sdk.Context, caller, validator chain.Address) error {
	if err := k.ensureOwner(ctx, caller); err != nil {
		return err
	}
	if k.IsValidator(ctx, validator) {
		return errorsmod.Wrapf(types.ErrAlreadyExists, "validator %s", validator)
	}

	cfg := k.GetConfig(ctx)
	if count := k.ValidatorCount(ctx); count+1 > int(cfg.MaxValidatorCount) {
		return errorsmod.Wrapf(types.ErrCapacityExceeded, "%d validators, max %d", count, cfg.MaxValidatorCount)
	}

	k.setValidator(ctx, validator)

	k.Logger(ctx).Info("validator added", "validator", validator.Hex())
	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeValidatorAdded,
		sdk.NewAttribute(types.AttributeKeyValidator, validator.Hex()),
	))
	return nil
}

// RemoveValidator drops a member unless that would leave fewer validators
// than the signature threshold. Accrued rewards stay claimable.
func (k Keeper) RemoveValidator(ctx sdk.Context, caller, validator chain.Address) error {
	if err := k.ensureOwner(ctx, caller); err != nil {
		return err
	}
	if !k.IsValidator(ctx, validator) {
		return errorsmod.Wrapf(types.ErrNotFound, "validator %s", validator)
	}

	cfg := k.GetConfig(ctx)
	if count := k.ValidatorCount(ctx); count-1 < int(cfg.SignatureThreshold) {
		return errorsmod.Wrapf(types.ErrQuorumUnsafe, "%d validators, threshold %d", count, cfg.SignatureThreshold)
	}

	ctx.KVStore(k.storeKey).Delete(types.ValidatorKey(validator))

	k.Logger(ctx).Info("validator removed", "validator", validator.Hex())
	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeValidatorRemoved,
		sdk.NewAttribute(types.AttributeKeyValidator, validator.Hex()),
	))
	return nil
}
