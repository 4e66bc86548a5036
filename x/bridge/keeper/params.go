package keeper

import (
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/x/bridge/types"
)

// updateConfig applies an owner-gated change after validating the result.
func (k Keeper) updateConfig(ctx sdk.Context, caller chain.Address, param, value string, mutate func(cfg *types.Config) error) error {
	if err := k.ensureOwner(ctx, caller); err != nil {
		return err
	}

	cfg := k.GetConfig(ctx)
	if err := mutate(&cfg); err != nil {
		return err
	}
	k.SetConfig(ctx, cfg)

	k.Logger(ctx).Info("config updated", "param", param, "value", value)
	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeConfigUpdated,
		sdk.NewAttribute(types.AttributeKeyParam, param),
		sdk.NewAttribute(types.AttributeKeyValue, value),
	))
	return nil
}

func (k Keeper) TransferOwnership(ctx sdk.Context, caller, newOwner chain.Address) error {
	return k.updateConfig(ctx, caller, "owner", newOwner.Hex(), func(cfg *types.Config) error {
		cfg.Owner = newOwner
		return nil
	})
}

func (k Keeper) SetFee(ctx sdk.Context, caller chain.Address, fee uint64) error {
	return k.updateConfig(ctx, caller, "fee", strconv.FormatUint(fee, 10), func(cfg *types.Config) error {
		if err := types.ValidateFee(fee); err != nil {
			return err
		}
		cfg.Fee = fee
		return nil
	})
}

func (k Keeper) SetThreshold(ctx sdk.Context, caller chain.Address, threshold uint16) error {
	return k.updateConfig(ctx, caller, "signature_threshold", strconv.FormatUint(uint64(threshold), 10), func(cfg *types.Config) error {
		if err := types.ValidateThreshold(threshold, cfg.MaxValidatorCount); err != nil {
			return err
		}
		cfg.SignatureThreshold = threshold
		return nil
	})
}

func (k Keeper) SetTxExpirationTime(ctx sdk.Context, caller chain.Address, seconds uint64) error {
	return k.updateConfig(ctx, caller, "tx_expiration_time", strconv.FormatUint(seconds, 10), func(cfg *types.Config) error {
		if seconds == 0 {
			return errorsmod.Wrap(types.ErrInvalidConfig, "tx expiration time must be positive")
		}
		cfg.TxExpirationTime = seconds
		return nil
	})
}

func (k Keeper) SetMinAmountToTransfer(ctx sdk.Context, caller chain.Address, amount sdkmath.Uint) error {
	return k.updateConfig(ctx, caller, "min_amount_to_transfer", amount.String(), func(cfg *types.Config) error {
		if err := types.ValidateAmount(amount); err != nil {
			return errorsmod.Wrap(types.ErrInvalidConfig, err.Error())
		}
		cfg.MinAmountToTransfer = amount
		return nil
	})
}

// SetMaxValidatorCount changes the validator capacity. It may not drop below
// the current membership or the signature threshold.
func (k Keeper) SetMaxValidatorCount(ctx sdk.Context, caller chain.Address, max uint16) error {
	return k.updateConfig(ctx, caller, "max_validator_count", strconv.FormatUint(uint64(max), 10), func(cfg *types.Config) error {
		if max == 0 {
			return errorsmod.Wrap(types.ErrInvalidConfig, "max validator count must be positive")
		}
		if max < cfg.SignatureThreshold {
			return errorsmod.Wrapf(types.ErrInvalidConfig, "max validator count %d below signature threshold %d", max, cfg.SignatureThreshold)
		}
		if count := k.ValidatorCount(ctx); count > int(max) {
			return errorsmod.Wrapf(types.ErrInvalidConfig, "max validator count %d below current membership %d", max, count)
		}
		cfg.MaxValidatorCount = max
		return nil
	})
}
