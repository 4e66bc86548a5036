package keeper

import (
	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/x/bridge/types"
)

// TransferCoin takes amount of native coin from sender into the bridge
// reserve for delivery to receiver on the remote chain.
func (k Keeper) TransferCoin(ctx sdk.Context, sender chain.Address, receiver string, amount sdkmath.Uint) (types.TransferRecord, error) {
	cfg := k.GetConfig(ctx)
	if amount.IsZero() || amount.LT(cfg.MinAmountToTransfer) {
		return types.TransferRecord{}, errorsmod.Wrapf(types.ErrBelowMinimum, "%s < %s", amount, cfg.MinAmountToTransfer)
	}

	if err := k.bank.Attach(ctx, sender, amount); err != nil {
		return types.TransferRecord{}, errorsmod.Wrap(types.ErrInsufficientBalance, err.Error())
	}
	if err := k.ChargeDailyLimit(ctx, types.NativeAsset, amount); err != nil {
		return types.TransferRecord{}, err
	}
	k.accrueRewards(ctx, cfg, amount)

	return k.recordTransfer(ctx, sender, receiver, amount, types.NativeAsset)
}

// TransferToken burns amount of a registered token from sender for delivery
// to receiver on the remote chain. The native asset is taken from the
// sender's coin balance as in TransferCoin.
func (k Keeper) TransferToken(ctx sdk.Context, sender chain.Address, receiver string, amount sdkmath.Uint, asset chain.Address) (types.TransferRecord, error) {
	if asset == types.NativeAsset {
		return k.TransferCoin(ctx, sender, receiver, amount)
	}
	if !k.IsToken(ctx, asset) {
		return types.TransferRecord{}, errorsmod.Wrapf(types.ErrUnknownAsset, "token %s is not registered", asset)
	}

	cfg := k.GetConfig(ctx)
	if amount.IsZero() || amount.LT(cfg.MinAmountToTransfer) {
		return types.TransferRecord{}, errorsmod.Wrapf(types.ErrBelowMinimum, "%s < %s", amount, cfg.MinAmountToTransfer)
	}

	if balance := k.tokenLedger.BalanceOf(ctx, asset, sender); balance.LT(amount) {
		return types.TransferRecord{}, errorsmod.Wrapf(types.ErrInsufficientBalance, "balance %s, amount %s", balance, amount)
	}
	if !k.tokenLedger.Burn(ctx, asset, amount, sender) {
		return types.TransferRecord{}, errorsmod.Wrapf(types.ErrBurnFailed, "burn %s of %s from %s", amount, asset, sender)
	}
	if err := k.ChargeDailyLimit(ctx, asset, amount); err != nil {
		return types.TransferRecord{}, err
	}

	return k.recordTransfer(ctx, sender, receiver, amount, asset)
}

func (k Keeper) recordTransfer(ctx sdk.Context, sender chain.Address, receiver string, amount sdkmath.Uint, asset chain.Address) (types.TransferRecord, error) {
	nonce, err := k.incrementTransferNonce(ctx)
	if err != nil {
		return types.TransferRecord{}, err
	}

	record := types.TransferRecord{
		Receiver:      receiver,
		Sender:        sender,
		Amount:        amount,
		Asset:         asset,
		TransferNonce: nonce,
		Timestamp:     chain.BlockTime(ctx),
	}
	ctx.EventManager().EmitEvent(record.Event())

	k.Logger(ctx).Info("outbound transfer",
		"sender", sender.Hex(),
		"receiver", receiver,
		"asset", asset.Hex(),
		"amount", amount.String(),
		"transfer_nonce", nonce.String(),
	)
	return record, nil
}
