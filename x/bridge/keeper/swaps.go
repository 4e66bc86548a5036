package keeper

import (
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/ethereum/go-ethereum/common"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/x/bridge/types"
)

func (k Keeper) GetPendingSwap(ctx sdk.Context, hash common.Hash) (types.PendingSwap, bool) {
	bz := ctx.KVStore(k.storeKey).Get(types.PendingSwapKey(hash))
	if bz == nil {
		return types.PendingSwap{}, false
	}
	var approvals types.SwapApprovals
	k.cdc.MustUnmarshalJSON(bz, &approvals)
	return types.PendingSwap{Hash: hash, Attesters: approvals.Attesters}, true
}

func (k Keeper) SetPendingSwap(ctx sdk.Context, p types.PendingSwap) {
	bz := k.cdc.MustMarshalJSON(types.SwapApprovals{Attesters: p.Attesters})
	ctx.KVStore(k.storeKey).Set(types.PendingSwapKey(p.Hash), bz)
}

func (k Keeper) deletePendingSwap(ctx sdk.Context, hash common.Hash) {
	ctx.KVStore(k.storeKey).Delete(types.PendingSwapKey(hash))
}

func (k Keeper) GetPendingSwaps(ctx sdk.Context) []types.PendingSwap {
	iterator := storetypes.KVStorePrefixIterator(ctx.KVStore(k.storeKey), types.PendingSwapKeyPrefix)
	defer iterator.Close()

	var swaps []types.PendingSwap
	for ; iterator.Valid(); iterator.Next() {
		var approvals types.SwapApprovals
		k.cdc.MustUnmarshalJSON(iterator.Value(), &approvals)
		swaps = append(swaps, types.PendingSwap{
			Hash:      types.SwapHashFromKey(iterator.Key()),
			Attesters: approvals.Attesters,
		})
	}
	return swaps
}

// SwapResult reports the state of a swap after an attestation.
type SwapResult struct {
	Hash      common.Hash
	Approvals int
	Executed  bool
}

// checkFresh accepts a message no older than the expiration time and not
// dated after the current block.
func checkFresh(now, timestamp, expiration uint64) error {
	if timestamp > now {
		return errorsmod.Wrapf(types.ErrExpired, "timestamp %d is ahead of block time %d", timestamp, now)
	}
	if now-timestamp > expiration {
		return errorsmod.Wrapf(types.ErrExpired, "message timestamp %d, now %d", timestamp, now)
	}
	return nil
}

// RequestSwap records validator's attestation of msg. The attestation that
// brings the distinct attester count to the signature threshold releases the
// funds and deletes the pending entry within the same call.
func (k Keeper) RequestSwap(ctx sdk.Context, validator chain.Address, msg types.SwapMessage) (SwapResult, error) {
	if !k.IsValidator(ctx, validator) {
		return SwapResult{}, errorsmod.Wrapf(types.ErrUnauthorized, "%s is not a validator", validator)
	}

	cfg := k.GetConfig(ctx)
	if msg.ChainID != cfg.ChainID {
		return SwapResult{}, errorsmod.Wrapf(types.ErrChainMismatch, "got %d, expected %d", msg.ChainID, cfg.ChainID)
	}
	if err := checkFresh(chain.BlockTime(ctx), msg.Timestamp, cfg.TxExpirationTime); err != nil {
		return SwapResult{}, err
	}
	if !k.IsTransferable(ctx, msg.Asset) {
		return SwapResult{}, errorsmod.Wrapf(types.ErrUnknownAsset, "asset %s", msg.Asset)
	}

	hash, err := msg.Hash()
	if err != nil {
		return SwapResult{}, errorsmod.Wrap(types.ErrInvariantViolated, err.Error())
	}

	pending, found := k.GetPendingSwap(ctx, hash)
	if !found {
		pending = types.PendingSwap{Hash: hash}
	}
	if pending.HasAttested(validator) {
		return SwapResult{}, errorsmod.Wrapf(types.ErrDuplicateApproval, "validator %s swap %s", validator, hash)
	}
	pending.Attesters = append(pending.Attesters, validator)
	approvals := len(pending.Attesters)

	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeSwapApproved,
		sdk.NewAttribute(types.AttributeKeyHash, hash.Hex()),
		sdk.NewAttribute(types.AttributeKeyValidator, validator.Hex()),
		sdk.NewAttribute(types.AttributeKeyApprovals, strconv.Itoa(approvals)),
	))

	if approvals < int(cfg.SignatureThreshold) {
		k.SetPendingSwap(ctx, pending)
		k.Logger(ctx).Info("swap approval recorded", "hash", hash.Hex(), "validator", validator.Hex(), "approvals", approvals)
		return SwapResult{Hash: hash, Approvals: approvals}, nil
	}

	if err := k.release(ctx, cfg, msg.Asset, msg.Amount, msg.Receiver); err != nil {
		return SwapResult{}, err
	}
	k.deletePendingSwap(ctx, hash)

	k.Logger(ctx).Info("swap executed",
		"hash", hash.Hex(),
		"asset", msg.Asset.Hex(),
		"amount", msg.Amount.String(),
		"receiver", msg.Receiver.Hex(),
		"approvals", approvals,
	)
	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeSwapExecuted,
		sdk.NewAttribute(types.AttributeKeyHash, hash.Hex()),
		sdk.NewAttribute(types.AttributeKeyReceiver, msg.Receiver.Hex()),
		sdk.NewAttribute(types.AttributeKeyAmount, msg.Amount.String()),
		sdk.NewAttribute(types.AttributeKeyAsset, msg.Asset.Hex()),
		sdk.NewAttribute(types.AttributeKeyTransferNonce, msg.TransferNonce.String()),
	))
	return SwapResult{Hash: hash, Approvals: approvals, Executed: true}, nil
}

// release pays out a quorum-approved swap net of fee. Collaborator refusals
// are fatal and abort the whole call.
func (k Keeper) release(ctx sdk.Context, cfg types.Config, asset chain.Address, amount sdkmath.Uint, receiver chain.Address) error {
	if err := k.ChargeDailyLimit(ctx, asset, amount); err != nil {
		return err
	}

	amountToSend := types.AmountAfterFee(amount, cfg.Fee)

	if asset == types.NativeAsset {
		if err := k.bank.Pay(ctx, receiver, amountToSend); err != nil {
			return errorsmod.Wrapf(types.ErrReleaseFailed, "pay %s to %s: %s", amountToSend, receiver, err)
		}
		// native releases accrue rewards, token releases do not
		k.accrueRewards(ctx, cfg, amount)
		return nil
	}

	if !k.tokenLedger.Mint(ctx, asset, amountToSend, receiver) {
		return errorsmod.Wrapf(types.ErrMintFailed, "mint %s of %s to %s", amountToSend, asset, receiver)
	}
	return nil
}

// CleanRequestSwaps deletes every pending approval set, including partially
// attested ones.
func (k Keeper) CleanRequestSwaps(ctx sdk.Context, caller chain.Address) (int, error) {
	if err := k.ensureOwner(ctx, caller); err != nil {
		return 0, err
	}

	store := ctx.KVStore(k.storeKey)
	iterator := storetypes.KVStorePrefixIterator(store, types.PendingSwapKeyPrefix)
	var keys [][]byte
	for ; iterator.Valid(); iterator.Next() {
		keys = append(keys, iterator.Key())
	}
	iterator.Close()

	for _, key := range keys {
		store.Delete(key)
	}

	k.Logger(ctx).Info("pending swaps purged", "count", len(keys))
	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypePendingSwapsPurge,
		sdk.NewAttribute(types.AttributeKeyCount, strconv.Itoa(len(keys))),
	))
	return len(keys), nil
}
