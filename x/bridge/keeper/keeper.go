package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/x/bridge/types"
)

type Keeper struct {
	cdc         *codec.LegacyAmino
	storeKey    storetypes.StoreKey
	bank        types.NativeBank
	tokenLedger types.TokenLedger
}

func NewKeeper(cdc *codec.LegacyAmino, storeKey storetypes.StoreKey, bank types.NativeBank, tokenLedger types.TokenLedger) Keeper {
	return Keeper{
		cdc:         cdc,
		storeKey:    storeKey,
		bank:        bank,
		tokenLedger: tokenLedger,
	}
}

func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

func (k Keeper) GetConfig(ctx sdk.Context) types.Config {
	bz := ctx.KVStore(k.storeKey).Get(types.ConfigKey)
	if bz == nil {
		return types.DefaultConfig()
	}
	var cfg types.Config
	k.cdc.MustUnmarshalJSON(bz, &cfg)
	return cfg
}

// IsInitialized reports whether a genesis state has been written.
func (k Keeper) IsInitialized(ctx sdk.Context) bool {
	return ctx.KVStore(k.storeKey).Has(types.ConfigKey)
}

func (k Keeper) SetConfig(ctx sdk.Context, cfg types.Config) {
	ctx.KVStore(k.storeKey).Set(types.ConfigKey, k.cdc.MustMarshalJSON(cfg))
}

func (k Keeper) GetTransferNonce(ctx sdk.Context) sdkmath.Uint {
	bz := ctx.KVStore(k.storeKey).Get(types.TransferNonceKey)
	if bz == nil {
		return sdkmath.ZeroUint()
	}
	var nonce sdkmath.Uint
	k.cdc.MustUnmarshalJSON(bz, &nonce)
	return nonce
}

func (k Keeper) SetTransferNonce(ctx sdk.Context, nonce sdkmath.Uint) {
	ctx.KVStore(k.storeKey).Set(types.TransferNonceKey, k.cdc.MustMarshalJSON(nonce))
}

// incrementTransferNonce bumps the global outbound nonce and returns the new value.
func (k Keeper) incrementTransferNonce(ctx sdk.Context) (sdkmath.Uint, error) {
	nonce := k.GetTransferNonce(ctx).AddUint64(1)
	if nonce.GT(types.MaxU128) {
		return sdkmath.Uint{}, errorsmod.Wrap(types.ErrInvariantViolated, "transfer nonce overflow")
	}
	k.SetTransferNonce(ctx, nonce)
	return nonce, nil
}

func (k Keeper) ensureOwner(ctx sdk.Context, caller chain.Address) error {
	if owner := k.GetConfig(ctx).Owner; caller != owner {
		return errorsmod.Wrapf(types.ErrUnauthorized, "%s is not the owner", caller)
	}
	return nil
}
