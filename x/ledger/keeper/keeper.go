package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/x/ledger/types"
)

// Keeper stores native and token balances. The native coin is the asset
// identified by types.NativeAsset; every other asset is a token whose
// supply changes only through Mint and Burn.
type Keeper struct {
	storeKey     storetypes.StoreKey
	reserve      chain.Address
	blockedAddrs map[chain.Address]bool
}

// NewKeeper returns a ledger whose native reserve account is reserve.
// Module accounts in blockedAddrs, and the reserve itself, can only be
// moved by keepers and never by a MsgSend.
func NewKeeper(storeKey storetypes.StoreKey, reserve chain.Address, blockedAddrs map[chain.Address]bool) Keeper {
	blocked := make(map[chain.Address]bool, len(blockedAddrs)+1)
	for addr, ok := range blockedAddrs {
		blocked[addr] = ok
	}
	blocked[reserve] = true

	return Keeper{
		storeKey:     storeKey,
		reserve:      reserve,
		blockedAddrs: blocked,
	}
}

func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

func (k Keeper) getUint(store storetypes.KVStore, key []byte) sdkmath.Uint {
	bz := store.Get(key)
	if bz == nil {
		return sdkmath.ZeroUint()
	}
	var u sdkmath.Uint
	if err := u.Unmarshal(bz); err != nil {
		panic(err)
	}
	return u
}

func (k Keeper) setUint(store storetypes.KVStore, key []byte, u sdkmath.Uint) {
	if u.IsZero() {
		store.Delete(key)
		return
	}
	bz, err := u.Marshal()
	if err != nil {
		panic(err)
	}
	store.Set(key, bz)
}

// Reserve is the account holding the bridge's native coin.
func (k Keeper) Reserve() chain.Address {
	return k.reserve
}

// BlockedAddr reports whether addr is a module account that user messages
// may not move funds from or to.
func (k Keeper) BlockedAddr(addr chain.Address) bool {
	return k.blockedAddrs[addr]
}

func (k Keeper) GetBalance(goCtx context.Context, asset, account chain.Address) sdkmath.Uint {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return k.getUint(ctx.KVStore(k.storeKey), types.BalanceKey(asset, account))
}

func (k Keeper) setBalance(ctx sdk.Context, asset, account chain.Address, amount sdkmath.Uint) {
	k.setUint(ctx.KVStore(k.storeKey), types.BalanceKey(asset, account), amount)
}

func (k Keeper) GetTotalSupply(goCtx context.Context, asset chain.Address) sdkmath.Uint {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return k.getUint(ctx.KVStore(k.storeKey), types.SupplyKey(asset))
}

func (k Keeper) setTotalSupply(ctx sdk.Context, asset chain.Address, amount sdkmath.Uint) {
	k.setUint(ctx.KVStore(k.storeKey), types.SupplyKey(asset), amount)
}

// Send moves amount of asset from one account to another.
func (k Keeper) Send(goCtx context.Context, asset, from, to chain.Address, amount sdkmath.Uint) error {
	ctx := sdk.UnwrapSDKContext(goCtx)

	fromBalance := k.GetBalance(ctx, asset, from)
	if fromBalance.LT(amount) {
		return errorsmod.Wrapf(types.ErrInsufficientFunds, "%s has %s, needs %s", from, fromBalance, amount)
	}
	if from == to {
		return nil
	}

	k.setBalance(ctx, asset, from, fromBalance.Sub(amount))
	k.setBalance(ctx, asset, to, k.GetBalance(ctx, asset, to).Add(amount))
	return nil
}

// Attach moves native coin from an account into the reserve.
func (k Keeper) Attach(ctx context.Context, from chain.Address, amount sdkmath.Uint) error {
	return k.Send(ctx, types.NativeAsset, from, k.reserve, amount)
}

// Pay moves native coin out of the reserve.
func (k Keeper) Pay(ctx context.Context, to chain.Address, amount sdkmath.Uint) error {
	return k.Send(ctx, types.NativeAsset, k.reserve, to, amount)
}

// BalanceOf returns the token balance of account.
func (k Keeper) BalanceOf(ctx context.Context, asset, account chain.Address) sdkmath.Uint {
	return k.GetBalance(ctx, asset, account)
}

// Mint credits amount of a token to account. It refuses the native asset.
func (k Keeper) Mint(goCtx context.Context, asset chain.Address, amount sdkmath.Uint, account chain.Address) bool {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if asset == types.NativeAsset {
		k.Logger(ctx).Warn("refused to mint native asset", "account", account.Hex())
		return false
	}

	k.setBalance(ctx, asset, account, k.GetBalance(ctx, asset, account).Add(amount))
	k.setTotalSupply(ctx, asset, k.GetTotalSupply(ctx, asset).Add(amount))
	return true
}

// Burn debits amount of a token from account. It refuses the native asset
// and balances smaller than amount.
func (k Keeper) Burn(goCtx context.Context, asset chain.Address, amount sdkmath.Uint, account chain.Address) bool {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if asset == types.NativeAsset {
		k.Logger(ctx).Warn("refused to burn native asset", "account", account.Hex())
		return false
	}

	balance := k.GetBalance(ctx, asset, account)
	if balance.LT(amount) {
		return false
	}
	supply := k.GetTotalSupply(ctx, asset)
	if supply.LT(amount) {
		return false
	}

	k.setBalance(ctx, asset, account, balance.Sub(amount))
	k.setTotalSupply(ctx, asset, supply.Sub(amount))
	return true
}

// IterateBalances visits every non-zero balance until fn returns false.
func (k Keeper) IterateBalances(goCtx context.Context, fn func(asset, account chain.Address, amount sdkmath.Uint) bool) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	iterator := storetypes.KVStorePrefixIterator(ctx.KVStore(k.storeKey), types.BalanceKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		asset, account := types.SplitBalanceKey(iterator.Key())
		var amount sdkmath.Uint
		if err := amount.Unmarshal(iterator.Value()); err != nil {
			panic(err)
		}
		if !fn(asset, account, amount) {
			break
		}
	}
}
