package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/x/auth/types"
)

// Keeper tracks the next expected sequence of every account that has sent
// a signed transaction.
type Keeper struct {
	storeKey storetypes.StoreKey
}

func NewKeeper(storeKey storetypes.StoreKey) Keeper {
	return Keeper{storeKey: storeKey}
}

func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

func (k Keeper) GetSequence(goCtx context.Context, addr chain.Address) uint64 {
	ctx := sdk.UnwrapSDKContext(goCtx)
	bz := ctx.KVStore(k.storeKey).Get(types.SequenceKey(addr))
	if bz == nil {
		return 0
	}
	return sdk.BigEndianToUint64(bz)
}

func (k Keeper) SetSequence(ctx sdk.Context, addr chain.Address, sequence uint64) {
	ctx.KVStore(k.storeKey).Set(types.SequenceKey(addr), sdk.Uint64ToBigEndian(sequence))
}

// IterateAccounts visits every account with a stored sequence until fn
// returns false.
func (k Keeper) IterateAccounts(ctx sdk.Context, fn func(acc types.Account) bool) {
	iterator := storetypes.KVStorePrefixIterator(ctx.KVStore(k.storeKey), types.SequenceKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		acc := types.Account{
			Address:  types.AddressFromSequenceKey(iterator.Key()),
			Sequence: sdk.BigEndianToUint64(iterator.Value()),
		}
		if !fn(acc) {
			break
		}
	}
}

// VerifyTx checks that tx was signed by signer at its current sequence and
// consumes that sequence. Callers run it inside the same atomic call as the
// message so a rejected message does not consume the sequence.
func (k Keeper) VerifyTx(ctx sdk.Context, tx types.SignedTx, signer chain.Address) error {
	recovered, err := tx.Signer()
	if err != nil {
		return err
	}
	if recovered != signer {
		return errorsmod.Wrapf(types.ErrSignerMismatch, "signed by %s, message signer is %s", recovered, signer)
	}

	sequence := k.GetSequence(ctx, signer)
	if tx.Sequence != sequence {
		return errorsmod.Wrapf(types.ErrWrongSequence, "expected %d, got %d", sequence, tx.Sequence)
	}
	k.SetSequence(ctx, signer, sequence+1)

	k.Logger(ctx).Debug("transaction authenticated", "signer", signer.Hex(), "sequence", sequence)
	return nil
}

func (k Keeper) InitGenesis(ctx sdk.Context, gs types.GenesisState) {
	for _, acc := range gs.Accounts {
		k.SetSequence(ctx, acc.Address, acc.Sequence)
	}
}

func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	gs := types.DefaultGenesis()
	k.IterateAccounts(ctx, func(acc types.Account) bool {
		gs.Accounts = append(gs.Accounts, acc)
		return true
	})
	return gs
}

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns the auth query server.
func NewQueryServerImpl(k Keeper) types.QueryServer {
	return queryServer{Keeper: k}
}

func (q queryServer) Account(goCtx context.Context, req *types.QueryAccountRequest) (*types.QueryAccountResponse, error) {
	return &types.QueryAccountResponse{Account: types.Account{
		Address:  req.Address,
		Sequence: q.GetSequence(goCtx, req.Address),
	}}, nil
}
