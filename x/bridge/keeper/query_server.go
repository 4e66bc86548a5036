package keeper

import (
	"bytes"
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"golang.org/x/exp/slices"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/x/bridge/types"
)

// Querier serves read-only requests over a Keeper.
type Querier struct {
	Keeper
}

func NewQuerier(k Keeper) Querier {
	return Querier{Keeper: k}
}

var _ types.QueryServer = Querier{}

func sortAddresses(addrs []chain.Address) []chain.Address {
	slices.SortFunc(addrs, func(a, b chain.Address) int {
		return bytes.Compare(a[:], b[:])
	})
	return addrs
}

func (k Querier) Config(goCtx context.Context, _ *types.QueryConfigRequest) (*types.QueryConfigResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryConfigResponse{Config: k.GetConfig(ctx)}, nil
}

func (k Querier) Validators(goCtx context.Context, _ *types.QueryValidatorsRequest) (*types.QueryValidatorsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryValidatorsResponse{Validators: sortAddresses(k.GetValidators(ctx))}, nil
}

func (k Querier) IsValidator(goCtx context.Context, req *types.QueryIsValidatorRequest) (*types.QueryIsValidatorResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryIsValidatorResponse{IsValidator: k.Keeper.IsValidator(ctx, req.Address)}, nil
}

func (k Querier) Tokens(goCtx context.Context, _ *types.QueryTokensRequest) (*types.QueryTokensResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryTokensResponse{Tokens: sortAddresses(k.GetTokens(ctx))}, nil
}

func (k Querier) DailyLimit(goCtx context.Context, req *types.QueryDailyLimitRequest) (*types.QueryDailyLimitResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	w, found := k.GetDailyLimitWindow(ctx, req.Asset)
	if !found {
		return nil, errorsmod.Wrapf(types.ErrNotFound, "daily limit for asset %s", req.Asset)
	}

	now := chain.BlockTime(ctx)
	effective := w.Rollover(now)
	return &types.QueryDailyLimitResponse{
		Asset:          req.Asset,
		Window:         w,
		EffectiveSpent: types.OrZero(effective.Spent),
		Remaining:      w.Remaining(now),
	}, nil
}

func (k Querier) PendingSwap(goCtx context.Context, req *types.QueryPendingSwapRequest) (*types.QueryPendingSwapResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	p, found := k.GetPendingSwap(ctx, req.Hash)
	if !found {
		return nil, errorsmod.Wrapf(types.ErrNotFound, "pending swap %s", req.Hash)
	}
	return &types.QueryPendingSwapResponse{PendingSwap: p, Approvals: len(p.Attesters)}, nil
}

func (k Querier) PendingSwaps(goCtx context.Context, _ *types.QueryPendingSwapsRequest) (*types.QueryPendingSwapsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryPendingSwapsResponse{PendingSwaps: k.GetPendingSwaps(ctx)}, nil
}

func (k Querier) SwapHash(_ context.Context, req *types.QuerySwapHashRequest) (*types.QuerySwapHashResponse, error) {
	hash, err := req.Message.Hash()
	if err != nil {
		return nil, err
	}
	return &types.QuerySwapHashResponse{Hash: hash}, nil
}

func (k Querier) TransferNonce(goCtx context.Context, _ *types.QueryTransferNonceRequest) (*types.QueryTransferNonceResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryTransferNonceResponse{TransferNonce: k.GetTransferNonce(ctx)}, nil
}

func (k Querier) Reward(goCtx context.Context, req *types.QueryRewardRequest) (*types.QueryRewardResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryRewardResponse{Reward: k.GetReward(ctx, req.Validator)}, nil
}
