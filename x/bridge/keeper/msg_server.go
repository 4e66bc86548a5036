package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/manus-ai/quorum-bridge/x/bridge/types"
)

type msgServer struct {
	Keeper
}

func NewMsgServerImpl(k Keeper) types.MsgServer {
	return &msgServer{Keeper: k}
}

var _ types.MsgServer = msgServer{}

func (k msgServer) TransferOwnership(goCtx context.Context, msg *types.MsgTransferOwnership) (*types.MsgEmptyResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := k.Keeper.TransferOwnership(ctx, msg.Owner, msg.NewOwner); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (k msgServer) SetFee(goCtx context.Context, msg *types.MsgSetFee) (*types.MsgEmptyResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := k.Keeper.SetFee(ctx, msg.Owner, msg.Fee); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (k msgServer) SetThreshold(goCtx context.Context, msg *types.MsgSetThreshold) (*types.MsgEmptyResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := k.Keeper.SetThreshold(ctx, msg.Owner, msg.Threshold); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (k msgServer) SetTxExpirationTime(goCtx context.Context, msg *types.MsgSetTxExpirationTime) (*types.MsgEmptyResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := k.Keeper.SetTxExpirationTime(ctx, msg.Owner, msg.TxExpirationTime); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (k msgServer) SetMinAmountToTransfer(goCtx context.Context, msg *types.MsgSetMinAmountToTransfer) (*types.MsgEmptyResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := k.Keeper.SetMinAmountToTransfer(ctx, msg.Owner, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (k msgServer) SetMaxValidatorCount(goCtx context.Context, msg *types.MsgSetMaxValidatorCount) (*types.MsgEmptyResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := k.Keeper.SetMaxValidatorCount(ctx, msg.Owner, msg.MaxValidatorCount); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (k msgServer) AddValidator(goCtx context.Context, msg *types.MsgAddValidator) (*types.MsgEmptyResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := k.Keeper.AddValidator(ctx, msg.Owner, msg.Validator); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (k msgServer) RemoveValidator(goCtx context.Context, msg *types.MsgRemoveValidator) (*types.MsgEmptyResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := k.Keeper.RemoveValidator(ctx, msg.Owner, msg.Validator); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (k msgServer) AddToken(goCtx context.Context, msg *types.MsgAddToken) (*types.MsgEmptyResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := k.Keeper.AddToken(ctx, msg.Owner, msg.Token, msg.DailyLimit); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (k msgServer) RemoveToken(goCtx context.Context, msg *types.MsgRemoveToken) (*types.MsgEmptyResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := k.Keeper.RemoveToken(ctx, msg.Owner, msg.Token); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (k msgServer) SetDailyLimit(goCtx context.Context, msg *types.MsgSetDailyLimit) (*types.MsgEmptyResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := k.Keeper.SetDailyLimit(ctx, msg.Owner, msg.Asset, msg.Limit); err != nil {
		return nil, err
	}
	return &types.MsgEmptyResponse{}, nil
}

func (k msgServer) TransferCoin(goCtx context.Context, msg *types.MsgTransferCoin) (*types.MsgTransferResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	record, err := k.Keeper.TransferCoin(ctx, msg.Sender, msg.Receiver, msg.Amount)
	if err != nil {
		return nil, err
	}

	return &types.MsgTransferResponse{TransferNonce: record.TransferNonce}, nil
}

func (k msgServer) TransferToken(goCtx context.Context, msg *types.MsgTransferToken) (*types.MsgTransferResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	record, err := k.Keeper.TransferToken(ctx, msg.Sender, msg.Receiver, msg.Amount, msg.Asset)
	if err != nil {
		return nil, err
	}

	return &types.MsgTransferResponse{TransferNonce: record.TransferNonce}, nil
}

func (k msgServer) RequestSwap(goCtx context.Context, msg *types.MsgRequestSwap) (*types.MsgRequestSwapResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	res, err := k.Keeper.RequestSwap(ctx, msg.Validator, msg.Message)
	if err != nil {
		return nil, err
	}

	return &types.MsgRequestSwapResponse{
		Hash:      res.Hash.Hex(),
		Approvals: res.Approvals,
		Executed:  res.Executed,
	}, nil
}

func (k msgServer) RequestRewards(goCtx context.Context, msg *types.MsgRequestRewards) (*types.MsgRequestRewardsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	amount, err := k.Keeper.RequestRewards(ctx, msg.Validator)
	if err != nil {
		return nil, err
	}

	return &types.MsgRequestRewardsResponse{Amount: amount}, nil
}

func (k msgServer) CleanRequestSwaps(goCtx context.Context, msg *types.MsgCleanRequestSwaps) (*types.MsgCleanRequestSwapsResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	removed, err := k.Keeper.CleanRequestSwaps(ctx, msg.Owner)
	if err != nil {
		return nil, err
	}

	return &types.MsgCleanRequestSwapsResponse{Removed: removed}, nil
}
