package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/manus-ai/quorum-bridge/x/ledger/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns the ledger msg server.
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

func (m msgServer) Send(goCtx context.Context, msg *types.MsgSend) (*types.MsgSendResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	if m.BlockedAddr(msg.From) {
		return nil, errorsmod.Wrapf(types.ErrUnauthorized, "%s is a module account and cannot send funds", msg.From)
	}
	if m.BlockedAddr(msg.To) {
		return nil, errorsmod.Wrapf(types.ErrUnauthorized, "%s is a module account and cannot receive funds", msg.To)
	}
	if err := m.Keeper.Send(ctx, msg.Asset, msg.From, msg.To, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgSendResponse{}, nil
}

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns the ledger query server.
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

func (q queryServer) Balance(goCtx context.Context, req *types.QueryBalanceRequest) (*types.QueryBalanceResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryBalanceResponse{Balance: q.GetBalance(ctx, req.Asset, req.Account)}, nil
}

func (q queryServer) TotalSupply(goCtx context.Context, req *types.QueryTotalSupplyRequest) (*types.QueryTotalSupplyResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryTotalSupplyResponse{TotalSupply: q.GetTotalSupply(ctx, req.Asset)}, nil
}
