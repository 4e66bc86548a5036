package bridge

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/x/bridge/keeper"
	"github.com/manus-ai/quorum-bridge/x/bridge/types"
)

// NewHandler returns a handler for "bridge" type messages.
func NewHandler(k keeper.Keeper) chain.Handler {
	msgServer := keeper.NewMsgServerImpl(k)

	return func(ctx sdk.Context, msg chain.Msg) (any, error) {
		if err := msg.ValidateBasic(); err != nil {
			return nil, err
		}

		switch msg := msg.(type) {
		case *types.MsgTransferOwnership:
			return msgServer.TransferOwnership(ctx, msg)
		case *types.MsgSetFee:
			return msgServer.SetFee(ctx, msg)
		case *types.MsgSetThreshold:
			return msgServer.SetThreshold(ctx, msg)
		case *types.MsgSetTxExpirationTime:
			return msgServer.SetTxExpirationTime(ctx, msg)
		case *types.MsgSetMinAmountToTransfer:
			return msgServer.SetMinAmountToTransfer(ctx, msg)
		case *types.MsgSetMaxValidatorCount:
			return msgServer.SetMaxValidatorCount(ctx, msg)
		case *types.MsgAddValidator:
			return msgServer.AddValidator(ctx, msg)
		case *types.MsgRemoveValidator:
			return msgServer.RemoveValidator(ctx, msg)
		case *types.MsgAddToken:
			return msgServer.AddToken(ctx, msg)
		case *types.MsgRemoveToken:
			return msgServer.RemoveToken(ctx, msg)
		case *types.MsgSetDailyLimit:
			return msgServer.SetDailyLimit(ctx, msg)
		case *types.MsgTransferCoin:
			return msgServer.TransferCoin(ctx, msg)
		case *types.MsgTransferToken:
			return msgServer.TransferToken(ctx, msg)
		case *types.MsgRequestSwap:
			return msgServer.RequestSwap(ctx, msg)
		case *types.MsgRequestRewards:
			return msgServer.RequestRewards(ctx, msg)
		case *types.MsgCleanRequestSwaps:
			return msgServer.CleanRequestSwaps(ctx, msg)
		default:
			return nil, errorsmod.Wrapf(types.ErrUnknownRequest, "unrecognized %s message type: %T", types.ModuleName, msg)
		}
	}
}
