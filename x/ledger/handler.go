package ledger

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/x/ledger/keeper"
	"github.com/manus-ai/quorum-bridge/x/ledger/types"
)

// NewHandler routes ledger messages to the msg server.
func NewHandler(k keeper.Keeper) chain.Handler {
	msgServer := keeper.NewMsgServerImpl(k)

	return func(ctx sdk.Context, msg chain.Msg) (any, error) {
		if err := msg.ValidateBasic(); err != nil {
			return nil, err
		}

		switch msg := msg.(type) {
		case *types.MsgSend:
			return msgServer.Send(ctx, msg)
		default:
			return nil, errorsmod.Wrapf(types.ErrUnknownMsg, "unrecognized %s message type: %T", types.ModuleName, msg)
		}
	}
}
