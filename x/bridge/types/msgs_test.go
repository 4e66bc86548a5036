package types_test

import (
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/x/bridge/types"
)

var (
	owner     = chain.AddressFromName("owner")
	validator = chain.AddressFromName("validator")
	user      = chain.AddressFromName("user")
	token     = chain.AddressFromName("token")
)

func TestMsgTransferCoin_ValidateBasic(t *testing.T) {
	tests := []struct {
		name string
		msg  types.MsgTransferCoin
		err  error
	}{
		{
			name: "empty sender",
			msg:  types.MsgTransferCoin{Receiver: "remote", Amount: sdkmath.NewUint(10)},
			err:  types.ErrInvalidAddress,
		},
		{
			name: "empty receiver",
			msg:  types.MsgTransferCoin{Sender: user, Amount: sdkmath.NewUint(10)},
			err:  types.ErrInvalidAddress,
		},
		{
			name: "amount not set",
			msg:  types.MsgTransferCoin{Sender: user, Receiver: "remote"},
			err:  types.ErrInvalidAmount,
		},
		{
			name: "amount overflows u128",
			msg:  types.MsgTransferCoin{Sender: user, Receiver: "remote", Amount: types.MaxU128.AddUint64(1)},
			err:  types.ErrInvalidAmount,
		},
		{
			name: "valid message",
			msg:  types.MsgTransferCoin{Sender: user, Receiver: "remote", Amount: types.MaxU128},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMsgRequestSwap_ValidateBasic(t *testing.T) {
	valid := types.SwapMessage{
		ChainID:       1,
		Receiver:      user,
		Sender:        "fooBar",
		Timestamp:     1000,
		Amount:        sdkmath.NewUint(100),
		Asset:         types.NativeAsset,
		TransferNonce: sdkmath.NewUint(1),
	}

	require.NoError(t, types.NewMsgRequestSwap(validator, valid).ValidateBasic())
	require.ErrorIs(t, types.NewMsgRequestSwap(chain.ZeroAddress, valid).ValidateBasic(), types.ErrInvalidAddress)

	noNonce := valid
	noNonce.TransferNonce = sdkmath.Uint{}
	require.ErrorIs(t, types.NewMsgRequestSwap(validator, noNonce).ValidateBasic(), types.ErrInvalidAmount)
}

func TestMsgRouting(t *testing.T) {
	msgs := []chain.Msg{
		types.NewMsgTransferOwnership(owner, user),
		types.NewMsgSetFee(owner, 5),
		types.NewMsgSetThreshold(owner, 2),
		types.NewMsgSetTxExpirationTime(owner, 60),
		types.NewMsgSetMinAmountToTransfer(owner, sdkmath.NewUint(1)),
		types.NewMsgSetMaxValidatorCount(owner, 4),
		types.NewMsgAddValidator(owner, validator),
		types.NewMsgRemoveValidator(owner, validator),
		types.NewMsgAddToken(owner, token, sdkmath.NewUint(1)),
		types.NewMsgRemoveToken(owner, token),
		types.NewMsgSetDailyLimit(owner, token, sdkmath.NewUint(1)),
		types.NewMsgCleanRequestSwaps(owner),
	}
	for _, msg := range msgs {
		require.Equal(t, types.RouterKey, msg.Route())
		require.Equal(t, owner, msg.GetSigner(), msg.Type())
		require.NoError(t, msg.ValidateBasic(), msg.Type())
	}

	require.Equal(t, validator, types.NewMsgRequestRewards(validator).GetSigner())
	require.Equal(t, user, types.NewMsgTransferToken(user, "remote", sdkmath.NewUint(1), token).GetSigner())
}

func TestDecodeMsg(t *testing.T) {
	require.Len(t, types.MsgTypes(), 16)

	msg, err := types.DecodeMsg(types.TypeMsgTransferCoin,
		[]byte(`{"sender":"`+user.Hex()+`","receiver":"remote","amount":"42"}`))
	require.NoError(t, err)
	transfer, ok := msg.(*types.MsgTransferCoin)
	require.True(t, ok)
	require.Equal(t, user, transfer.Sender)
	require.Equal(t, sdkmath.NewUint(42), transfer.Amount)

	_, err = types.DecodeMsg("unknown", []byte(`{}`))
	require.Error(t, err)

	_, err = types.DecodeMsg(types.TypeMsgSetFee, []byte(`{"owner":"nothex"}`))
	require.Error(t, err)
}
