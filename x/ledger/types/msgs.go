package types

import (
	"context"

	sdkmath "cosmossdk.io/math"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
)

const TypeMsgSend = "send"

var _ chain.Msg = &MsgSend{}

// MsgSend moves Amount of Asset between two accounts.
type MsgSend struct {
	From   chain.Address `json:"from" yaml:"from"`
	To     chain.Address `json:"to" yaml:"to"`
	Asset  chain.Address `json:"asset" yaml:"asset"`
	Amount sdkmath.Uint  `json:"amount" yaml:"amount"`
}

func NewMsgSend(from, to, asset chain.Address, amount sdkmath.Uint) *MsgSend {
	return &MsgSend{From: from, To: to, Asset: asset, Amount: amount}
}

func (msg *MsgSend) Route() string            { return RouterKey }
func (msg *MsgSend) Type() string             { return TypeMsgSend }
func (msg *MsgSend) GetSigner() chain.Address { return msg.From }
func (msg *MsgSend) ValidateBasic() error {
	if msg.From.IsZero() {
		return ErrInvalidAddress.Wrap("sender cannot be empty")
	}
	if msg.To.IsZero() {
		return ErrInvalidAddress.Wrap("recipient cannot be empty")
	}
	if msg.Amount == (sdkmath.Uint{}) || msg.Amount.IsZero() {
		return ErrInvalidAmount.Wrap("amount must be positive")
	}
	return nil
}

type MsgSendResponse struct{}

type QueryBalanceRequest struct {
	Asset   chain.Address `json:"asset"`
	Account chain.Address `json:"account"`
}

type QueryBalanceResponse struct {
	Balance sdkmath.Uint `json:"balance"`
}

type QueryTotalSupplyRequest struct {
	Asset chain.Address `json:"asset"`
}

type QueryTotalSupplyResponse struct {
	TotalSupply sdkmath.Uint `json:"total_supply"`
}

type MsgServer interface {
	Send(context.Context, *MsgSend) (*MsgSendResponse, error)
}

type QueryServer interface {
	Balance(context.Context, *QueryBalanceRequest) (*QueryBalanceResponse, error)
	TotalSupply(context.Context, *QueryTotalSupplyRequest) (*QueryTotalSupplyResponse, error)
}
