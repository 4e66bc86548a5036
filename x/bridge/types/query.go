package types

import (
	"context"

	sdkmath "cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/common"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
)

type QueryConfigRequest struct{}

type QueryConfigResponse struct {
	Config Config `json:"config"`
}

type QueryValidatorsRequest struct{}

type QueryValidatorsResponse struct {
	Validators []chain.Address `json:"validators"`
}

type QueryIsValidatorRequest struct {
	Address chain.Address `json:"address"`
}

type QueryIsValidatorResponse struct {
	IsValidator bool `json:"is_validator"`
}

type QueryTokensRequest struct{}

type QueryTokensResponse struct {
	Tokens []chain.Address `json:"tokens"`
}

type QueryDailyLimitRequest struct {
	Asset chain.Address `json:"asset"`
}

// QueryDailyLimitResponse carries the stored window and the values a charge
// made now would observe after a lazy rollover.
type QueryDailyLimitResponse struct {
	Asset          chain.Address    `json:"asset"`
	Window         DailyLimitWindow `json:"window"`
	EffectiveSpent sdkmath.Uint     `json:"effective_spent"`
	Remaining      sdkmath.Uint     `json:"remaining"`
}

type QueryPendingSwapRequest struct {
	Hash common.Hash `json:"hash"`
}

type QueryPendingSwapResponse struct {
	PendingSwap PendingSwap `json:"pending_swap"`
	Approvals   int         `json:"approvals"`
}

type QueryPendingSwapsRequest struct{}

type QueryPendingSwapsResponse struct {
	PendingSwaps []PendingSwap `json:"pending_swaps"`
}

type QuerySwapHashRequest struct {
	Message SwapMessage `json:"message"`
}

type QuerySwapHashResponse struct {
	Hash common.Hash `json:"hash"`
}

type QueryTransferNonceRequest struct{}

type QueryTransferNonceResponse struct {
	TransferNonce sdkmath.Uint `json:"transfer_nonce"`
}

type QueryRewardRequest struct {
	Validator chain.Address `json:"validator"`
}

type QueryRewardResponse struct {
	Reward sdkmath.Uint `json:"reward"`
}

// QueryServer is the read-only surface of the module.
type QueryServer interface {
	Config(context.Context, *QueryConfigRequest) (*QueryConfigResponse, error)
	Validators(context.Context, *QueryValidatorsRequest) (*QueryValidatorsResponse, error)
	IsValidator(context.Context, *QueryIsValidatorRequest) (*QueryIsValidatorResponse, error)
	Tokens(context.Context, *QueryTokensRequest) (*QueryTokensResponse, error)
	DailyLimit(context.Context, *QueryDailyLimitRequest) (*QueryDailyLimitResponse, error)
	PendingSwap(context.Context, *QueryPendingSwapRequest) (*QueryPendingSwapResponse, error)
	PendingSwaps(context.Context, *QueryPendingSwapsRequest) (*QueryPendingSwapsResponse, error)
	SwapHash(context.Context, *QuerySwapHashRequest) (*QuerySwapHashResponse, error)
	TransferNonce(context.Context, *QueryTransferNonceRequest) (*QueryTransferNonceResponse, error)
	Reward(context.Context, *QueryRewardRequest) (*QueryRewardResponse, error)
}

// MsgServer is the state-changing surface of the module.
type MsgServer interface {
	TransferOwnership(context.Context, *MsgTransferOwnership) (*MsgEmptyResponse, error)
	SetFee(context.Context, *MsgSetFee) (*MsgEmptyResponse, error)
	SetThreshold(context.Context, *MsgSetThreshold) (*MsgEmptyResponse, error)
	SetTxExpirationTime(context.Context, *MsgSetTxExpirationTime) (*MsgEmptyResponse, error)
	SetMinAmountToTransfer(context.Context, *MsgSetMinAmountToTransfer) (*MsgEmptyResponse, error)
	SetMaxValidatorCount(context.Context, *MsgSetMaxValidatorCount) (*MsgEmptyResponse, error)
	AddValidator(context.Context, *MsgAddValidator) (*MsgEmptyResponse, error)
	RemoveValidator(context.Context, *MsgRemoveValidator) (*MsgEmptyResponse, error)
	AddToken(context.Context, *MsgAddToken) (*MsgEmptyResponse, error)
	RemoveToken(context.Context, *MsgRemoveToken) (*MsgEmptyResponse, error)
	SetDailyLimit(context.Context, *MsgSetDailyLimit) (*MsgEmptyResponse, error)
	TransferCoin(context.Context, *MsgTransferCoin) (*MsgTransferResponse, error)
	TransferToken(context.Context, *MsgTransferToken) (*MsgTransferResponse, error)
	RequestSwap(context.Context, *MsgRequestSwap) (*MsgRequestSwapResponse, error)
	RequestRewards(context.Context, *MsgRequestRewards) (*MsgRequestRewardsResponse, error)
	CleanRequestSwaps(context.Context, *MsgCleanRequestSwaps) (*MsgCleanRequestSwapsResponse, error)
}
