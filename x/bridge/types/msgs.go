package types

import (
	sdkmath "cosmossdk.io/math"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
)

const (
	TypeMsgTransferOwnership      = "transfer_ownership"
	TypeMsgSetFee                 = "set_fee"
	TypeMsgSetThreshold           = "set_threshold"
	TypeMsgSetTxExpirationTime    = "set_tx_expiration_time"
	TypeMsgSetMinAmountToTransfer = "set_min_amount_to_transfer"
	TypeMsgSetMaxValidatorCount   = "set_max_validator_count"
	TypeMsgAddValidator           = "add_validator"
	TypeMsgRemoveValidator        = "remove_validator"
	TypeMsgAddToken               = "add_token"
	TypeMsgRemoveToken            = "remove_token"
	TypeMsgSetDailyLimit          = "set_daily_limit"
	TypeMsgTransferCoin           = "transfer_coin"
	TypeMsgTransferToken          = "transfer_token"
	TypeMsgRequestSwap            = "request_swap"
	TypeMsgRequestRewards         = "request_rewards"
	TypeMsgCleanRequestSwaps      = "clean_request_swaps"
)

var (
	_ chain.Msg = &MsgTransferOwnership{}
	_ chain.Msg = &MsgSetFee{}
	_ chain.Msg = &MsgSetThreshold{}
	_ chain.Msg = &MsgSetTxExpirationTime{}
	_ chain.Msg = &MsgSetMinAmountToTransfer{}
	_ chain.Msg = &MsgSetMaxValidatorCount{}
	_ chain.Msg = &MsgAddValidator{}
	_ chain.Msg = &MsgRemoveValidator{}
	_ chain.Msg = &MsgAddToken{}
	_ chain.Msg = &MsgRemoveToken{}
	_ chain.Msg = &MsgSetDailyLimit{}
	_ chain.Msg = &MsgTransferCoin{}
	_ chain.Msg = &MsgTransferToken{}
	_ chain.Msg = &MsgRequestSwap{}
	_ chain.Msg = &MsgRequestRewards{}
	_ chain.Msg = &MsgCleanRequestSwaps{}
)

func validateSigner(role string, signer chain.Address) error {
	if signer.IsZero() {
		return ErrInvalidAddress.Wrapf("%s cannot be empty", role)
	}
	return nil
}

type MsgTransferOwnership struct {
	Owner    chain.Address `json:"owner" yaml:"owner"`
	NewOwner chain.Address `json:"new_owner" yaml:"new_owner"`
}

func NewMsgTransferOwnership(owner, newOwner chain.Address) *MsgTransferOwnership {
	return &MsgTransferOwnership{Owner: owner, NewOwner: newOwner}
}

func (msg *MsgTransferOwnership) Route() string            { return RouterKey }
func (msg *MsgTransferOwnership) Type() string             { return TypeMsgTransferOwnership }
func (msg *MsgTransferOwnership) GetSigner() chain.Address { return msg.Owner }
func (msg *MsgTransferOwnership) ValidateBasic() error {
	if err := validateSigner("owner", msg.Owner); err != nil {
		return err
	}
	return validateSigner("new owner", msg.NewOwner)
}

type MsgSetFee struct {
	Owner chain.Address `json:"owner" yaml:"owner"`
	Fee   uint64        `json:"fee" yaml:"fee"`
}

func NewMsgSetFee(owner chain.Address, fee uint64) *MsgSetFee {
	return &MsgSetFee{Owner: owner, Fee: fee}
}

func (msg *MsgSetFee) Route() string            { return RouterKey }
func (msg *MsgSetFee) Type() string             { return TypeMsgSetFee }
func (msg *MsgSetFee) GetSigner() chain.Address { return msg.Owner }
func (msg *MsgSetFee) ValidateBasic() error     { return validateSigner("owner", msg.Owner) }

type MsgSetThreshold struct {
	Owner     chain.Address `json:"owner" yaml:"owner"`
	Threshold uint16        `json:"threshold" yaml:"threshold"`
}

func NewMsgSetThreshold(owner chain.Address, threshold uint16) *MsgSetThreshold {
	return &MsgSetThreshold{Owner: owner, Threshold: threshold}
}

func (msg *MsgSetThreshold) Route() string            { return RouterKey }
func (msg *MsgSetThreshold) Type() string             { return TypeMsgSetThreshold }
func (msg *MsgSetThreshold) GetSigner() chain.Address { return msg.Owner }
func (msg *MsgSetThreshold) ValidateBasic() error     { return validateSigner("owner", msg.Owner) }

type MsgSetTxExpirationTime struct {
	Owner            chain.Address `json:"owner" yaml:"owner"`
	TxExpirationTime uint64        `json:"tx_expiration_time" yaml:"tx_expiration_time"`
}

func NewMsgSetTxExpirationTime(owner chain.Address, seconds uint64) *MsgSetTxExpirationTime {
	return &MsgSetTxExpirationTime{Owner: owner, TxExpirationTime: seconds}
}

func (msg *MsgSetTxExpirationTime) Route() string            { return RouterKey }
func (msg *MsgSetTxExpirationTime) Type() string             { return TypeMsgSetTxExpirationTime }
func (msg *MsgSetTxExpirationTime) GetSigner() chain.Address { return msg.Owner }
func (msg *MsgSetTxExpirationTime) ValidateBasic() error     { return validateSigner("owner", msg.Owner) }

type MsgSetMinAmountToTransfer struct {
	Owner  chain.Address `json:"owner" yaml:"owner"`
	Amount sdkmath.Uint  `json:"amount" yaml:"amount"`
}

func NewMsgSetMinAmountToTransfer(owner chain.Address, amount sdkmath.Uint) *MsgSetMinAmountToTransfer {
	return &MsgSetMinAmountToTransfer{Owner: owner, Amount: amount}
}

func (msg *MsgSetMinAmountToTransfer) Route() string            { return RouterKey }
func (msg *MsgSetMinAmountToTransfer) Type() string             { return TypeMsgSetMinAmountToTransfer }
func (msg *MsgSetMinAmountToTransfer) GetSigner() chain.Address { return msg.Owner }
func (msg *MsgSetMinAmountToTransfer) ValidateBasic() error {
	if err := validateSigner("owner", msg.Owner); err != nil {
		return err
	}
	return ValidateAmount(msg.Amount)
}

type MsgSetMaxValidatorCount struct {
	Owner             chain.Address `json:"owner" yaml:"owner"`
	MaxValidatorCount uint16        `json:"max_validator_count" yaml:"max_validator_count"`
}

func NewMsgSetMaxValidatorCount(owner chain.Address, max uint16) *MsgSetMaxValidatorCount {
	return &MsgSetMaxValidatorCount{Owner: owner, MaxValidatorCount: max}
}

func (msg *MsgSetMaxValidatorCount) Route() string            { return RouterKey }
func (msg *MsgSetMaxValidatorCount) Type() string             { return TypeMsgSetMaxValidatorCount }
func (msg *MsgSetMaxValidatorCount) GetSigner() chain.Address { return msg.Owner }
func (msg *MsgSetMaxValidatorCount) ValidateBasic() error     { return validateSigner("owner", msg.Owner) }

type MsgAddValidator struct {
	Owner     chain.Address `json:"owner" yaml:"owner"`
	Validator chain.Address `json:"validator" yaml:"validator"`
}

func NewMsgAddValidator(owner, validator chain.Address) *MsgAddValidator {
	return &MsgAddValidator{Owner: owner, Validator: validator}
}

func (msg *MsgAddValidator) Route() string            { return RouterKey }
func (msg *MsgAddValidator) Type() string             { return TypeMsgAddValidator }
func (msg *MsgAddValidator) GetSigner() chain.Address { return msg.Owner }
func (msg *MsgAddValidator) ValidateBasic() error {
	if err := validateSigner("owner", msg.Owner); err != nil {
		return err
	}
	return validateSigner("validator", msg.Validator)
}

type MsgRemoveValidator struct {
	Owner     chain.Address `json:"owner" yaml:"owner"`
	Validator chain.Address `json:"validator" yaml:"validator"`
}

func NewMsgRemoveValidator(owner, validator chain.Address) *MsgRemoveValidator {
	return &MsgRemoveValidator{Owner: owner, Validator: validator}
}

func (msg *MsgRemoveValidator) Route() string            { return RouterKey }
func (msg *MsgRemoveValidator) Type() string             { return TypeMsgRemoveValidator }
func (msg *MsgRemoveValidator) GetSigner() chain.Address { return msg.Owner }
func (msg *MsgRemoveValidator) ValidateBasic() error {
	if err := validateSigner("owner", msg.Owner); err != nil {
		return err
	}
	return validateSigner("validator", msg.Validator)
}

type MsgAddToken struct {
	Owner      chain.Address `json:"owner" yaml:"owner"`
	Token      chain.Address `json:"token" yaml:"token"`
	DailyLimit sdkmath.Uint  `json:"daily_limit" yaml:"daily_limit"`
}

func NewMsgAddToken(owner, token chain.Address, dailyLimit sdkmath.Uint) *MsgAddToken {
	return &MsgAddToken{Owner: owner, Token: token, DailyLimit: dailyLimit}
}

func (msg *MsgAddToken) Route() string            { return RouterKey }
func (msg *MsgAddToken) Type() string             { return TypeMsgAddToken }
func (msg *MsgAddToken) GetSigner() chain.Address { return msg.Owner }
func (msg *MsgAddToken) ValidateBasic() error {
	if err := validateSigner("owner", msg.Owner); err != nil {
		return err
	}
	return ValidateAmount(msg.DailyLimit)
}

type MsgRemoveToken struct {
	Owner chain.Address `json:"owner" yaml:"owner"`
	Token chain.Address `json:"token" yaml:"token"`
}

func NewMsgRemoveToken(owner, token chain.Address) *MsgRemoveToken {
	return &MsgRemoveToken{Owner: owner, Token: token}
}

func (msg *MsgRemoveToken) Route() string            { return RouterKey }
func (msg *MsgRemoveToken) Type() string             { return TypeMsgRemoveToken }
func (msg *MsgRemoveToken) GetSigner() chain.Address { return msg.Owner }
func (msg *MsgRemoveToken) ValidateBasic() error     { return validateSigner("owner", msg.Owner) }

type MsgSetDailyLimit struct {
	Owner chain.Address `json:"owner" yaml:"owner"`
	Asset chain.Address `json:"asset" yaml:"asset"`
	Limit sdkmath.Uint  `json:"limit" yaml:"limit"`
}

func NewMsgSetDailyLimit(owner, asset chain.Address, limit sdkmath.Uint) *MsgSetDailyLimit {
	return &MsgSetDailyLimit{Owner: owner, Asset: asset, Limit: limit}
}

func (msg *MsgSetDailyLimit) Route() string            { return RouterKey }
func (msg *MsgSetDailyLimit) Type() string             { return TypeMsgSetDailyLimit }
func (msg *MsgSetDailyLimit) GetSigner() chain.Address { return msg.Owner }
func (msg *MsgSetDailyLimit) ValidateBasic() error {
	if err := validateSigner("owner", msg.Owner); err != nil {
		return err
	}
	return ValidateAmount(msg.Limit)
}

// MsgTransferCoin moves Amount of native coin from Sender into the bridge.
type MsgTransferCoin struct {
	Sender   chain.Address `json:"sender" yaml:"sender"`
	Receiver string        `json:"receiver" yaml:"receiver"`
	Amount   sdkmath.Uint  `json:"amount" yaml:"amount"`
}

func NewMsgTransferCoin(sender chain.Address, receiver string, amount sdkmath.Uint) *MsgTransferCoin {
	return &MsgTransferCoin{Sender: sender, Receiver: receiver, Amount: amount}
}

func (msg *MsgTransferCoin) Route() string            { return RouterKey }
func (msg *MsgTransferCoin) Type() string             { return TypeMsgTransferCoin }
func (msg *MsgTransferCoin) GetSigner() chain.Address { return msg.Sender }
func (msg *MsgTransferCoin) ValidateBasic() error {
	if err := validateSigner("sender", msg.Sender); err != nil {
		return err
	}
	if msg.Receiver == "" {
		return ErrInvalidAddress.Wrap("receiver cannot be empty")
	}
	return ValidateAmount(msg.Amount)
}

// MsgTransferToken burns Amount of Asset from Sender for delivery on the remote chain.
type MsgTransferToken struct {
	Sender   chain.Address `json:"sender" yaml:"sender"`
	Receiver string        `json:"receiver" yaml:"receiver"`
	Amount   sdkmath.Uint  `json:"amount" yaml:"amount"`
	Asset    chain.Address `json:"asset" yaml:"asset"`
}

func NewMsgTransferToken(sender chain.Address, receiver string, amount sdkmath.Uint, asset chain.Address) *MsgTransferToken {
	return &MsgTransferToken{Sender: sender, Receiver: receiver, Amount: amount, Asset: asset}
}

func (msg *MsgTransferToken) Route() string            { return RouterKey }
func (msg *MsgTransferToken) Type() string             { return TypeMsgTransferToken }
func (msg *MsgTransferToken) GetSigner() chain.Address { return msg.Sender }
func (msg *MsgTransferToken) ValidateBasic() error {
	if err := validateSigner("sender", msg.Sender); err != nil {
		return err
	}
	if msg.Receiver == "" {
		return ErrInvalidAddress.Wrap("receiver cannot be empty")
	}
	return ValidateAmount(msg.Amount)
}

// MsgRequestSwap is a validator's attestation of a remote deposit.
type MsgRequestSwap struct {
	Validator chain.Address `json:"validator" yaml:"validator"`
	Message   SwapMessage   `json:"message" yaml:"message"`
}

func NewMsgRequestSwap(validator chain.Address, message SwapMessage) *MsgRequestSwap {
	return &MsgRequestSwap{Validator: validator, Message: message}
}

func (msg *MsgRequestSwap) Route() string            { return RouterKey }
func (msg *MsgRequestSwap) Type() string             { return TypeMsgRequestSwap }
func (msg *MsgRequestSwap) GetSigner() chain.Address { return msg.Validator }
func (msg *MsgRequestSwap) ValidateBasic() error {
	if err := validateSigner("validator", msg.Validator); err != nil {
		return err
	}
	return msg.Message.Validate()
}

type MsgRequestRewards struct {
	Validator chain.Address `json:"validator" yaml:"validator"`
}

func NewMsgRequestRewards(validator chain.Address) *MsgRequestRewards {
	return &MsgRequestRewards{Validator: validator}
}

func (msg *MsgRequestRewards) Route() string            { return RouterKey }
func (msg *MsgRequestRewards) Type() string             { return TypeMsgRequestRewards }
func (msg *MsgRequestRewards) GetSigner() chain.Address { return msg.Validator }
func (msg *MsgRequestRewards) ValidateBasic() error     { return validateSigner("validator", msg.Validator) }

// MsgCleanRequestSwaps drops every pending approval set.
type MsgCleanRequestSwaps struct {
	Owner chain.Address `json:"owner" yaml:"owner"`
}

func NewMsgCleanRequestSwaps(owner chain.Address) *MsgCleanRequestSwaps {
	return &MsgCleanRequestSwaps{Owner: owner}
}

func (msg *MsgCleanRequestSwaps) Route() string            { return RouterKey }
func (msg *MsgCleanRequestSwaps) Type() string             { return TypeMsgCleanRequestSwaps }
func (msg *MsgCleanRequestSwaps) GetSigner() chain.Address { return msg.Owner }
func (msg *MsgCleanRequestSwaps) ValidateBasic() error     { return validateSigner("owner", msg.Owner) }

type MsgEmptyResponse struct{}

type MsgTransferResponse struct {
	TransferNonce sdkmath.Uint `json:"transfer_nonce"`
}

type MsgRequestSwapResponse struct {
	Hash      string `json:"hash"`
	Approvals int    `json:"approvals"`
	Executed  bool   `json:"executed"`
}

type MsgRequestRewardsResponse struct {
	Amount sdkmath.Uint `json:"amount"`
}

type MsgCleanRequestSwapsResponse struct {
	Removed int `json:"removed"`
}
