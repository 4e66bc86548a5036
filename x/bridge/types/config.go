package types

import (
	sdkmath "cosmossdk.io/math"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
)

// MaxFee is the fee percentage ceiling.
const MaxFee uint64 = 100

// Config holds the owner-controlled parameters of the bridge.
type Config struct {
	Owner               chain.Address `json:"owner" yaml:"owner"`
	Fee                 uint64        `json:"fee" yaml:"fee"` // percent of the transferred amount
	SignatureThreshold  uint16        `json:"signature_threshold" yaml:"signature_threshold"`
	MaxValidatorCount   uint16        `json:"max_validator_count" yaml:"max_validator_count"`
	TxExpirationTime    uint64        `json:"tx_expiration_time" yaml:"tx_expiration_time"` // seconds
	ChainID             uint8         `json:"chain_id" yaml:"chain_id"`
	MinAmountToTransfer sdkmath.Uint  `json:"min_amount_to_transfer" yaml:"min_amount_to_transfer"`
}

func DefaultConfig() Config {
	return Config{
		Fee:                 1,
		SignatureThreshold:  1,
		MaxValidatorCount:   10,
		TxExpirationTime:    DefaultTxExpirationTime,
		ChainID:             1,
		MinAmountToTransfer: sdkmath.OneUint(),
	}
}

func (c Config) Validate() error {
	if err := ValidateFee(c.Fee); err != nil {
		return err
	}
	if c.MaxValidatorCount == 0 {
		return ErrInvalidConfig.Wrap("max validator count must be positive")
	}
	if err := ValidateThreshold(c.SignatureThreshold, c.MaxValidatorCount); err != nil {
		return err
	}
	if c.TxExpirationTime == 0 {
		return ErrInvalidConfig.Wrap("tx expiration time must be positive")
	}
	if err := ValidateAmount(c.MinAmountToTransfer); err != nil {
		return ErrInvalidConfig.Wrapf("min amount to transfer: %s", err)
	}
	return nil
}

func ValidateFee(fee uint64) error {
	if fee > MaxFee {
		return ErrInvalidConfig.Wrapf("fee %d exceeds %d percent", fee, MaxFee)
	}
	return nil
}

// ValidateThreshold enforces threshold ∈ (0, maxValidators].
func ValidateThreshold(threshold, maxValidators uint16) error {
	if threshold == 0 {
		return ErrInvalidConfig.Wrap("signature threshold must be positive")
	}
	if threshold > maxValidators {
		return ErrInvalidConfig.Wrapf("signature threshold %d exceeds max validator count %d", threshold, maxValidators)
	}
	return nil
}
