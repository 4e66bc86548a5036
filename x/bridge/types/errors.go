package types

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
)

// Caller errors. The call is rejected and no state changes.
var (
	ErrUnauthorized        = errorsmod.Register(ModuleName, 2, "unauthorized")
	ErrInvalidConfig       = errorsmod.Register(ModuleName, 3, "invalid config")
	ErrCapacityExceeded    = errorsmod.Register(ModuleName, 4, "validator capacity exceeded")
	ErrQuorumUnsafe        = errorsmod.Register(ModuleName, 5, "validator count would drop below signature threshold")
	ErrUnknownAsset        = errorsmod.Register(ModuleName, 6, "asset is not transferable")
	ErrExpired             = errorsmod.Register(ModuleName, 7, "swap message expired")
	ErrBelowMinimum        = errorsmod.Register(ModuleName, 8, "amount below minimum transfer")
	ErrDailyLimitExceeded  = errorsmod.Register(ModuleName, 9, "daily limit exceeded")
	ErrDuplicateApproval   = errorsmod.Register(ModuleName, 10, "validator already approved swap")
	ErrChainMismatch       = errorsmod.Register(ModuleName, 11, "chain id mismatch")
	ErrInsufficientBalance = errorsmod.Register(ModuleName, 12, "insufficient balance")
	ErrNotFound            = errorsmod.Register(ModuleName, 13, "not found")
	ErrNoRewards           = errorsmod.Register(ModuleName, 14, "no rewards to claim")
	ErrNoLimitConfigured   = errorsmod.Register(ModuleName, 15, "no daily limit configured")
	ErrInvalidLimit        = errorsmod.Register(ModuleName, 16, "invalid daily limit")
	ErrAlreadyExists       = errorsmod.Register(ModuleName, 17, "already exists")
	ErrInvalidAddress      = errorsmod.Register(ModuleName, 18, "invalid address")
	ErrInvalidAmount       = errorsmod.Register(ModuleName, 19, "invalid amount")
	ErrUnknownRequest      = errorsmod.Register(ModuleName, 20, "unknown request")
)

// Fatal errors: a collaborator refused a release or an internal invariant broke.
var (
	ErrBurnFailed        = errorsmod.Register(ModuleName, 30, "token burn failed")
	ErrMintFailed        = errorsmod.Register(ModuleName, 31, "token mint failed")
	ErrReleaseFailed     = errorsmod.Register(ModuleName, 32, "native release failed")
	ErrInvariantViolated = errorsmod.Register(ModuleName, 33, "invariant violated")
)

var fatalErrors = []*errorsmod.Error{
	ErrBurnFailed,
	ErrMintFailed,
	ErrReleaseFailed,
	ErrInvariantViolated,
	chain.ErrPanic,
}

// IsFatal reports whether err is an invariant violation rather than bad input.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	return errorsmod.IsOf(err, toErrs(fatalErrors)...)
}

func toErrs(in []*errorsmod.Error) []error {
	out := make([]error, len(in))
	for i, e := range in {
		out[i] = e
	}
	return out
}
