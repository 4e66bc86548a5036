package types

import (
	"context"

	sdkmath "cosmossdk.io/math"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
)

//go:generate mockgen -source=expected_keepers.go -destination=../testutil/expected_keepers_mocks.go -package=testutil

// NativeBank moves native coin between accounts and the bridge reserve.
type NativeBank interface {
	// Attach moves amount from the caller into the bridge reserve, the way a
	// payable call transfers its attached value.
	Attach(ctx context.Context, from chain.Address, amount sdkmath.Uint) error
	// Pay sends amount from the bridge reserve to the recipient.
	Pay(ctx context.Context, to chain.Address, amount sdkmath.Uint) error
}

// TokenLedger is the fungible token collaborator. Mint and Burn report
// refusal with false rather than an error.
type TokenLedger interface {
	BalanceOf(ctx context.Context, asset, account chain.Address) sdkmath.Uint
	Burn(ctx context.Context, asset chain.Address, amount sdkmath.Uint, account chain.Address) bool
	Mint(ctx context.Context, asset chain.Address, amount sdkmath.Uint, account chain.Address) bool
}
