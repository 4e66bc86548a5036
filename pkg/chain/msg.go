package chain

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Msg is a state-changing request submitted by a caller.
type Msg interface {
	// ValidateBasic performs stateless checks.
	ValidateBasic() error
	Route() string
	Type() string
	GetSigner() Address
}

// Handler executes a Msg against the state exposed by ctx.
type Handler func(ctx sdk.Context, msg Msg) (any, error)
