package types

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	ErrInsufficientFunds = errorsmod.Register(ModuleName, 2, "insufficient funds")
	ErrInvalidAmount     = errorsmod.Register(ModuleName, 3, "invalid amount")
	ErrInvalidAddress    = errorsmod.Register(ModuleName, 4, "invalid address")
	ErrUnauthorized      = errorsmod.Register(ModuleName, 5, "unauthorized")
	ErrUnknownMsg        = errorsmod.Register(ModuleName, 6, "unknown message")
)
