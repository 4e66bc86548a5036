package types

import (
	errorsmod "cosmossdk.io/errors"
)

var (
	ErrInvalidSignature = errorsmod.Register(ModuleName, 2, "invalid signature")
	ErrWrongSequence    = errorsmod.Register(ModuleName, 3, "incorrect account sequence")
	ErrInvalidTx        = errorsmod.Register(ModuleName, 4, "invalid transaction")
	ErrSignerMismatch   = errorsmod.Register(ModuleName, 5, "signature does not match message signer")
)
