package types

import (
	"math/big"

	sdkmath "cosmossdk.io/math"
)

// MaxU128 is the largest amount representable on either side of the bridge.
var MaxU128 = sdkmath.NewUintFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1)))

// IsNilUint reports whether u was never initialized.
func IsNilUint(u sdkmath.Uint) bool {
	return u == (sdkmath.Uint{})
}

// OrZero returns u, or zero when u is uninitialized.
func OrZero(u sdkmath.Uint) sdkmath.Uint {
	if IsNilUint(u) {
		return sdkmath.ZeroUint()
	}
	return u
}

// ValidateAmount checks that u is set and fits in 128 bits.
func ValidateAmount(u sdkmath.Uint) error {
	if IsNilUint(u) {
		return ErrInvalidAmount.Wrap("amount is not set")
	}
	if u.GT(MaxU128) {
		return ErrInvalidAmount.Wrapf("amount %s overflows u128", u)
	}
	return nil
}

// FeeShare returns amount * fee / 100, rounded down.
func FeeShare(amount sdkmath.Uint, fee uint64) sdkmath.Uint {
	return amount.MulUint64(fee).QuoUint64(100)
}

// AmountAfterFee returns amount - amount * fee / 100.
func AmountAfterFee(amount sdkmath.Uint, fee uint64) sdkmath.Uint {
	return amount.Sub(FeeShare(amount, fee))
}
