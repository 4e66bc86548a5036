package types

import (
	sdkmath "cosmossdk.io/math"
)

// DailyLimitWindow tracks how much of an asset left the bridge in the
// current 24h window.
type DailyLimitWindow struct {
	Limit       sdkmath.Uint `json:"limit" yaml:"limit"`
	Spent       sdkmath.Uint `json:"spent" yaml:"spent"`
	WindowStart uint64       `json:"window_start" yaml:"window_start"`
}

func NewDailyLimitWindow(limit sdkmath.Uint, now uint64) DailyLimitWindow {
	return DailyLimitWindow{
		Limit:       limit,
		Spent:       sdkmath.ZeroUint(),
		WindowStart: now,
	}
}

// Expired reports whether the window is older than DailyLimitPeriod at now.
// A window starting in the future is never expired.
func (w DailyLimitWindow) Expired(now uint64) bool {
	return now > w.WindowStart && now-w.WindowStart > DailyLimitPeriod
}

// Rollover returns the window as a charge at now would see it.
func (w DailyLimitWindow) Rollover(now uint64) DailyLimitWindow {
	if w.Expired(now) {
		w.Spent = sdkmath.ZeroUint()
		w.WindowStart = now
	}
	return w
}

// Charge returns the window after spending amount at now. The receiver is
// left untouched when the charge is rejected.
func (w DailyLimitWindow) Charge(amount sdkmath.Uint, now uint64) (DailyLimitWindow, error) {
	if IsNilUint(w.Limit) || w.Limit.IsZero() {
		return w, ErrNoLimitConfigured
	}

	next := w.Rollover(now)
	spent := OrZero(next.Spent).Add(amount)
	if spent.GT(next.Limit) {
		return w, ErrDailyLimitExceeded.Wrapf("spent %s + %s > limit %s", OrZero(next.Spent), amount, next.Limit)
	}

	next.Spent = spent
	return next, nil
}

// Remaining is what can still be charged at now.
func (w DailyLimitWindow) Remaining(now uint64) sdkmath.Uint {
	next := w.Rollover(now)
	limit, spent := OrZero(next.Limit), OrZero(next.Spent)
	if spent.GTE(limit) {
		return sdkmath.ZeroUint()
	}
	return limit.Sub(spent)
}

func (w DailyLimitWindow) Validate() error {
	if IsNilUint(w.Limit) || w.Limit.IsZero() {
		return ErrInvalidLimit.Wrap("daily limit must be positive")
	}
	if err := ValidateAmount(w.Limit); err != nil {
		return err
	}
	// spent may exceed limit after the owner lowers it mid-window
	return ValidateAmount(OrZero(w.Spent))
}
