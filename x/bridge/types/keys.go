package types

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
)

const (
	ModuleName   = "bridge"
	StoreKey     = ModuleName
	RouterKey    = ModuleName
	QuerierRoute = ModuleName

	// DailyLimitPeriod is the length of a risk-limit window in seconds.
	DailyLimitPeriod uint64 = 86400

	// DefaultTxExpirationTime is how long a swap message stays attestable.
	DefaultTxExpirationTime uint64 = 86400
)

var (
	ConfigKey        = []byte{0x01}
	TransferNonceKey = []byte{0x02}

	ValidatorKeyPrefix   = []byte{0x10}
	TokenKeyPrefix       = []byte{0x11}
	DailyLimitKeyPrefix  = []byte{0x12}
	PendingSwapKeyPrefix = []byte{0x13}
	RewardKeyPrefix      = []byte{0x14}
)

// NativeAsset is the sentinel identifier of the native coin.
var NativeAsset = chain.ZeroAddress

// ModuleAddress holds the bridge reserve of native coin.
var ModuleAddress = chain.AddressFromName(ModuleName)

func ValidatorKey(validator chain.Address) []byte {
	return append(append([]byte{}, ValidatorKeyPrefix...), validator.Bytes()...)
}

func TokenKey(asset chain.Address) []byte {
	return append(append([]byte{}, TokenKeyPrefix...), asset.Bytes()...)
}

func DailyLimitKey(asset chain.Address) []byte {
	return append(append([]byte{}, DailyLimitKeyPrefix...), asset.Bytes()...)
}

func PendingSwapKey(hash common.Hash) []byte {
	return append(append([]byte{}, PendingSwapKeyPrefix...), hash.Bytes()...)
}

// SwapHashFromKey recovers the swap hash of a pending swap entry.
func SwapHashFromKey(key []byte) common.Hash {
	return common.BytesToHash(key[len(PendingSwapKeyPrefix):])
}

func RewardKey(validator chain.Address) []byte {
	return append(append([]byte{}, RewardKeyPrefix...), validator.Bytes()...)
}

// AddressFromKey strips a one byte prefix from an address-keyed entry.
func AddressFromKey(key []byte) chain.Address {
	var a chain.Address
	copy(a[:], key[1:])
	return a
}
