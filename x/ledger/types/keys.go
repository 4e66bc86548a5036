package types

import (
	"github.com/manus-ai/quorum-bridge/pkg/chain"
)

const (
	ModuleName = "ledger"
	StoreKey   = ModuleName
	RouterKey  = ModuleName
)

var (
	BalanceKeyPrefix = []byte{0x01}
	SupplyKeyPrefix  = []byte{0x02}
)

// NativeAsset is the asset identifier of the native coin.
var NativeAsset = chain.ZeroAddress

// BalanceKey is prefix | asset | account.
func BalanceKey(asset, account chain.Address) []byte {
	key := make([]byte, 0, 1+2*chain.AddressLength)
	key = append(key, BalanceKeyPrefix...)
	key = append(key, asset.Bytes()...)
	return append(key, account.Bytes()...)
}

func SupplyKey(asset chain.Address) []byte {
	return append(append([]byte{}, SupplyKeyPrefix...), asset.Bytes()...)
}

// SplitBalanceKey returns the asset and account encoded in a balance key.
func SplitBalanceKey(key []byte) (asset, account chain.Address) {
	copy(asset[:], key[1:1+chain.AddressLength])
	copy(account[:], key[1+chain.AddressLength:])
	return asset, account
}
