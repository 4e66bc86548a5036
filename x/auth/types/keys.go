package types

import (
	"github.com/manus-ai/quorum-bridge/pkg/chain"
)

const (
	ModuleName = "auth"
	StoreKey   = ModuleName
)

var SequenceKeyPrefix = []byte{0x01}

func SequenceKey(addr chain.Address) []byte {
	return append(append([]byte{}, SequenceKeyPrefix...), addr.Bytes()...)
}

// AddressFromSequenceKey strips the prefix from a sequence key.
func AddressFromSequenceKey(key []byte) chain.Address {
	var a chain.Address
	copy(a[:], key[len(SequenceKeyPrefix):])
	return a
}
