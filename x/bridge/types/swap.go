package types

import (
	"bytes"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	"github.com/centrifuge/go-substrate-rpc-client/v4/scale"
	gsrpctypes "github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/exp/slices"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
)

// SwapMessage describes a deposit observed on the remote chain. Its hash
// identifies the pending approval set that validators attest to.
type SwapMessage struct {
	ChainID       uint8         `json:"chain_id" yaml:"chain_id"`
	Receiver      chain.Address `json:"receiver" yaml:"receiver"`
	Sender        string        `json:"sender" yaml:"sender"`
	Timestamp     uint64        `json:"timestamp" yaml:"timestamp"`
	Amount        sdkmath.Uint  `json:"amount" yaml:"amount"`
	Asset         chain.Address `json:"asset" yaml:"asset"`
	TransferNonce sdkmath.Uint  `json:"transfer_nonce" yaml:"transfer_nonce"`
}

// Validate checks that both u128 fields are set and in range.
func (m SwapMessage) Validate() error {
	if err := ValidateAmount(m.Amount); err != nil {
		return errorsmod.Wrap(err, "amount")
	}
	if err := ValidateAmount(m.TransferNonce); err != nil {
		return errorsmod.Wrap(err, "transfer nonce")
	}
	return nil
}

// Encode returns the canonical SCALE encoding of the message: chain id (u8),
// receiver ([u8; 32]), sender (compact-prefixed string), timestamp (u64),
// amount (u128), asset ([u8; 32]) and transfer nonce (u128).
func (m SwapMessage) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := scale.NewEncoder(&buf)

	if err := enc.PushByte(m.ChainID); err != nil {
		return nil, err
	}
	if err := enc.Write(m.Receiver.Bytes()); err != nil {
		return nil, err
	}
	if err := enc.Encode(m.Sender); err != nil {
		return nil, err
	}
	if err := enc.Encode(m.Timestamp); err != nil {
		return nil, err
	}
	if err := enc.Encode(toU128(m.Amount)); err != nil {
		return nil, err
	}
	if err := enc.Write(m.Asset.Bytes()); err != nil {
		return nil, err
	}
	if err := enc.Encode(toU128(m.TransferNonce)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Hash is the Keccak-256 digest of the canonical encoding.
func (m SwapMessage) Hash() (common.Hash, error) {
	bz, err := m.Encode()
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash(bz), nil
}

func toU128(u sdkmath.Uint) gsrpctypes.U128 {
	return gsrpctypes.NewU128(*OrZero(u).BigInt())
}

// PendingSwap is the set of validators that attested to a swap hash, in
// attestation order.
type PendingSwap struct {
	Hash      common.Hash     `json:"hash" yaml:"hash"`
	Attesters []chain.Address `json:"attesters" yaml:"attesters"`
}

// SwapApprovals is the stored form of a PendingSwap; the hash is the key.
type SwapApprovals struct {
	Attesters []chain.Address `json:"attesters"`
}

func (p PendingSwap) HasAttested(validator chain.Address) bool {
	return slices.Contains(p.Attesters, validator)
}
