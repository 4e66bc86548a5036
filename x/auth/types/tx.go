package types

import (
	"context"
	"crypto/ecdsa"
	"encoding/binary"
	"encoding/json"
	"math/big"

	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
)

// signDomain separates transaction signatures from any other use of a key.
const signDomain = "quorum-bridge/tx/v1"

// SignedTx carries a JSON message for a route together with the sender's
// signature over it. Sequence must equal the sender's account sequence.
type SignedTx struct {
	Route     string          `json:"route"`
	Type      string          `json:"type"`
	Msg       json.RawMessage `json:"msg"`
	Sequence  uint64          `json:"sequence"`
	Signature hexutil.Bytes   `json:"signature"`
}

// SignBytes is the Keccak-256 digest a sender signs.
func SignBytes(route, msgType string, msg []byte, sequence uint64) []byte {
	var seq [8]byte
	binary.BigEndian.PutUint64(seq[:], sequence)

	return crypto.Keccak256(
		[]byte(signDomain), []byte{0},
		[]byte(route), []byte{0},
		[]byte(msgType), []byte{0},
		seq[:],
		msg,
	)
}

// NewSignedTx signs msg with key. msg must be the exact JSON that is sent.
func NewSignedTx(key *ecdsa.PrivateKey, route, msgType string, msg []byte, sequence uint64) (SignedTx, error) {
	sig, err := crypto.Sign(SignBytes(route, msgType, msg, sequence), key)
	if err != nil {
		return SignedTx{}, err
	}
	return SignedTx{
		Route:     route,
		Type:      msgType,
		Msg:       msg,
		Sequence:  sequence,
		Signature: sig,
	}, nil
}

func (tx SignedTx) SignBytes() []byte {
	return SignBytes(tx.Route, tx.Type, tx.Msg, tx.Sequence)
}

func (tx SignedTx) ValidateBasic() error {
	if tx.Route == "" || tx.Type == "" {
		return errorsmod.Wrap(ErrInvalidTx, "route and type are required")
	}
	if len(tx.Msg) == 0 {
		return errorsmod.Wrap(ErrInvalidTx, "message is empty")
	}
	if len(tx.Signature) != crypto.SignatureLength {
		return errorsmod.Wrapf(ErrInvalidSignature, "signature must be %d bytes, got %d", crypto.SignatureLength, len(tx.Signature))
	}
	return nil
}

// Signer recovers the address that produced the signature. High-s
// signatures are rejected so each signed payload has one encoding.
func (tx SignedTx) Signer() (chain.Address, error) {
	if err := tx.ValidateBasic(); err != nil {
		return chain.Address{}, err
	}

	sig := tx.Signature
	r, s := new(big.Int).SetBytes(sig[:32]), new(big.Int).SetBytes(sig[32:64])
	if !crypto.ValidateSignatureValues(sig[64], r, s, true) {
		return chain.Address{}, errorsmod.Wrap(ErrInvalidSignature, "malformed signature values")
	}

	pub, err := crypto.SigToPub(tx.SignBytes(), sig)
	if err != nil {
		return chain.Address{}, errorsmod.Wrap(ErrInvalidSignature, err.Error())
	}
	return chain.PubKeyToAddress(*pub), nil
}

type QueryAccountRequest struct {
	Address chain.Address `json:"address"`
}

type QueryAccountResponse struct {
	Account Account `json:"account"`
}

type QueryServer interface {
	Account(context.Context, *QueryAccountRequest) (*QueryAccountResponse, error)
}
