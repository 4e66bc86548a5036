package chain

import (
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// AddressLength is the size of an account identifier in bytes.
const AddressLength = 32

// Address identifies an account: a user, a validator, a token asset or a module.
type Address [AddressLength]byte

// ZeroAddress is the all-zero identifier.
var ZeroAddress Address

// AddressFromHex parses a 32-byte hex identifier, with or without the 0x prefix.
func AddressFromHex(s string) (Address, error) {
	var a Address
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	bz, err := hexutil.Decode(s)
	if err != nil {
		return a, fmt.Errorf("invalid address %q: %w", s, err)
	}
	if len(bz) != AddressLength {
		return a, fmt.Errorf("invalid address length %d, expected %d", len(bz), AddressLength)
	}
	copy(a[:], bz)
	return a, nil
}

// MustAddressFromHex is like AddressFromHex but panics on malformed input.
func MustAddressFromHex(s string) Address {
	a, err := AddressFromHex(s)
	if err != nil {
		panic(err)
	}
	return a
}

// AddressFromName derives a deterministic identifier from a name. It is used
// for module accounts and in tests.
func AddressFromName(name string) Address {
	return Address(crypto.Keccak256Hash([]byte(name)))
}

// PubKeyToAddress derives the account controlled by a secp256k1 key.
func PubKeyToAddress(pub ecdsa.PublicKey) Address {
	return Address(crypto.Keccak256Hash(crypto.FromECDSAPub(&pub)[1:]))
}

func (a Address) Bytes() []byte { return a[:] }

func (a Address) IsZero() bool { return a == ZeroAddress }

func (a Address) Hex() string { return hexutil.Encode(a[:]) }

func (a Address) String() string { return a.Hex() }

// MarshalText encodes the address as 0x-prefixed hex.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.Hex()), nil
}

// UnmarshalText decodes a 0x-prefixed hex address.
func (a *Address) UnmarshalText(input []byte) error {
	parsed, err := AddressFromHex(string(input))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Hex())
}

func (a *Address) UnmarshalJSON(input []byte) error {
	var s string
	if err := json.Unmarshal(input, &s); err != nil {
		return err
	}
	return a.UnmarshalText([]byte(s))
}
