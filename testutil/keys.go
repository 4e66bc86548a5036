package testutil

import (
	"crypto/ecdsa"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

// WriteKeyFile saves key as hex in a temporary file and returns its path.
func WriteKeyFile(t testing.TB, key *ecdsa.PrivateKey) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "signer.key")
	require.NoError(t, crypto.SaveECDSA(path, key))
	return path
}
