package app

import (
	"context"
	"crypto/ecdsa"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/pkg/metrics"
	"github.com/manus-ai/quorum-bridge/pkg/store"
	"github.com/manus-ai/quorum-bridge/pkg/transfer_feed"
	bridgetypes "github.com/manus-ai/quorum-bridge/x/bridge/types"
	ledgertypes "github.com/manus-ai/quorum-bridge/x/ledger/types"
)

// TestGenesisTime is the clock value used by SetupTestApp unless overridden.
const TestGenesisTime uint64 = 1_700_000_000

// NewTestGenesis returns a genesis in which every validator must attest
// before a swap executes and funded holds native coins.
func NewTestGenesis(owner chain.Address, validators []chain.Address, funded ...chain.Address) AppGenesis {
	gen := DefaultGenesis(owner, sdkmath.NewUint(1_000_000))
	gen.Bridge.Config.Fee = 10
	gen.Bridge.Config.SignatureThreshold = uint16(len(validators))
	gen.Bridge.Config.MaxValidatorCount = uint16(len(validators) + 2)
	gen.Bridge.Config.MinAmountToTransfer = sdkmath.NewUint(10)
	gen.Bridge.Assets[0].Window = bridgetypes.NewDailyLimitWindow(sdkmath.NewUint(100_000), TestGenesisTime)
	gen.Bridge.Validators = validators

	for _, acct := range funded {
		gen.Ledger.Balances = append(gen.Ledger.Balances, ledgertypes.Balance{
			Account: acct,
			Asset:   ledgertypes.NativeAsset,
			Amount:  sdkmath.NewUint(10_000),
		})
	}
	return gen
}

// SetupTestApp builds an App over in-memory storage, starts its feed and
// writes gen. Everything is torn down when the test ends.
func SetupTestApp(t testing.TB, gen AppGenesis, clock chain.Clock) *App {
	t.Helper()

	logger := zap.NewNop()
	feed := transfer_feed.NewManager(transfer_feed.DefaultHistorySize, logger)
	require.NoError(t, feed.Start(context.Background()))

	if clock == nil {
		clock = func() uint64 { return TestGenesisTime }
	}
	db := store.NewInMemory()
	a, err := New(db, clock, feed, metrics.New(), logger)
	require.NoError(t, err)
	require.NoError(t, a.InitChain(context.Background(), gen))

	t.Cleanup(func() {
		require.NoError(t, feed.Stop())
		require.NoError(t, db.Close())
	})
	return a
}

// TestKey derives a deterministic signing key from name.
func TestKey(name string) *ecdsa.PrivateKey {
	key, err := crypto.ToECDSA(crypto.Keccak256([]byte(name)))
	if err != nil {
		panic(err)
	}
	return key
}

// TestAddress is the account controlled by TestKey(name).
func TestAddress(name string) chain.Address {
	return chain.PubKeyToAddress(TestKey(name).PublicKey)
}
