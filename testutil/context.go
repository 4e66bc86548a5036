// Package testutil builds keeper contexts for tests.
package testutil

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/manus-ai/quorum-bridge/pkg/store"
)

// DefaultContext mounts keys on an in-memory multistore and returns a
// context at blockTime with a fresh event manager.
func DefaultContext(t testing.TB, blockTime time.Time, keys ...*storetypes.KVStoreKey) sdk.Context {
	t.Helper()

	cms, err := store.NewMultiStore(store.NewInMemory(), log.NewNopLogger(), keys...)
	require.NoError(t, err)

	return sdk.NewContext(cms, cmtproto.Header{Time: blockTime}, false, log.NewNopLogger()).
		WithEventManager(sdk.NewEventManager())
}
