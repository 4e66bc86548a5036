package transfer_feed_test

import (
	"context"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/pkg/transfer_feed"
	"github.com/manus-ai/quorum-bridge/x/bridge/types"
)

func record(nonce uint64) types.TransferRecord {
	return types.TransferRecord{
		Receiver:      "5GrwvaEF5zXb26Fz9rcQpDWS57CtERHpNehXCPcNoHGKutQY",
		Sender:        chain.AddressFromName("alice"),
		Amount:        sdkmath.NewUint(100),
		Asset:         types.NativeAsset,
		TransferNonce: sdkmath.NewUint(nonce),
		Timestamp:     1_700_000_000,
	}
}

func startManager(t *testing.T, historySize int) *transfer_feed.Manager {
	t.Helper()
	m := transfer_feed.NewManager(historySize, zap.NewNop())
	require.NoError(t, m.Start(context.Background()))
	t.Cleanup(func() { require.NoError(t, m.Stop()) })
	return m
}

func TestPublishReachesSubscriber(t *testing.T) {
	m := startManager(t, 10)
	ch, cancel := m.Subscribe()
	defer cancel()

	m.Publish(record(1))

	select {
	case got := <-ch:
		require.Equal(t, "1", got.TransferNonce.String())
		require.Equal(t, chain.AddressFromName("alice"), got.Sender)
	case <-time.After(time.Second):
		t.Fatal("record not delivered")
	}
}

func TestHistoryIsBounded(t *testing.T) {
	m := startManager(t, 3)
	for i := uint64(1); i <= 5; i++ {
		m.Publish(record(i))
	}

	require.Eventually(t, func() bool {
		return m.Stats().Published == 5
	}, time.Second, 5*time.Millisecond)

	history := m.History(0)
	require.Len(t, history, 3)
	require.Equal(t, "3", history[0].TransferNonce.String())
	require.Equal(t, "5", history[2].TransferNonce.String())

	last := m.History(1)
	require.Len(t, last, 1)
	require.Equal(t, "5", last[0].TransferNonce.String())
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	m := startManager(t, 10)
	ch, cancel := m.Subscribe()
	require.Equal(t, 1, m.Stats().Subscribers)

	cancel()
	_, open := <-ch
	require.False(t, open)
	require.Equal(t, 0, m.Stats().Subscribers)

	// a second cancel is a no-op
	cancel()
}

func TestStopClosesSubscribers(t *testing.T) {
	m := transfer_feed.NewManager(0, zap.NewNop())
	require.NoError(t, m.Start(context.Background()))
	ch, cancel := m.Subscribe()

	require.NoError(t, m.Stop())
	require.NoError(t, m.Stop())

	_, open := <-ch
	require.False(t, open)
	cancel()
}
