package keeper_test

import (
	"math"

	sdkmath "cosmossdk.io/math"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/x/bridge/types"
)

func (s *KeeperTestSuite) TestRequestSwapQuorum() {
	msg := s.swapMessage(types.NativeAsset, 100)
	hash, err := msg.Hash()
	s.Require().NoError(err)

	_, found := s.keeper.GetPendingSwap(s.ctx, hash)
	s.Require().False(found)

	res, err := s.keeper.RequestSwap(s.ctx, valA, msg)
	s.Require().NoError(err)
	s.Require().False(res.Executed)
	s.Require().Equal(1, res.Approvals)
	s.Require().Equal(hash, res.Hash)

	pending, found := s.keeper.GetPendingSwap(s.ctx, hash)
	s.Require().True(found)
	s.Require().Equal([]chain.Address{valA}, pending.Attesters)
	s.Require().Equal("0", s.nativeBalance(bob))

	res, err = s.keeper.RequestSwap(s.ctx, valB, msg)
	s.Require().NoError(err)
	s.Require().True(res.Executed)
	s.Require().Equal(2, res.Approvals)

	// fee is 10 percent
	s.Require().Equal("90", s.nativeBalance(bob))
	s.Require().Equal("9910", s.nativeBalance(types.ModuleAddress))
	_, found = s.keeper.GetPendingSwap(s.ctx, hash)
	s.Require().False(found)

	w, _ := s.keeper.GetDailyLimitWindow(s.ctx, types.NativeAsset)
	s.Require().Equal("100", w.Spent.String())

	// an identical message starts over
	res, err = s.keeper.RequestSwap(s.ctx, valA, msg)
	s.Require().NoError(err)
	s.Require().False(res.Executed)
	s.Require().Equal(1, res.Approvals)
}

func (s *KeeperTestSuite) TestRequestSwapDuplicateApproval() {
	msg := s.swapMessage(types.NativeAsset, 100)

	_, err := s.keeper.RequestSwap(s.ctx, valA, msg)
	s.Require().NoError(err)

	_, err = s.keeper.RequestSwap(s.ctx, valA, msg)
	s.Require().ErrorIs(err, types.ErrDuplicateApproval)

	hash, _ := msg.Hash()
	pending, found := s.keeper.GetPendingSwap(s.ctx, hash)
	s.Require().True(found)
	s.Require().Equal([]chain.Address{valA}, pending.Attesters)
}

func (s *KeeperTestSuite) TestRequestSwapRejections() {
	tests := []struct {
		name      string
		validator chain.Address
		mutate    func(m *types.SwapMessage)
		err       error
	}{
		{
			name:      "not a validator",
			validator: alice,
			mutate:    func(m *types.SwapMessage) {},
			err:       types.ErrUnauthorized,
		},
		{
			name:      "not a validator takes precedence",
			validator: alice,
			mutate:    func(m *types.SwapMessage) { m.ChainID = 9; m.Asset = tokenNone },
			err:       types.ErrUnauthorized,
		},
		{
			name:      "wrong chain",
			validator: valA,
			mutate:    func(m *types.SwapMessage) { m.ChainID = 9 },
			err:       types.ErrChainMismatch,
		},
		{
			name:      "expired",
			validator: valA,
			mutate:    func(m *types.SwapMessage) { m.Timestamp -= types.DefaultTxExpirationTime + 1 },
			err:       types.ErrExpired,
		},
		{
			name:      "expired checked before asset",
			validator: valA,
			mutate:    func(m *types.SwapMessage) { m.Timestamp = 0; m.Asset = tokenNone },
			err:       types.ErrExpired,
		},
		{
			name:      "unknown asset",
			validator: valA,
			mutate:    func(m *types.SwapMessage) { m.Asset = tokenNone },
			err:       types.ErrUnknownAsset,
		},
		{
			name:      "at expiration boundary",
			validator: valA,
			mutate:    func(m *types.SwapMessage) { m.Timestamp -= types.DefaultTxExpirationTime },
		},
		{
			name:      "timestamp in the future",
			validator: valA,
			mutate:    func(m *types.SwapMessage) { m.Timestamp += 3600 },
			err:       types.ErrExpired,
		},
		{
			name:      "timestamp one second ahead",
			validator: valA,
			mutate:    func(m *types.SwapMessage) { m.Timestamp++ },
			err:       types.ErrExpired,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			msg := s.swapMessage(types.NativeAsset, 100)
			tt.mutate(&msg)

			_, err := s.keeper.RequestSwap(s.ctx, tt.validator, msg)
			if tt.err != nil {
				s.Require().ErrorIs(err, tt.err)
				return
			}
			s.Require().NoError(err)
		})
	}
}

func (s *KeeperTestSuite) TestRequestSwapThresholdOne() {
	s.Require().NoError(s.keeper.SetThreshold(s.ctx, owner, 1))

	res, err := s.keeper.RequestSwap(s.ctx, valA, s.swapMessage(types.NativeAsset, 50))
	s.Require().NoError(err)
	s.Require().True(res.Executed)
	s.Require().Equal("45", s.nativeBalance(bob))
	s.Require().Empty(s.keeper.GetPendingSwaps(s.ctx))
}

func (s *KeeperTestSuite) TestRequestSwapTokenMintsNetAmount() {
	msg := s.swapMessage(tokenDOT, 200)

	_, err := s.keeper.RequestSwap(s.ctx, valA, msg)
	s.Require().NoError(err)
	res, err := s.keeper.RequestSwap(s.ctx, valB, msg)
	s.Require().NoError(err)
	s.Require().True(res.Executed)

	s.Require().Equal("180", s.ledger.BalanceOf(s.ctx, tokenDOT, bob).String())
	w, _ := s.keeper.GetDailyLimitWindow(s.ctx, tokenDOT)
	s.Require().Equal("200", w.Spent.String())

	// token releases do not accrue rewards
	s.Require().True(s.keeper.GetReward(s.ctx, valA).IsZero())
	s.Require().True(s.keeper.GetReward(s.ctx, valB).IsZero())
}

func (s *KeeperTestSuite) TestRequestSwapNativeAccruesRewards() {
	msg := s.swapMessage(types.NativeAsset, 100)

	_, err := s.keeper.RequestSwap(s.ctx, valA, msg)
	s.Require().NoError(err)
	_, err = s.keeper.RequestSwap(s.ctx, valB, msg)
	s.Require().NoError(err)

	// fee share 10 split over two validators
	s.Require().Equal("5", s.keeper.GetReward(s.ctx, valA).String())
	s.Require().Equal("5", s.keeper.GetReward(s.ctx, valB).String())
}

func (s *KeeperTestSuite) TestRequestSwapDailyLimitExceeded() {
	msg := s.swapMessage(tokenDOT, 501)

	_, err := s.keeper.RequestSwap(s.ctx, valA, msg)
	s.Require().NoError(err)
	_, err = s.keeper.RequestSwap(s.ctx, valB, msg)
	s.Require().ErrorIs(err, types.ErrDailyLimitExceeded)

	hash, _ := msg.Hash()
	pending, found := s.keeper.GetPendingSwap(s.ctx, hash)
	s.Require().True(found)
	s.Require().Len(pending.Attesters, 1)
	s.Require().True(s.ledger.BalanceOf(s.ctx, tokenDOT, bob).IsZero())
}

func (s *KeeperTestSuite) TestRequestSwapAfterRemovedAsset() {
	msg := s.swapMessage(tokenDOT, 10)
	_, err := s.keeper.RequestSwap(s.ctx, valA, msg)
	s.Require().NoError(err)

	s.Require().NoError(s.keeper.RemoveToken(s.ctx, owner, tokenDOT))
	_, err = s.keeper.RequestSwap(s.ctx, valB, msg)
	s.Require().ErrorIs(err, types.ErrUnknownAsset)
}

func (s *KeeperTestSuite) TestRequestSwapStaleMessageKeepsPendingEntry() {
	msg := s.swapMessage(types.NativeAsset, 100)
	_, err := s.keeper.RequestSwap(s.ctx, valA, msg)
	s.Require().NoError(err)

	s.advance(types.DefaultTxExpirationTime + 1)
	_, err = s.keeper.RequestSwap(s.ctx, valB, msg)
	s.Require().ErrorIs(err, types.ErrExpired)

	s.Require().Len(s.keeper.GetPendingSwaps(s.ctx), 1)
}

func (s *KeeperTestSuite) TestRequestSwapFarFutureTimestampNeverExecutes() {
	msg := s.swapMessage(types.NativeAsset, 100)
	msg.Timestamp = math.MaxUint64

	_, err := s.keeper.RequestSwap(s.ctx, valA, msg)
	s.Require().ErrorIs(err, types.ErrExpired)
	s.Require().Empty(s.keeper.GetPendingSwaps(s.ctx))

	// still rejected long after the attestation window
	s.advance(10 * 365 * types.DailyLimitPeriod)
	_, err = s.keeper.RequestSwap(s.ctx, valB, msg)
	s.Require().ErrorIs(err, types.ErrExpired)

	s.Require().Equal("0", s.nativeBalance(bob))
	s.Require().Equal("10000", s.nativeBalance(types.ModuleAddress))
}

func (s *KeeperTestSuite) TestCleanRequestSwaps() {
	for i := uint64(1); i <= 3; i++ {
		msg := s.swapMessage(types.NativeAsset, 10)
		msg.TransferNonce = sdkmath.NewUint(i)
		_, err := s.keeper.RequestSwap(s.ctx, valA, msg)
		s.Require().NoError(err)
	}
	s.Require().Len(s.keeper.GetPendingSwaps(s.ctx), 3)

	_, err := s.keeper.CleanRequestSwaps(s.ctx, valA)
	s.Require().ErrorIs(err, types.ErrUnauthorized)

	removed, err := s.keeper.CleanRequestSwaps(s.ctx, owner)
	s.Require().NoError(err)
	s.Require().Equal(3, removed)
	s.Require().Empty(s.keeper.GetPendingSwaps(s.ctx))
}
