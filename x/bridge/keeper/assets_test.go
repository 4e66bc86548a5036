package keeper_test

import (
	sdkmath "cosmossdk.io/math"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/x/bridge/types"
)

func (s *KeeperTestSuite) TestAddToken() {
	s.Require().ErrorIs(s.keeper.AddToken(s.ctx, alice, tokenNone, sdkmath.NewUint(10)), types.ErrUnauthorized)
	s.Require().ErrorIs(s.keeper.AddToken(s.ctx, owner, tokenNone, sdkmath.ZeroUint()), types.ErrInvalidLimit)
	s.Require().ErrorIs(s.keeper.AddToken(s.ctx, owner, tokenDOT, sdkmath.NewUint(10)), types.ErrAlreadyExists)
	s.Require().ErrorIs(s.keeper.AddToken(s.ctx, owner, types.NativeAsset, sdkmath.NewUint(10)), types.ErrAlreadyExists)
	s.Require().False(s.keeper.IsTransferable(s.ctx, tokenNone))

	s.advance(10)
	s.Require().NoError(s.keeper.AddToken(s.ctx, owner, tokenNone, sdkmath.NewUint(10)))
	s.Require().True(s.keeper.IsTransferable(s.ctx, tokenNone))
	s.Require().ElementsMatch([]chain.Address{tokenDOT, tokenNone}, s.keeper.GetTokens(s.ctx))

	w, found := s.keeper.GetDailyLimitWindow(s.ctx, tokenNone)
	s.Require().True(found)
	s.Require().Equal("10", w.Limit.String())
	s.Require().True(w.Spent.IsZero())
	s.Require().Equal(genesisTime+10, w.WindowStart)
}

func (s *KeeperTestSuite) TestRemoveToken() {
	s.Require().ErrorIs(s.keeper.RemoveToken(s.ctx, alice, tokenDOT), types.ErrUnauthorized)
	s.Require().ErrorIs(s.keeper.RemoveToken(s.ctx, owner, tokenNone), types.ErrNotFound)
	s.Require().ErrorIs(s.keeper.RemoveToken(s.ctx, owner, types.NativeAsset), types.ErrNotFound)

	s.Require().NoError(s.keeper.RemoveToken(s.ctx, owner, tokenDOT))
	s.Require().False(s.keeper.IsTransferable(s.ctx, tokenDOT))
	_, found := s.keeper.GetDailyLimitWindow(s.ctx, tokenDOT)
	s.Require().False(found)
	s.Require().Empty(s.keeper.GetTokens(s.ctx))

	s.Require().True(s.keeper.IsTransferable(s.ctx, types.NativeAsset))
}

func (s *KeeperTestSuite) TestSetDailyLimit() {
	s.Require().ErrorIs(s.keeper.SetDailyLimit(s.ctx, alice, tokenDOT, sdkmath.NewUint(1)), types.ErrUnauthorized)
	s.Require().ErrorIs(s.keeper.SetDailyLimit(s.ctx, owner, tokenNone, sdkmath.NewUint(1)), types.ErrUnknownAsset)
	s.Require().ErrorIs(s.keeper.SetDailyLimit(s.ctx, owner, tokenDOT, sdkmath.ZeroUint()), types.ErrInvalidLimit)

	s.Require().NoError(s.keeper.ChargeDailyLimit(s.ctx, tokenDOT, sdkmath.NewUint(200)))
	s.Require().NoError(s.keeper.SetDailyLimit(s.ctx, owner, tokenDOT, sdkmath.NewUint(250)))

	w, _ := s.keeper.GetDailyLimitWindow(s.ctx, tokenDOT)
	s.Require().Equal("250", w.Limit.String())
	s.Require().Equal("200", w.Spent.String())

	s.Require().NoError(s.keeper.SetDailyLimit(s.ctx, owner, types.NativeAsset, sdkmath.NewUint(5)))
	w, _ = s.keeper.GetDailyLimitWindow(s.ctx, types.NativeAsset)
	s.Require().Equal("5", w.Limit.String())
}

func (s *KeeperTestSuite) TestChargeDailyLimit() {
	s.Require().NoError(s.keeper.SetDailyLimit(s.ctx, owner, tokenDOT, sdkmath.NewUint(1000)))
	s.Require().NoError(s.keeper.ChargeDailyLimit(s.ctx, tokenDOT, sdkmath.NewUint(900)))

	s.advance(3600)
	err := s.keeper.ChargeDailyLimit(s.ctx, tokenDOT, sdkmath.NewUint(150))
	s.Require().ErrorIs(err, types.ErrDailyLimitExceeded)
	w, _ := s.keeper.GetDailyLimitWindow(s.ctx, tokenDOT)
	s.Require().Equal("900", w.Spent.String())

	s.advance(types.DailyLimitPeriod)
	s.Require().NoError(s.keeper.ChargeDailyLimit(s.ctx, tokenDOT, sdkmath.NewUint(150)))
	w, _ = s.keeper.GetDailyLimitWindow(s.ctx, tokenDOT)
	s.Require().Equal("150", w.Spent.String())
	s.Require().Equal(chain.BlockTime(s.ctx), w.WindowStart)

	err = s.keeper.ChargeDailyLimit(s.ctx, tokenNone, sdkmath.NewUint(1))
	s.Require().ErrorIs(err, types.ErrNoLimitConfigured)
}
