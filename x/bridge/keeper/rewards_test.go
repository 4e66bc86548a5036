package keeper_test

import (
	sdkmath "cosmossdk.io/math"

	"github.com/manus-ai/quorum-bridge/x/bridge/types"
)

func (s *KeeperTestSuite) TestRequestRewards() {
	_, err := s.keeper.RequestRewards(s.ctx, valA)
	s.Require().ErrorIs(err, types.ErrNoRewards)

	// two deposits of 105 at 10 percent: share 10 each, 5 per validator
	for i := 0; i < 2; i++ {
		_, err := s.keeper.TransferCoin(s.ctx, alice, "remote", sdkmath.NewUint(105))
		s.Require().NoError(err)
	}
	s.Require().Equal("10", s.keeper.GetReward(s.ctx, valA).String())

	before := s.ledger.GetBalance(s.ctx, types.NativeAsset, valA)
	claimed, err := s.keeper.RequestRewards(s.ctx, valA)
	s.Require().NoError(err)
	s.Require().Equal("10", claimed.String())
	s.Require().Equal(before.AddUint64(10).String(), s.nativeBalance(valA))
	s.Require().True(s.keeper.GetReward(s.ctx, valA).IsZero())

	_, err = s.keeper.RequestRewards(s.ctx, valA)
	s.Require().ErrorIs(err, types.ErrNoRewards)

	// valB still holds its share
	s.Require().Equal("10", s.keeper.GetReward(s.ctx, valB).String())
}

func (s *KeeperTestSuite) TestRewardsRoundingLoss() {
	s.Require().NoError(s.keeper.AddValidator(s.ctx, owner, valC))

	// share 10 over three validators
	_, err := s.keeper.TransferCoin(s.ctx, alice, "remote", sdkmath.NewUint(100))
	s.Require().NoError(err)

	s.Require().Equal("3", s.keeper.GetReward(s.ctx, valA).String())
	s.Require().Equal("3", s.keeper.GetReward(s.ctx, valB).String())
	s.Require().Equal("3", s.keeper.GetReward(s.ctx, valC).String())
}

func (s *KeeperTestSuite) TestRemovedValidatorKeepsRewards() {
	s.Require().NoError(s.keeper.AddValidator(s.ctx, owner, valC))
	_, err := s.keeper.TransferCoin(s.ctx, alice, "remote", sdkmath.NewUint(300))
	s.Require().NoError(err)

	s.Require().NoError(s.keeper.RemoveValidator(s.ctx, owner, valC))
	claimed, err := s.keeper.RequestRewards(s.ctx, valC)
	s.Require().NoError(err)
	s.Require().Equal("10", claimed.String())
}
