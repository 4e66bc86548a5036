package keeper_test

import (
	sdkmath "cosmossdk.io/math"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/x/bridge/keeper"
	"github.com/manus-ai/quorum-bridge/x/bridge/types"
)

func (s *KeeperTestSuite) TestQueryServer() {
	q := keeper.NewQuerier(s.keeper)
	goCtx := s.ctx

	cfgRes, err := q.Config(goCtx, &types.QueryConfigRequest{})
	s.Require().NoError(err)
	s.Require().Equal(owner, cfgRes.Config.Owner)

	valRes, err := q.Validators(goCtx, &types.QueryValidatorsRequest{})
	s.Require().NoError(err)
	s.Require().ElementsMatch([]chain.Address{valA, valB}, valRes.Validators)

	isVal, err := q.IsValidator(goCtx, &types.QueryIsValidatorRequest{Address: alice})
	s.Require().NoError(err)
	s.Require().False(isVal.IsValidator)

	tokRes, err := q.Tokens(goCtx, &types.QueryTokensRequest{})
	s.Require().NoError(err)
	s.Require().Equal([]chain.Address{tokenDOT}, tokRes.Tokens)

	msg := s.swapMessage(types.NativeAsset, 100)
	hashRes, err := q.SwapHash(goCtx, &types.QuerySwapHashRequest{Message: msg})
	s.Require().NoError(err)

	_, err = q.PendingSwap(goCtx, &types.QueryPendingSwapRequest{Hash: hashRes.Hash})
	s.Require().ErrorIs(err, types.ErrNotFound)

	_, err = s.keeper.RequestSwap(s.ctx, valA, msg)
	s.Require().NoError(err)

	pendingRes, err := q.PendingSwap(goCtx, &types.QueryPendingSwapRequest{Hash: hashRes.Hash})
	s.Require().NoError(err)
	s.Require().Equal(1, pendingRes.Approvals)

	allRes, err := q.PendingSwaps(goCtx, &types.QueryPendingSwapsRequest{})
	s.Require().NoError(err)
	s.Require().Len(allRes.PendingSwaps, 1)

	nonceRes, err := q.TransferNonce(goCtx, &types.QueryTransferNonceRequest{})
	s.Require().NoError(err)
	s.Require().True(nonceRes.TransferNonce.IsZero())

	rewardRes, err := q.Reward(goCtx, &types.QueryRewardRequest{Validator: valA})
	s.Require().NoError(err)
	s.Require().True(rewardRes.Reward.IsZero())
}

func (s *KeeperTestSuite) TestQueryDailyLimitRollover() {
	s.Require().NoError(s.keeper.ChargeDailyLimit(s.ctx, tokenDOT, sdkmath.NewUint(400)))

	q := keeper.NewQuerier(s.keeper)
	res, err := q.DailyLimit(s.ctx, &types.QueryDailyLimitRequest{Asset: tokenDOT})
	s.Require().NoError(err)
	s.Require().Equal("400", res.Window.Spent.String())
	s.Require().Equal("400", res.EffectiveSpent.String())
	s.Require().Equal("100", res.Remaining.String())

	s.advance(types.DailyLimitPeriod + 1)
	res, err = q.DailyLimit(s.ctx, &types.QueryDailyLimitRequest{Asset: tokenDOT})
	s.Require().NoError(err)
	s.Require().Equal("400", res.Window.Spent.String())
	s.Require().True(res.EffectiveSpent.IsZero())
	s.Require().Equal("500", res.Remaining.String())

	_, err = q.DailyLimit(s.ctx, &types.QueryDailyLimitRequest{Asset: tokenNone})
	s.Require().ErrorIs(err, types.ErrNotFound)
}

func (s *KeeperTestSuite) TestGenesisRoundTrip() {
	_, err := s.keeper.TransferCoin(s.ctx, alice, "remote", sdkmath.NewUint(100))
	s.Require().NoError(err)
	_, err = s.keeper.RequestSwap(s.ctx, valA, s.swapMessage(tokenDOT, 10))
	s.Require().NoError(err)

	exported := s.keeper.ExportGenesis(s.ctx)
	s.Require().NoError(exported.Validate())
	s.Require().Len(exported.Assets, 2)
	s.Require().Equal(types.NativeAsset, exported.Assets[0].Asset)
	s.Require().Len(exported.Validators, 2)
	s.Require().Len(exported.Rewards, 2)
	s.Require().Len(exported.PendingSwaps, 1)
	s.Require().Equal("1", exported.TransferNonce.String())

	// import into a fresh store and export again
	s.SetupTest()
	s.keeper.InitGenesis(s.ctx, *exported)
	again := s.keeper.ExportGenesis(s.ctx)
	s.Require().Equal(exported.Config, again.Config)
	s.Require().Equal(exported.Validators, again.Validators)
	s.Require().Equal(exported.PendingSwaps, again.PendingSwaps)
	s.Require().Equal("100", again.Assets[0].Window.Spent.String())
	s.Require().Equal("5", s.keeper.GetReward(s.ctx, valA).String())
}
