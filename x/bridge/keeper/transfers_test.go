package keeper_test

import (
	sdkmath "cosmossdk.io/math"

	"github.com/manus-ai/quorum-bridge/x/bridge/types"
)

func (s *KeeperTestSuite) TestTransferCoin() {
	_, err := s.keeper.TransferCoin(s.ctx, alice, "remote", sdkmath.NewUint(9))
	s.Require().ErrorIs(err, types.ErrBelowMinimum)
	s.Require().True(s.keeper.GetTransferNonce(s.ctx).IsZero())

	_, err = s.keeper.TransferCoin(s.ctx, bob, "remote", sdkmath.NewUint(10))
	s.Require().ErrorIs(err, types.ErrInsufficientBalance)
	s.Require().True(s.keeper.GetTransferNonce(s.ctx).IsZero())

	record, err := s.keeper.TransferCoin(s.ctx, alice, "5GrwvaEF", sdkmath.NewUint(100))
	s.Require().NoError(err)
	s.Require().Equal("1", record.TransferNonce.String())
	s.Require().Equal("1", s.keeper.GetTransferNonce(s.ctx).String())
	s.Require().Equal(types.NativeAsset, record.Asset)
	s.Require().Equal(alice, record.Sender)
	s.Require().Equal("5GrwvaEF", record.Receiver)
	s.Require().Equal(genesisTime, record.Timestamp)

	s.Require().Equal("900", s.nativeBalance(alice))
	s.Require().Equal("10100", s.nativeBalance(types.ModuleAddress))

	w, _ := s.keeper.GetDailyLimitWindow(s.ctx, types.NativeAsset)
	s.Require().Equal("100", w.Spent.String())
	s.Require().Equal("5", s.keeper.GetReward(s.ctx, valA).String())

	var transfers []types.TransferRecord
	for _, ev := range s.ctx.EventManager().Events() {
		if r, ok := types.TransferRecordFromEvent(ev); ok {
			transfers = append(transfers, r)
		}
	}
	s.Require().Len(transfers, 1)
	s.Require().Equal(record.Receiver, transfers[0].Receiver)
	s.Require().Equal(record.TransferNonce.String(), transfers[0].TransferNonce.String())
}

func (s *KeeperTestSuite) TestTransferCoinDailyLimit() {
	s.Require().NoError(s.keeper.SetDailyLimit(s.ctx, owner, types.NativeAsset, sdkmath.NewUint(150)))

	_, err := s.keeper.TransferCoin(s.ctx, alice, "remote", sdkmath.NewUint(100))
	s.Require().NoError(err)
	_, err = s.keeper.TransferCoin(s.ctx, alice, "remote", sdkmath.NewUint(100))
	s.Require().ErrorIs(err, types.ErrDailyLimitExceeded)
	s.Require().Equal("1", s.keeper.GetTransferNonce(s.ctx).String())
}

func (s *KeeperTestSuite) TestTransferToken() {
	_, err := s.keeper.TransferToken(s.ctx, alice, "remote", sdkmath.NewUint(100), tokenNone)
	s.Require().ErrorIs(err, types.ErrUnknownAsset)

	_, err = s.keeper.TransferToken(s.ctx, alice, "remote", sdkmath.NewUint(5), tokenDOT)
	s.Require().ErrorIs(err, types.ErrBelowMinimum)

	_, err = s.keeper.TransferToken(s.ctx, alice, "remote", sdkmath.NewUint(301), tokenDOT)
	s.Require().ErrorIs(err, types.ErrInsufficientBalance)
	s.Require().True(s.keeper.GetTransferNonce(s.ctx).IsZero())

	record, err := s.keeper.TransferToken(s.ctx, alice, "remote", sdkmath.NewUint(120), tokenDOT)
	s.Require().NoError(err)
	s.Require().Equal(tokenDOT, record.Asset)
	s.Require().Equal("1", record.TransferNonce.String())

	s.Require().Equal("180", s.ledger.BalanceOf(s.ctx, tokenDOT, alice).String())
	s.Require().Equal("180", s.ledger.GetTotalSupply(s.ctx, tokenDOT).String())
	w, _ := s.keeper.GetDailyLimitWindow(s.ctx, tokenDOT)
	s.Require().Equal("120", w.Spent.String())

	// token deposits do not accrue rewards
	s.Require().True(s.keeper.GetReward(s.ctx, valA).IsZero())
}

func (s *KeeperTestSuite) TestTransferTokenNativeUsesCoinBalance() {
	_, err := s.keeper.TransferToken(s.ctx, alice, "remote", sdkmath.NewUint(9), types.NativeAsset)
	s.Require().ErrorIs(err, types.ErrBelowMinimum)

	record, err := s.keeper.TransferToken(s.ctx, alice, "remote", sdkmath.NewUint(100), types.NativeAsset)
	s.Require().NoError(err)
	s.Require().Equal(types.NativeAsset, record.Asset)
	s.Require().Equal("1", record.TransferNonce.String())

	s.Require().Equal("900", s.nativeBalance(alice))
	s.Require().Equal("10100", s.nativeBalance(types.ModuleAddress))
	w, _ := s.keeper.GetDailyLimitWindow(s.ctx, types.NativeAsset)
	s.Require().Equal("100", w.Spent.String())
	s.Require().Equal("5", s.keeper.GetReward(s.ctx, valA).String())
}
