package keeper_test

import (
	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/x/bridge/types"
)

func (s *KeeperTestSuite) TestAddValidator() {
	s.Require().ErrorIs(s.keeper.AddValidator(s.ctx, alice, valC), types.ErrUnauthorized)
	s.Require().ErrorIs(s.keeper.AddValidator(s.ctx, owner, valA), types.ErrAlreadyExists)

	s.Require().NoError(s.keeper.AddValidator(s.ctx, owner, valC))
	s.Require().True(s.keeper.IsValidator(s.ctx, valC))
	s.Require().ElementsMatch([]chain.Address{valA, valB, valC}, s.keeper.GetValidators(s.ctx))

	// max is 3
	err := s.keeper.AddValidator(s.ctx, owner, alice)
	s.Require().ErrorIs(err, types.ErrCapacityExceeded)
	s.Require().False(s.keeper.IsValidator(s.ctx, alice))
}

func (s *KeeperTestSuite) TestRemoveValidator() {
	s.Require().ErrorIs(s.keeper.RemoveValidator(s.ctx, alice, valA), types.ErrUnauthorized)
	s.Require().ErrorIs(s.keeper.RemoveValidator(s.ctx, owner, valC), types.ErrNotFound)

	// two members, threshold two
	s.Require().ErrorIs(s.keeper.RemoveValidator(s.ctx, owner, valA), types.ErrQuorumUnsafe)
	s.Require().True(s.keeper.IsValidator(s.ctx, valA))

	s.Require().NoError(s.keeper.AddValidator(s.ctx, owner, valC))
	s.Require().NoError(s.keeper.RemoveValidator(s.ctx, owner, valA))
	s.Require().False(s.keeper.IsValidator(s.ctx, valA))
	s.Require().Equal(2, s.keeper.ValidatorCount(s.ctx))
}

func (s *KeeperTestSuite) TestValidatorCountNeverBelowThreshold() {
	ops := []struct {
		add       bool
		validator chain.Address
	}{
		{true, valC}, {false, valA}, {false, valB}, {false, valC},
		{true, valA}, {false, valC}, {true, valC}, {false, valB}, {false, valA},
	}

	for _, op := range ops {
		if op.add {
			_ = s.keeper.AddValidator(s.ctx, owner, op.validator)
			continue
		}
		if err := s.keeper.RemoveValidator(s.ctx, owner, op.validator); err == nil {
			threshold := int(s.keeper.GetConfig(s.ctx).SignatureThreshold)
			s.Require().GreaterOrEqual(s.keeper.ValidatorCount(s.ctx), threshold)
		}
	}
	s.Require().GreaterOrEqual(s.keeper.ValidatorCount(s.ctx), 2)
}
