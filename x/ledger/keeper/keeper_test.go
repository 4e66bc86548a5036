package keeper_test

import (
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/testutil"
	"github.com/manus-ai/quorum-bridge/x/ledger/keeper"
	"github.com/manus-ai/quorum-bridge/x/ledger/types"
)

type KeeperTestSuite struct {
	suite.Suite

	ctx    sdk.Context
	keeper keeper.Keeper

	reserve chain.Address
	module  chain.Address
	alice   chain.Address
	bob     chain.Address
	token   chain.Address
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func (s *KeeperTestSuite) SetupTest() {
	key := storetypes.NewKVStoreKey(types.StoreKey)
	s.ctx = testutil.DefaultContext(s.T(), time.Unix(1000, 0), key)

	s.reserve = chain.AddressFromName("reserve")
	s.module = chain.AddressFromName("fee-collector")
	s.alice = chain.AddressFromName("alice")
	s.bob = chain.AddressFromName("bob")
	s.token = chain.AddressFromName("token")
	s.keeper = keeper.NewKeeper(key, s.reserve, map[chain.Address]bool{s.module: true})
}

func (s *KeeperTestSuite) fund(account chain.Address, amount uint64) {
	s.keeper.InitGenesis(s.ctx, types.GenesisState{Balances: []types.Balance{
		{Account: account, Asset: types.NativeAsset, Amount: sdkmath.NewUint(amount)},
	}})
}

func (s *KeeperTestSuite) TestAttachAndPay() {
	s.fund(s.alice, 100)

	s.Require().NoError(s.keeper.Attach(s.ctx, s.alice, sdkmath.NewUint(60)))
	s.Require().Equal("40", s.keeper.GetBalance(s.ctx, types.NativeAsset, s.alice).String())
	s.Require().Equal("60", s.keeper.GetBalance(s.ctx, types.NativeAsset, s.reserve).String())

	err := s.keeper.Attach(s.ctx, s.alice, sdkmath.NewUint(41))
	s.Require().ErrorIs(err, types.ErrInsufficientFunds)

	s.Require().NoError(s.keeper.Pay(s.ctx, s.bob, sdkmath.NewUint(60)))
	s.Require().True(s.keeper.GetBalance(s.ctx, types.NativeAsset, s.reserve).IsZero())
	s.Require().Equal("60", s.keeper.GetBalance(s.ctx, types.NativeAsset, s.bob).String())

	s.Require().ErrorIs(s.keeper.Pay(s.ctx, s.bob, sdkmath.NewUint(1)), types.ErrInsufficientFunds)
}

func (s *KeeperTestSuite) TestMintAndBurn() {
	s.Require().True(s.keeper.Mint(s.ctx, s.token, sdkmath.NewUint(50), s.alice))
	s.Require().Equal("50", s.keeper.BalanceOf(s.ctx, s.token, s.alice).String())
	s.Require().Equal("50", s.keeper.GetTotalSupply(s.ctx, s.token).String())

	s.Require().False(s.keeper.Burn(s.ctx, s.token, sdkmath.NewUint(51), s.alice))
	s.Require().True(s.keeper.Burn(s.ctx, s.token, sdkmath.NewUint(20), s.alice))
	s.Require().Equal("30", s.keeper.BalanceOf(s.ctx, s.token, s.alice).String())
	s.Require().Equal("30", s.keeper.GetTotalSupply(s.ctx, s.token).String())

	s.Require().False(s.keeper.Mint(s.ctx, types.NativeAsset, sdkmath.NewUint(1), s.alice))
	s.Require().False(s.keeper.Burn(s.ctx, types.NativeAsset, sdkmath.NewUint(1), s.alice))
}

func (s *KeeperTestSuite) TestGenesisRoundTrip() {
	gs := types.GenesisState{Balances: []types.Balance{
		{Account: s.alice, Asset: types.NativeAsset, Amount: sdkmath.NewUint(10)},
		{Account: s.bob, Asset: s.token, Amount: sdkmath.NewUint(7)},
	}}
	s.Require().NoError(gs.Validate())
	s.keeper.InitGenesis(s.ctx, gs)

	exported := s.keeper.ExportGenesis(s.ctx)
	s.Require().Len(exported.Balances, 2)
	s.Require().Equal("7", s.keeper.GetTotalSupply(s.ctx, s.token).String())

	total := sdkmath.ZeroUint()
	for _, b := range exported.Balances {
		total = total.Add(b.Amount)
	}
	s.Require().Equal("17", total.String())
}

func (s *KeeperTestSuite) TestMsgSend() {
	s.fund(s.alice, 100)
	msgServer := keeper.NewMsgServerImpl(s.keeper)

	_, err := msgServer.Send(s.ctx, types.NewMsgSend(s.alice, s.bob, types.NativeAsset, sdkmath.NewUint(30)))
	s.Require().NoError(err)
	s.Require().Equal("70", s.keeper.GetBalance(s.ctx, types.NativeAsset, s.alice).String())
	s.Require().Equal("30", s.keeper.GetBalance(s.ctx, types.NativeAsset, s.bob).String())

	_, err = msgServer.Send(s.ctx, types.NewMsgSend(s.bob, s.alice, types.NativeAsset, sdkmath.NewUint(31)))
	s.Require().ErrorIs(err, types.ErrInsufficientFunds)
}

func (s *KeeperTestSuite) TestMsgSendRejectsModuleAccounts() {
	s.fund(s.reserve, 1_000_000)
	s.fund(s.module, 500)
	s.fund(s.alice, 100)
	msgServer := keeper.NewMsgServerImpl(s.keeper)

	s.Require().True(s.keeper.BlockedAddr(s.reserve))
	s.Require().True(s.keeper.BlockedAddr(s.module))
	s.Require().False(s.keeper.BlockedAddr(s.alice))

	// draining the reserve through a plain send
	_, err := msgServer.Send(s.ctx, types.NewMsgSend(s.reserve, s.bob, types.NativeAsset, sdkmath.NewUint(1_000_000)))
	s.Require().ErrorIs(err, types.ErrUnauthorized)
	_, err = msgServer.Send(s.ctx, types.NewMsgSend(s.module, s.bob, types.NativeAsset, sdkmath.NewUint(500)))
	s.Require().ErrorIs(err, types.ErrUnauthorized)
	_, err = msgServer.Send(s.ctx, types.NewMsgSend(s.alice, s.reserve, types.NativeAsset, sdkmath.NewUint(1)))
	s.Require().ErrorIs(err, types.ErrUnauthorized)

	s.Require().Equal("1000000", s.keeper.GetBalance(s.ctx, types.NativeAsset, s.reserve).String())
	s.Require().Equal("500", s.keeper.GetBalance(s.ctx, types.NativeAsset, s.module).String())
	s.Require().True(s.keeper.GetBalance(s.ctx, types.NativeAsset, s.bob).IsZero())

	// keepers still move the reserve
	s.Require().NoError(s.keeper.Pay(s.ctx, s.bob, sdkmath.NewUint(10)))
	s.Require().Equal("10", s.keeper.GetBalance(s.ctx, types.NativeAsset, s.bob).String())
}

func TestMsgSendValidateBasic(t *testing.T) {
	alice, bob := chain.AddressFromName("alice"), chain.AddressFromName("bob")

	require.NoError(t, types.NewMsgSend(alice, bob, types.NativeAsset, sdkmath.NewUint(1)).ValidateBasic())
	require.ErrorIs(t, types.NewMsgSend(alice, bob, types.NativeAsset, sdkmath.ZeroUint()).ValidateBasic(), types.ErrInvalidAmount)
	require.ErrorIs(t, types.NewMsgSend(chain.ZeroAddress, bob, types.NativeAsset, sdkmath.NewUint(1)).ValidateBasic(), types.ErrInvalidAddress)
}
