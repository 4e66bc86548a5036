package keeper_test

import (
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/suite"

	"github.com/manus-ai/quorum-bridge/pkg/chain"
	"github.com/manus-ai/quorum-bridge/testutil"
	"github.com/manus-ai/quorum-bridge/x/bridge/keeper"
	"github.com/manus-ai/quorum-bridge/x/bridge/types"
	ledgerkeeper "github.com/manus-ai/quorum-bridge/x/ledger/keeper"
	ledgertypes "github.com/manus-ai/quorum-bridge/x/ledger/types"
)

const genesisTime uint64 = 1_700_000_000

var (
	owner     = chain.AddressFromName("owner")
	alice     = chain.AddressFromName("alice")
	bob       = chain.AddressFromName("bob")
	valA      = chain.AddressFromName("validator-a")
	valB      = chain.AddressFromName("validator-b")
	valC      = chain.AddressFromName("validator-c")
	tokenDOT  = chain.AddressFromName("token-dot")
	tokenNone = chain.AddressFromName("token-unregistered")
)

type KeeperTestSuite struct {
	suite.Suite

	ctx sdk.Context

	ledger ledgerkeeper.Keeper
	keeper keeper.Keeper
}

func TestKeeperTestSuite(t *testing.T) {
	suite.Run(t, new(KeeperTestSuite))
}

func testGenesis() types.GenesisState {
	cfg := types.DefaultConfig()
	cfg.Owner = owner
	cfg.Fee = 10
	cfg.SignatureThreshold = 2
	cfg.MaxValidatorCount = 3
	cfg.MinAmountToTransfer = sdkmath.NewUint(10)

	return types.GenesisState{
		Config: cfg,
		Assets: []types.AssetLimit{
			{Asset: types.NativeAsset, Window: types.NewDailyLimitWindow(sdkmath.NewUint(1000), genesisTime)},
			{Asset: tokenDOT, Window: types.NewDailyLimitWindow(sdkmath.NewUint(500), genesisTime)},
		},
		Validators:    []chain.Address{valA, valB},
		TransferNonce: sdkmath.ZeroUint(),
	}
}

func (s *KeeperTestSuite) SetupTest() {
	bridgeKey := storetypes.NewKVStoreKey(types.StoreKey)
	ledgerKey := storetypes.NewKVStoreKey(ledgertypes.StoreKey)
	s.ctx = testutil.DefaultContext(s.T(), time.Unix(int64(genesisTime), 0), bridgeKey, ledgerKey)

	s.ledger = ledgerkeeper.NewKeeper(ledgerKey, types.ModuleAddress, nil)
	s.keeper = keeper.NewKeeper(codec.NewLegacyAmino(), bridgeKey, s.ledger, s.ledger)

	gs := testGenesis()
	s.Require().NoError(gs.Validate())
	s.keeper.InitGenesis(s.ctx, gs)
	s.ledger.InitGenesis(s.ctx, ledgertypes.GenesisState{Balances: []ledgertypes.Balance{
		{Account: types.ModuleAddress, Asset: ledgertypes.NativeAsset, Amount: sdkmath.NewUint(10_000)},
		{Account: alice, Asset: ledgertypes.NativeAsset, Amount: sdkmath.NewUint(1_000)},
		{Account: alice, Asset: tokenDOT, Amount: sdkmath.NewUint(300)},
	}})
}

// advance moves the context clock forward by seconds.
func (s *KeeperTestSuite) advance(seconds uint64) {
	s.ctx = s.ctx.WithBlockTime(s.ctx.BlockTime().Add(time.Duration(seconds) * time.Second))
}

func (s *KeeperTestSuite) nativeBalance(account chain.Address) string {
	return s.ledger.GetBalance(s.ctx, ledgertypes.NativeAsset, account).String()
}

func (s *KeeperTestSuite) swapMessage(asset chain.Address, amount uint64) types.SwapMessage {
	return types.SwapMessage{
		ChainID:       types.DefaultConfig().ChainID,
		Receiver:      bob,
		Sender:        "fooBar",
		Timestamp:     chain.BlockTime(s.ctx),
		Amount:        sdkmath.NewUint(amount),
		Asset:         asset,
		TransferNonce: sdkmath.NewUint(1),
	}
}

func (s *KeeperTestSuite) TestOwnerSetters() {
	s.Require().ErrorIs(s.keeper.SetFee(s.ctx, alice, 5), types.ErrUnauthorized)
	s.Require().ErrorIs(s.keeper.SetFee(s.ctx, owner, 101), types.ErrInvalidConfig)
	s.Require().NoError(s.keeper.SetFee(s.ctx, owner, 5))
	s.Require().Equal(uint64(5), s.keeper.GetConfig(s.ctx).Fee)

	s.Require().ErrorIs(s.keeper.SetThreshold(s.ctx, owner, 0), types.ErrInvalidConfig)
	s.Require().ErrorIs(s.keeper.SetThreshold(s.ctx, owner, 4), types.ErrInvalidConfig)
	s.Require().NoError(s.keeper.SetThreshold(s.ctx, owner, 3))
	s.Require().Equal(uint16(3), s.keeper.GetConfig(s.ctx).SignatureThreshold)

	s.Require().ErrorIs(s.keeper.SetTxExpirationTime(s.ctx, owner, 0), types.ErrInvalidConfig)
	s.Require().NoError(s.keeper.SetTxExpirationTime(s.ctx, owner, 60))
	s.Require().Equal(uint64(60), s.keeper.GetConfig(s.ctx).TxExpirationTime)

	s.Require().NoError(s.keeper.SetMinAmountToTransfer(s.ctx, owner, sdkmath.NewUint(50)))
	s.Require().Equal("50", s.keeper.GetConfig(s.ctx).MinAmountToTransfer.String())

	// threshold is 3 now, two members
	s.Require().ErrorIs(s.keeper.SetMaxValidatorCount(s.ctx, owner, 2), types.ErrInvalidConfig)
	s.Require().NoError(s.keeper.SetThreshold(s.ctx, owner, 1))
	s.Require().ErrorIs(s.keeper.SetMaxValidatorCount(s.ctx, owner, 1), types.ErrInvalidConfig)
	s.Require().NoError(s.keeper.SetMaxValidatorCount(s.ctx, owner, 2))

	s.Require().NoError(s.keeper.TransferOwnership(s.ctx, owner, alice))
	s.Require().ErrorIs(s.keeper.SetFee(s.ctx, owner, 1), types.ErrUnauthorized)
	s.Require().NoError(s.keeper.SetFee(s.ctx, alice, 1))

	var updates int
	for _, ev := range s.ctx.EventManager().Events() {
		if ev.Type == types.EventTypeConfigUpdated {
			updates++
		}
	}
	s.Require().Equal(8, updates)
}
